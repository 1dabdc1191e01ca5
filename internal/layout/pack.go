package layout

import (
	"sort"

	"github.com/davidcortes/horario/internal/task"
)

// MinBlockMinutes is the visual floor: a block never renders shorter than
// this, regardless of the task's true duration. It is independent of the
// 15-minute data minimum enforced during resizing.
const MinBlockMinutes = 30

// Entry is the packed placement of one task within one day column.
// Entries are rebuilt on every layout pass and never persisted.
type Entry struct {
	Task          *task.Task
	Column        int     // 0-based column index among overlapping tasks
	TotalColumns  int     // columns this task's block must share the day with
	TopPercent    float64 // [0, 100] offset from window start
	HeightPercent float64 // (0, 100] block height
}

// clipped is a task's interval intersected with the window, in minutes from
// midnight, with the visual floor applied.
type clipped struct {
	s, e int
}

func clip(t *task.Task, w Window) clipped {
	s := MinuteOfDay(t.Start)
	if s < w.StartMinute {
		s = w.StartMinute
	}
	e := MinuteOfDay(t.End)
	if e > w.EndMinute {
		e = w.EndMinute
	}
	if e < s+MinBlockMinutes {
		e = s + MinBlockMinutes
	}
	return clipped{s: s, e: e}
}

// Pack assigns non-overlapping columns to the tasks of a single calendar day.
//
// Greedy interval coloring in deterministic order: tasks sorted by clipped
// start ascending, longer first among simultaneous starts; each task takes the
// smallest column not used by any directly overlapping placed entry.
// TotalColumns is raised on direct overlaps only, not transitively through
// chains of partial overlaps, so it is an upper bound rather than the true
// chromatic number of the day's overlap graph. Consumers render a block at
// left = Column/TotalColumns, width = 1/TotalColumns of the day column.
func Pack(tasks []*task.Task, w Window) []Entry {
	ordered := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil {
			ordered = append(ordered, t)
		}
	}

	ivs := make(map[*task.Task]clipped, len(ordered))
	for _, t := range ordered {
		ivs[t] = clip(t, w)
	}

	sortClipped(ordered, ivs)

	total := float64(w.TotalMinutes())
	placed := make([]Entry, 0, len(ordered))

	for _, t := range ordered {
		iv := ivs[t]

		// Direct overlaps among already placed entries.
		var overlapping []int
		used := make(map[int]bool)
		for i := range placed {
			pv := ivs[placed[i].Task]
			if pv.s < iv.e && pv.e > iv.s {
				overlapping = append(overlapping, i)
				used[placed[i].Column] = true
			}
		}

		col := 0
		for used[col] {
			col++
		}

		totalCols := col + 1
		for _, i := range overlapping {
			if placed[i].TotalColumns > totalCols {
				totalCols = placed[i].TotalColumns
			}
		}
		for _, i := range overlapping {
			if placed[i].TotalColumns < totalCols {
				placed[i].TotalColumns = totalCols
			}
		}

		placed = append(placed, Entry{
			Task:          t,
			Column:        col,
			TotalColumns:  totalCols,
			TopPercent:    float64(iv.s-w.StartMinute) / total * 100,
			HeightPercent: float64(iv.e-iv.s) / total * 100,
		})
	}

	return placed
}

// sortClipped orders tasks ascending by clipped start, longest clipped
// interval first among ties. Stable so equal tasks keep input order.
func sortClipped(tasks []*task.Task, ivs map[*task.Task]clipped) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := ivs[tasks[i]], ivs[tasks[j]]
		if a.s != b.s {
			return a.s < b.s
		}
		return a.e-a.s > b.e-b.s
	})
}

// PackRange buckets a mixed-day task slice by the calendar day each task
// starts on and packs every day independently.
func PackRange(tasks []*task.Task, w Window) map[task.Day][]Entry {
	result := make(map[task.Day][]Entry)
	for day, dayTasks := range task.GroupByDay(tasks) {
		result[day] = Pack(dayTasks, w)
	}
	return result
}
