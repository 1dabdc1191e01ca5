package tui

import (
	"math"

	"github.com/davidcortes/horario/internal/layout"
	"github.com/davidcortes/horario/internal/task"
)

const (
	gutterWidth = 6 // "09:00 "
	headerRows  = 2 // title row + day header row
	footerRows  = 2 // status + help
	minGridRows = 6
)

// geometry maps the time grid onto terminal cells. Rows are the vertical
// track the gesture controller measures against: offsets in rows convert to
// minutes through the layout window.
type geometry struct {
	gridRows int
	colWidth int
	days     []task.Day
}

func (m *Model) geometry() geometry {
	g := geometry{}

	g.gridRows = m.height - headerRows - footerRows
	if g.gridRows < minGridRows {
		g.gridRows = minGridRows
	}

	for _, d := range m.rng.Days() {
		g.days = append(g.days, task.DayOf(d))
	}
	if len(g.days) == 0 {
		g.days = []task.Day{task.DayOf(m.refDate)}
	}

	usable := m.width - gutterWidth
	if usable < len(g.days) {
		usable = len(g.days)
	}
	g.colWidth = usable / len(g.days)

	return g
}

// hit identifies what sits under a terminal cell.
type hit struct {
	day     task.Day
	inGrid  bool
	rowY    float64 // vertical offset within the grid, in rows
	taskID  int64   // 0 when no block is under the pointer
	onEdge  bool
	edge    string // "top" or "bottom" when onEdge
	rowSpan int    // block height in rows
}

// hitTest resolves terminal coordinates against the current grid.
func (m *Model) hitTest(x, y int, g geometry) hit {
	h := hit{}

	row := y - headerRows
	if row < 0 || row >= g.gridRows || x < gutterWidth {
		return h
	}

	dayIdx := (x - gutterWidth) / g.colWidth
	if dayIdx < 0 || dayIdx >= len(g.days) {
		return h
	}

	h.inGrid = true
	h.day = g.days[dayIdx]
	h.rowY = float64(row)

	// Which block, if any, covers this cell?
	entries := m.entriesForDay(h.day)
	colX := (x - gutterWidth) % g.colWidth
	for _, e := range entries {
		rowStart, rowEnd := blockRows(e, g.gridRows)
		if row < rowStart || row >= rowEnd {
			continue
		}
		left, width := blockCols(e, g.colWidth)
		if colX < left || colX >= left+width {
			continue
		}

		h.taskID = e.Task.ID
		h.rowSpan = rowEnd - rowStart
		// Edge handles are the first and last row of a block, when the block
		// is tall enough to leave a body between them.
		if h.rowSpan >= 3 {
			switch row {
			case rowStart:
				h.onEdge = true
				h.edge = "top"
			case rowEnd - 1:
				h.onEdge = true
				h.edge = "bottom"
			}
		}
		return h
	}

	return h
}

// entriesForDay packs the cached tasks of one day.
func (m *Model) entriesForDay(d task.Day) []layout.Entry {
	var dayTasks []*task.Task
	for _, t := range m.cache.Tasks() {
		if task.DayOf(t.Start) == d {
			dayTasks = append(dayTasks, t)
		}
	}
	return layout.Pack(dayTasks, m.window)
}

// blockRows converts an entry's percent-space position into grid rows.
func blockRows(e layout.Entry, gridRows int) (start, end int) {
	start = int(math.Round(e.TopPercent / 100 * float64(gridRows)))
	span := int(math.Round(e.HeightPercent / 100 * float64(gridRows)))
	if span < 1 {
		span = 1
	}
	end = start + span
	if end > gridRows {
		end = gridRows
		if start >= end {
			start = end - 1
		}
	}
	return start, end
}

// blockCols converts an entry's column assignment into a horizontal slice of
// the day column, leaving a one-cell gutter between sibling columns.
func blockCols(e layout.Entry, colWidth int) (left, width int) {
	w := colWidth / e.TotalColumns
	left = e.Column * w
	width = w
	if e.Column < e.TotalColumns-1 && width > 1 {
		width-- // gutter
	}
	if width < 1 {
		width = 1
	}
	return left, width
}
