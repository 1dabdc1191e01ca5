package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/davidcortes/horario/internal/dateutil"
	"github.com/davidcortes/horario/internal/task"
)

// View renders the calendar surface.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.view == dateutil.ViewMonth {
		b.WriteString(m.renderMonth())
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader draws the title row and the day header row.
func (m Model) renderHeader() string {
	title := m.rangeTitle()
	if m.loading {
		title += "  (loading)"
	}
	line1 := m.styles.Header.Render(ansi.Truncate(title, m.width, "…"))

	if m.view == dateutil.ViewMonth {
		return line1 + "\n" + m.renderWeekdayHeader()
	}

	g := m.geometry()
	today := task.DayOf(m.nowFunc())
	var cells []string
	cells = append(cells, strings.Repeat(" ", gutterWidth))
	for _, d := range g.days {
		label := d.Time(m.refDate.Location()).Format("Mon 02")
		style := m.styles.DayHeader
		if d == today {
			style = m.styles.TodayHead
		}
		cells = append(cells, style.Render(padCell(label, g.colWidth)))
	}
	return line1 + "\n" + strings.Join(cells, "")
}

func (m Model) rangeTitle() string {
	loc := m.refDate.Location()
	switch m.view {
	case dateutil.ViewDay:
		return m.refDate.In(loc).Format("Monday, January 2 2006")
	case dateutil.ViewMonth:
		return m.refDate.In(loc).Format("January 2006")
	default:
		_, wk := m.rng.Start.ISOWeek()
		return fmt.Sprintf("Week %d · %s – %s",
			wk,
			m.rng.Start.Format("Jan 2"),
			m.rng.End.AddDate(0, 0, -1).Format("Jan 2, 2006"))
	}
}

// renderGrid draws the hour gutter and one packed column per day.
func (m Model) renderGrid() string {
	g := m.geometry()
	gridRows := g.gridRows
	if gridRows > m.height-headerRows-footerRows {
		gridRows = m.height - headerRows - footerRows
	}
	if gridRows < 1 {
		return ""
	}

	gutter := m.gutterLabels(g.gridRows)
	cols := make([][]string, len(g.days))
	for i, d := range g.days {
		cols[i] = m.renderDayColumn(d, g)
	}

	var b strings.Builder
	for row := 0; row < gridRows; row++ {
		b.WriteString(m.styles.Gutter.Render(gutter[row]))
		for i := range cols {
			b.WriteString(cols[i][row])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// gutterLabels places an "HH:00" label on the row each hour starts at.
func (m Model) gutterLabels(gridRows int) []string {
	labels := make([]string, gridRows)
	for i := range labels {
		labels[i] = strings.Repeat(" ", gutterWidth)
	}
	total := float64(m.window.TotalMinutes())
	startHour := (m.window.StartMinute + 59) / 60
	endHour := m.window.EndMinute / 60
	for h := startHour; h <= endHour; h++ {
		off := float64(h*60 - m.window.StartMinute)
		row := int(off / total * float64(gridRows))
		if row < 0 || row >= gridRows {
			continue
		}
		if labels[row] != strings.Repeat(" ", gutterWidth) {
			continue
		}
		labels[row] = padCell(fmt.Sprintf("%02d:00", h), gutterWidth)
	}
	return labels
}

// renderDayColumn composes the packed entries of one day into grid rows.
func (m Model) renderDayColumn(d task.Day, g geometry) []string {
	rows := make([]string, g.gridRows)
	entries := m.entriesForDay(d)
	activeID, _ := m.ctrl.ActiveTask()

	type seg struct {
		left, width int
		text        string
		style       lipgloss.Style
	}
	segsByRow := make(map[int][]seg)

	for _, e := range entries {
		rowStart, rowEnd := blockRows(e, g.gridRows)
		left, width := blockCols(e, g.colWidth)

		style := m.styles.Block.Background(m.styles.Theme().PriorityColor(e.Task.Priority))
		if e.Task.ID == activeID {
			style = m.styles.BlockDrag
		}

		for r := rowStart; r < rowEnd; r++ {
			text := ""
			switch r {
			case rowStart:
				text = e.Task.Title
			case rowStart + 1:
				text = fmt.Sprintf("%s-%s",
					e.Task.Start.Format("15:04"), e.Task.End.Format("15:04"))
			}
			segsByRow[r] = append(segsByRow[r], seg{left: left, width: width, text: text, style: style})
		}
	}

	empty := m.styles.GridEmpty.Render("·")
	for r := 0; r < g.gridRows; r++ {
		segs := segsByRow[r]
		if len(segs) == 0 {
			rows[r] = empty + strings.Repeat(" ", g.colWidth-1)
			continue
		}
		sort.Slice(segs, func(i, j int) bool { return segs[i].left < segs[j].left })

		var b strings.Builder
		x := 0
		for _, s := range segs {
			if s.left > x {
				b.WriteString(strings.Repeat(" ", s.left-x))
				x = s.left
			}
			if s.left+s.width > g.colWidth {
				s.width = g.colWidth - s.left
			}
			if s.width <= 0 {
				continue
			}
			b.WriteString(s.style.Render(padCell(s.text, s.width)))
			x += s.width
		}
		if x < g.colWidth {
			b.WriteString(strings.Repeat(" ", g.colWidth-x))
		}
		rows[r] = b.String()
	}
	return rows
}

// renderFooter draws the status line and the help line.
func (m Model) renderFooter() string {
	status := " "
	if m.statusMsg != "" {
		style := m.styles.StatusOK
		if m.statusErr {
			style = m.styles.StatusErr
		}
		status = style.Render(ansi.Truncate(m.statusMsg, m.width, "…"))
	}

	help := m.styles.Help.Render(ansi.Truncate(
		"h/l: navigate  d/w/m: view  t: today  g: go to date  y: copy  r: refresh  q: quit",
		m.width, "…"))

	if m.mode == ModePrompt {
		status = "Go to date: " + m.prompt.View()
	}

	return status + "\n" + help
}

// scheduleText renders the visible range as plain text for the clipboard.
func (m Model) scheduleText() string {
	var b strings.Builder
	b.WriteString(m.rangeTitle())
	b.WriteString("\n")
	for _, t := range m.cache.Tasks() {
		if !m.rng.Contains(t.Start) {
			continue
		}
		fmt.Fprintf(&b, "%s  %s-%s  %s\n",
			t.Start.Format("Mon Jan 02"),
			t.Start.Format("15:04"), t.End.Format("15:04"),
			t.Title)
	}
	return b.String()
}

// padCell truncates or pads text to an exact cell width.
func padCell(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// renderWeekdayHeader draws the Mon..Sun header row of the month grid.
func (m Model) renderWeekdayHeader() string {
	colW := m.width / 7
	if colW < 3 {
		colW = 3
	}
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	var cells []string
	for _, n := range names {
		cells = append(cells, m.styles.DayHeader.Render(padCell(n, colW)))
	}
	return strings.Join(cells, "")
}

// renderMonth draws a month overview. Cells are navigational: clicking one
// opens the day view for that date.
func (m Model) renderMonth() string {
	weeks := m.monthWeeks()
	gridRows := m.height - headerRows - footerRows
	if gridRows < len(weeks) {
		gridRows = len(weeks)
	}
	rowH := gridRows / len(weeks)
	if rowH < 1 {
		rowH = 1
	}
	colW := m.width / 7
	if colW < 3 {
		colW = 3
	}

	counts := make(map[task.Day]int)
	for _, t := range m.cache.Tasks() {
		counts[task.DayOf(t.Start)]++
	}
	today := task.DayOf(m.nowFunc())

	var b strings.Builder
	for _, week := range weeks {
		for r := 0; r < rowH; r++ {
			for _, day := range week {
				text := ""
				style := m.styles.MonthDay
				inMonth := day.Month() == m.refDate.Month()
				if !inMonth {
					style = m.styles.Help
				}
				if task.DayOf(day) == today {
					style = m.styles.MonthToday
				}
				switch r {
				case 0:
					text = fmt.Sprintf("%2d", day.Day())
				case 1:
					if n := counts[task.DayOf(day)]; n > 0 && inMonth {
						text = fmt.Sprintf("%d task", n)
						if n > 1 {
							text += "s"
						}
					}
				}
				b.WriteString(style.Render(padCell(text, colW)))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// monthWeeks returns the weeks covering the reference month, Monday first.
func (m Model) monthWeeks() [][]time.Time {
	first := dateutil.MonthStart(m.refDate)
	cur := dateutil.WeekStart(first)
	end := first.AddDate(0, 1, 0)

	var weeks [][]time.Time
	for cur.Before(end) {
		week := make([]time.Time, 7)
		for i := 0; i < 7; i++ {
			week[i] = cur
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// monthCellAt maps a terminal cell back to the month-grid date under it.
func (m Model) monthCellAt(x, y int) (time.Time, bool) {
	weeks := m.monthWeeks()
	gridRows := m.height - headerRows - footerRows
	if gridRows < len(weeks) {
		gridRows = len(weeks)
	}
	rowH := gridRows / len(weeks)
	if rowH < 1 {
		rowH = 1
	}
	colW := m.width / 7
	if colW < 3 {
		colW = 3
	}

	row := y - headerRows
	col := x / colW
	if row < 0 || col < 0 || col >= 7 {
		return time.Time{}, false
	}
	wk := row / rowH
	if wk >= len(weeks) {
		return time.Time{}, false
	}
	return weeks[wk][col], true
}
