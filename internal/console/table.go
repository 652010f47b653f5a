package console

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"sbdstream/internal/schedule"
)

// scheduleHeaders mirrors the CSV column order with a leading order number.
var scheduleHeaders = table.Row{"#", "Date", "Time", "Video", "Title", "Description"}

// RenderSchedule renders the ordered event sequence as a table. Order
// numbers are 1-based to match operator commands. The current index row
// (when >= 0) is marked with an asterisk on the order number, and video
// paths that do not resolve to an existing file carry a trailing "!"
// advisory marker.
func RenderSchedule(events []*schedule.Event, currentIndex int, videoExists func(string) bool, fancy bool) string {
	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(scheduleHeaders)

	for i, event := range events {
		order := strconv.Itoa(i + 1)
		if i == currentIndex {
			order += "*"
		}

		dateCol, clockCol := "", "unscheduled"
		if at, ok := event.Occurrence.At(); ok {
			dateCol = at.Format(schedule.DateLayout)
			clockCol = at.Format(schedule.ClockLayout)
		}

		video := event.VideoPath
		if video != "" && videoExists != nil && !videoExists(video) {
			video += " !"
		}

		tw.AppendRow(table.Row{order, dateCol, clockCol, video, event.Title, event.Description})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, WidthMax: 48},
	})

	return tw.Render()
}
