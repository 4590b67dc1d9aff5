package main

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"heicvert/internal/history"
)

// renderRunTable renders run-history records. Directory and format columns
// stay left-aligned; the numeric counters and duration are right-aligned.
func renderRunTable(records []history.Record) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{
		"When", "Input", "Output", "Format",
		"Quality", "Workers", "Converted", "Skipped", "Errors", "Duration",
	})
	for _, rec := range records {
		tw.AppendRow(table.Row{
			rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
			rec.InputDir,
			rec.OutputDir,
			rec.Format,
			strconv.Itoa(rec.Quality),
			strconv.Itoa(rec.Workers),
			strconv.Itoa(rec.Converted),
			strconv.Itoa(rec.Skipped),
			strconv.Itoa(rec.Failed),
			rec.Duration.Round(100 * time.Millisecond).String(),
		})
	}

	const firstNumericColumn = 5
	columnConfigs := make([]table.ColumnConfig, 0, 10)
	for i := 1; i <= 10; i++ {
		align := text.AlignLeft
		if i >= firstNumericColumn {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
