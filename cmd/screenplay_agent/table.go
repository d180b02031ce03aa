package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// summaryRow is one labeled line of the post-run summary table.
type summaryRow struct {
	Label string
	Value string
}

// renderSummary renders the generation summary as a two-column table.
func renderSummary(title string, rows []summaryRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)

	for _, row := range rows {
		tw.AppendRow(table.Row{row.Label, row.Value})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, WidthMax: 60},
	})

	return tw.Render()
}
