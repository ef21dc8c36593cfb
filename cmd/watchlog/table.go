package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableColumn describes one column of an operation's result table.
type tableColumn struct {
	title      string
	rightAlign bool
}

// Fixed column sets for the results rendered on a terminal. Numeric columns
// are right-aligned.
var (
	linkColumns = []tableColumn{
		{title: "Link"},
		{title: "Duration", rightAlign: true},
		{title: "Published"},
		{title: "Author"},
		{title: "Exist"},
	}
	routineColumns = []tableColumn{
		{title: "Date"},
		{title: "Color"},
		{title: "Total", rightAlign: true},
	}
	duplicateColumns = []tableColumn{
		{title: "Link"},
		{title: "Positions"},
	}
)

// renderTable lays rows out under the given column set. Short rows are
// padded with empty cells so every operation can share one renderer.
func renderTable(columns []tableColumn, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.title
		align := text.AlignLeft
		if col.rightAlign {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
