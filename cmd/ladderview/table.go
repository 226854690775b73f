package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// tableSpec describes one rendered table. rowColors, when set, paints whole
// rows; it is ignored unless colorize is true.
type tableSpec struct {
	title     string
	headers   []string
	rows      [][]string
	aligns    []columnAlignment
	rowColors []string
	colorize  bool
}

func renderTable(spec tableSpec) string {
	columns := len(spec.headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if spec.title != "" {
		tw.SetTitle(spec.title)
	}

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = spec.headers[i]
	}
	tw.AppendHeader(header)

	for idx, row := range spec.rows {
		r := make(table.Row, columns)
		color := ""
		if spec.colorize && idx < len(spec.rowColors) {
			color = spec.rowColors[idx]
		}
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if color != "" && cell != "" {
				cell = color + cell + ansiReset
			}
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(spec.aligns) && spec.aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
