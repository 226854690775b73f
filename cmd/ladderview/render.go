package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"ladderview/internal/textutil"
	"ladderview/internal/view"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

const labelWidth = 16

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func renderKeyValue(label, value string) string {
	return fmt.Sprintf("  %-*s %s", labelWidth, label+":", value)
}

// renderModel prints every section of one record view.
func renderModel(w io.Writer, model view.Model, colorize bool) {
	var lines []string
	section := func(title string) {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, renderSectionHeader(title, colorize)...)
	}

	section("Key Identifiers")
	for _, id := range model.Identifiers {
		lines = append(lines, renderKeyValue(id.Label, id.Value))
	}

	section("Summary")
	for _, card := range model.Cards {
		lines = append(lines, renderKeyValue(card.Title, card.Value))
	}

	section("Filtering Pipeline")
	lines = append(lines, renderFunnel(model))

	if len(model.Ladders) > 0 {
		section("Ladder Information")
		for _, block := range model.Ladders {
			lines = append(lines, renderLadder(block, colorize))
		}
	}

	if len(model.Details) > 0 {
		section(fmt.Sprintf("Additional Information (%d fields)", len(model.Details)))
		for _, d := range model.Details {
			lines = append(lines, renderDetail(d.Label, d.Value))
		}
	}

	if len(model.Settings) > 0 {
		section("Configuration Settings")
		for _, s := range model.Settings {
			lines = append(lines, renderDetail(s.Label, s.Compact))
		}
	}

	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

func renderFunnel(model view.Model) string {
	rows := make([][]string, 0, len(model.Stages))
	for i, stage := range model.Stages {
		removed := ""
		if len(stage.Removed) > 0 {
			removed = fmt.Sprintf("%d: %s", len(stage.Removed), strings.Join(stage.Removed, ", "))
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			stage.Name,
			strconv.Itoa(stage.Count),
			textutil.OneDecimal(stage.Percentage) + "%",
			removed,
		})
	}
	table := renderTable(tableSpec{
		headers: []string{"#", "Stage", "Count", "Share", "Removed"},
		rows:    rows,
		aligns:  []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft},
	})
	m := model.Metrics
	summary := fmt.Sprintf("  Initial: %d  Final: %d  Stages: %d  Retention: %s%%  Total Removed: %d ladders",
		m.TotalInitial, m.TotalFinal, m.StageCount, textutil.OneDecimal(m.RetentionPercent), m.TotalRemoved)
	return table + "\n" + summary
}

func renderLadder(block view.LadderBlock, colorize bool) string {
	if block.Empty() {
		return fmt.Sprintf("  %s: No ladder info available", block.Label)
	}
	rows := make([][]string, 0, block.Total)
	colors := make([]string, 0, block.Total)
	for _, c := range block.Selected {
		rows = append(rows, []string{"selected", c.Name, c.Bitrate, c.VMAF, c.Definition, ""})
		colors = append(colors, ansiGreen)
	}
	for _, c := range block.Rejected {
		rows = append(rows, []string{"rejected", c.Name, c.Bitrate, c.VMAF, c.Definition, c.Reason})
		colors = append(colors, ansiRed)
	}
	title := fmt.Sprintf("%s: %d selected, %d not selected, %d total", block.Label, len(block.Selected), len(block.Rejected), block.Total)
	if block.Unclassified > 0 {
		title += fmt.Sprintf(" (%d with unknown status)", block.Unclassified)
	}
	return renderTable(tableSpec{
		title:     title,
		headers:   []string{"Status", "Gear", "Bitrate", "VMAF", "Definition", "Reason"},
		rows:      rows,
		aligns:    []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
		rowColors: colors,
		colorize:  colorize,
	})
}

// renderDetail keeps multi-line values readable by indenting continuation lines.
func renderDetail(label, value string) string {
	if !strings.Contains(value, "\n") {
		return renderKeyValue(label, value)
	}
	indented := strings.ReplaceAll(value, "\n", "\n    ")
	return fmt.Sprintf("  %s:\n    %s", label, indented)
}
