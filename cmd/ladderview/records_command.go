package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ladderview/internal/view"
)

type recordSummary struct {
	Position    int               `json:"position"`
	Identifiers []view.Identifier `json:"identifiers"`
}

func newRecordsCommand(ctx *commandContext) *cobra.Command {
	var opts inputOptions
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "records [file]",
		Short: "List the key identifiers of every record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load(args)
			if err != nil {
				return err
			}
			summaries := make([]recordSummary, 0, ds.Len())
			for i, rec := range ds.Records() {
				summaries = append(summaries, recordSummary{Position: i + 1, Identifiers: view.Identifiers(rec)})
			}
			if jsonOut {
				return writeJSON(cmd, summaries)
			}

			headers := []string{"#"}
			aligns := []columnAlignment{alignRight}
			if len(summaries) > 0 {
				for _, id := range summaries[0].Identifiers {
					headers = append(headers, id.Label)
					aligns = append(aligns, alignLeft)
				}
			}
			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				row := []string{strconv.Itoa(s.Position)}
				for _, id := range s.Identifiers {
					row = append(row, id.Value)
				}
				rows = append(rows, row)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s · %d records\n", ds.Source(), ds.Len())
			fmt.Fprintln(out, renderTable(tableSpec{
				headers: headers,
				rows:    rows,
				aligns:  aligns,
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.fromClipboard, "from-clipboard", false, "Read pasted JSON from the clipboard")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
