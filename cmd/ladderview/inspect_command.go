package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ladderview/internal/logging"
	"ladderview/internal/view"
)

type inspectOutput struct {
	Source   string     `json:"source"`
	Position int        `json:"position"`
	Total    int        `json:"total"`
	Record   view.Model `json:"record"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	opts := inputOptions{position: 1}
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the stage funnel, ladders and details for one record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			ds, err := opts.load(args)
			if err != nil {
				return err
			}
			cur, err := opts.cursor(ds)
			if err != nil {
				return err
			}
			logger = logging.WithContext(logging.WithRecord(cmd.Context(), cur.Position()), logger)
			model := view.Build(cur.Current(), view.Options{
				HiddenFields: ctx.hiddenFields(),
				Logger:       logger,
			})

			if jsonOut {
				return writeJSON(cmd, inspectOutput{
					Source:   ds.Source(),
					Position: cur.Position(),
					Total:    cur.Len(),
					Record:   model,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s · %s\n\n", cur.Label(), ds.Source())
			renderModel(out, model, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.position, "record", "r", 1, "1-based record to show")
	cmd.Flags().BoolVar(&opts.fromClipboard, "from-clipboard", false, "Read pasted JSON from the clipboard")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the render model as JSON")
	return cmd
}
