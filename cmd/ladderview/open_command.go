package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ladderview/internal/logging"
	"ladderview/internal/share"
	"ladderview/internal/view"
)

func newOpenCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "open <share-url|token>",
		Short: "Decode a share link and show the shared record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			token := ctx.shareLink().TokenFrom(args[0])
			rec, err := share.Decode(token)
			if err != nil {
				reason := share.ReasonOf(err)
				logger.Debug("share token rejected", logging.String("reason", reason.String()), logging.Error(err))
				return errors.New(reason.Message())
			}
			model := view.Build(rec, view.Options{
				HiddenFields: ctx.hiddenFields(),
				Shared:       true,
				Logger:       logger,
			})
			if jsonOut {
				return writeJSON(cmd, model)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Shared record")
			fmt.Fprintln(out)
			renderModel(out, model, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the render model as JSON")
	return cmd
}
