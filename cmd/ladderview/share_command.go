package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ladderview/internal/logging"
	"ladderview/internal/share"
)

type shareOutput struct {
	Position int    `json:"position"`
	Token    string `json:"token"`
	URL      string `json:"url"`
	Copied   bool   `json:"copied"`
}

func newShareCommand(ctx *commandContext) *cobra.Command {
	opts := inputOptions{position: 1}
	var copyURL bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "share [file]",
		Short: "Build a share link for one record",
		Long: "Build a share link for one record. Configuration settings fields are left\n" +
			"out of the link; the rest of the record travels compressed in the URL.",
		Args: cobra.MaximumNArgs(1),
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
			token, err := share.Encode(cur.Current())
			if err != nil {
				return err
			}
			result := shareOutput{
				Position: cur.Position(),
				Token:    token,
				URL:      ctx.shareLink().URL(token),
			}
			if copyURL {
				if err := writeClipboard(result.URL); err != nil {
					return fmt.Errorf("copy share link: %w", err)
				}
				result.Copied = true
			}
			logger.Debug("share link built",
				logging.Int(logging.FieldRecord, result.Position),
				logging.Int("token_length", len(token)),
				logging.Bool("copied", result.Copied),
			)

			if jsonOut {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.URL)
			if result.Copied {
				fmt.Fprintln(cmd.ErrOrStderr(), "Link copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.position, "record", "r", 1, "1-based record to share")
	cmd.Flags().BoolVar(&opts.fromClipboard, "from-clipboard", false, "Read pasted JSON from the clipboard")
	cmd.Flags().BoolVar(&copyURL, "copy", false, "Copy the link to the clipboard")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON")
	return cmd
}
