package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"ladderview/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration utilities",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigShowCommand())

	return configCmd
}

// initTarget resolves where `config init` writes, refusing to clobber an
// existing file unless overwrite is set.
func initTarget(pathFlag string, overwrite bool) (string, error) {
	var (
		target string
		err    error
	)
	if pathFlag = strings.TrimSpace(pathFlag); pathFlag == "" {
		target, err = config.DefaultConfigPath()
	} else {
		target, err = config.ExpandPath(pathFlag)
	}
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	if overwrite {
		return target, nil
	}
	switch _, err := os.Stat(target); {
	case err == nil:
		return "", fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("check config path: %w", err)
	}
	return target, nil
}

func newConfigInitCommand() *cobra.Command {
	var pathFlag string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := initTarget(pathFlag, overwrite)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintf(out, "Set share.base_url (or export %s) to the address others use to reach the viewer.\n", config.ShareBaseURLEnv)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

// loadForReport loads the config named by the persistent --config flag
// without the root pre-run, so load errors are reported by the subcommand.
func loadForReport(cmd *cobra.Command) (*config.Config, string, bool, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, resolved, exists, err := config.Load(strings.TrimSpace(path))
	if err != nil {
		return nil, "", false, fmt.Errorf("load config: %w", err)
	}
	return cfg, resolved, exists, nil
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configuration and report the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, resolved, exists, err := loadForReport(cmd)
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}
			source := resolved
			if !exists {
				source += " (not found, defaults used)"
			}
			out := cmd.OutOrStdout()
			for _, line := range []string{
				renderKeyValue("Config path", source),
				renderKeyValue("Viewer bind", cfg.Server.Bind),
				renderKeyValue("Share links", fmt.Sprintf("%s%s?%s=<token>", cfg.Share.BaseURL, cfg.Share.Route, cfg.Share.Param)),
				renderKeyValue("Log directory", cfg.Paths.LogDir),
				renderKeyValue("State directory", cfg.Paths.StateDir),
			} {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := loadForReport(cmd)
			if err != nil {
				return err
			}
			enc := toml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndentTables(true)
			return enc.Encode(cfg)
		},
	}
}
