package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeServer()
	c.normalizeShare()
	c.normalizeLogging()
	c.normalizeView()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultBind
	}
}

func (c *Config) normalizeShare() {
	c.Share.BaseURL = strings.TrimSpace(c.Share.BaseURL)
	if c.Share.BaseURL == "" {
		if value, ok := os.LookupEnv(ShareBaseURLEnv); ok {
			c.Share.BaseURL = strings.TrimSpace(value)
		}
	}
	if c.Share.BaseURL == "" {
		c.Share.BaseURL = "http://" + c.Server.Bind
	}
	c.Share.BaseURL = strings.TrimRight(c.Share.BaseURL, "/")

	c.Share.Route = strings.TrimSpace(c.Share.Route)
	if c.Share.Route == "" {
		c.Share.Route = defaultShareRoute
	}
	if !strings.HasPrefix(c.Share.Route, "/") {
		c.Share.Route = "/" + c.Share.Route
	}
	c.Share.Param = strings.TrimSpace(c.Share.Param)
	if c.Share.Param == "" {
		c.Share.Param = defaultShareParam
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format != "json" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeView() {
	fields := make([]string, 0, len(c.View.HiddenFields))
	seen := make(map[string]struct{}, len(c.View.HiddenFields))
	for _, name := range c.View.HiddenFields {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	c.View.HiddenFields = fields
}
