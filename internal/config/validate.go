package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateShare(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind %q: %w", c.Server.Bind, err)
	}
	return ensurePositiveMap(map[string]int{
		"server.read_timeout_seconds":  c.Server.ReadTimeoutSeconds,
		"server.write_timeout_seconds": c.Server.WriteTimeoutSeconds,
		"server.max_upload_mib":        c.Server.MaxUploadMiB,
	})
}

func (c *Config) validateShare() error {
	parsed, err := url.Parse(c.Share.BaseURL)
	if err != nil {
		return fmt.Errorf("share.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("share.base_url must use http or https, got %q", c.Share.BaseURL)
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return errors.New("share.base_url must not carry a query or fragment")
	}
	if strings.ContainsAny(c.Share.Param, "&=#? ") {
		return fmt.Errorf("share.param %q contains reserved characters", c.Share.Param)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
