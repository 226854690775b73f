package testsupport

import (
	"path/filepath"
	"testing"

	"ladderview/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Share links point at http://viewer.test and the server binds an ephemeral port.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Server.Bind = "127.0.0.1:0"
	cfgVal.Share.BaseURL = "http://viewer.test"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithShareBaseURL overrides the share link base.
func WithShareBaseURL(base string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Share.BaseURL = base
	}
}

// WithMaxUploadMiB overrides the upload limit.
func WithMaxUploadMiB(mib int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.MaxUploadMiB = mib
	}
}

// WithHiddenFields replaces the hidden detail fields.
func WithHiddenFields(names ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.View.HiddenFields = append([]string(nil), names...)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
