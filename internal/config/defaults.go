package config

const (
	defaultConfigPath          = "~/.config/ladderview/config.toml"
	projectConfigName          = "ladderview.toml"
	defaultLogDir              = "~/.local/share/ladderview/logs"
	defaultStateDir            = "~/.local/state/ladderview"
	defaultBind                = "127.0.0.1:7487"
	defaultReadTimeoutSeconds  = 15
	defaultWriteTimeoutSeconds = 30
	defaultMaxUploadMiB        = 32
	defaultShareRoute          = "/shared"
	defaultShareParam          = "data"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"

	// ShareBaseURLEnv overrides an unset share.base_url.
	ShareBaseURLEnv = "LADDERVIEW_SHARE_BASE_URL"
)

// DefaultHiddenFields lists the record fields already surfaced by summary cards.
var DefaultHiddenFields = []string{
	"priority_region",
	"device_platform",
	"video_duration",
	"overall_score",
	"access_type",
}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Server: Server{
			Bind:                defaultBind,
			ReadTimeoutSeconds:  defaultReadTimeoutSeconds,
			WriteTimeoutSeconds: defaultWriteTimeoutSeconds,
			MaxUploadMiB:        defaultMaxUploadMiB,
		},
		Share: Share{
			Route: defaultShareRoute,
			Param: defaultShareParam,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		View: View{
			HiddenFields: append([]string(nil), DefaultHiddenFields...),
		},
	}
}
