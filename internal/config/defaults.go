package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultFormat    = "PNG"
	defaultQuality   = 85
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Conversion: Conversion{
			Format:  defaultFormat,
			Quality: defaultQuality,
			Workers: 0,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
	}
}

func defaultHistoryPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "heicvert", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/heicvert/history.db"
	}
	return filepath.Join(home, ".local", "share", "heicvert", "history.db")
}
