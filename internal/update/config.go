package update

import (
	"fmt"
	"os"
	"strings"

	"github.com/sandeepkv93/tasklog/internal/log"
	"github.com/sandeepkv93/tasklog/internal/model"
)

type RuntimeConfig struct {
	LedgerPath string `yaml:"ledger_path"`
	LogPath    string `yaml:"log_path"`
	LogLevel   string `yaml:"log_level"`
	SeedEvents bool   `yaml:"seed_events"`
	FocusDate  string `yaml:"focus_date"`
	ExportDir  string `yaml:"export_dir"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		LedgerPath: "",
		LogPath:    "tasklog.log",
		LogLevel:   "info",
		SeedEvents: true,
		FocusDate:  "",
		ExportDir:  ".",
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TASKLOG_LEDGER"); ok {
		cfg.LedgerPath = v
	}
	if v, ok := getEnvString("TASKLOG_LOG_FILE"); ok {
		cfg.LogPath = v
	}
	if v, ok := getEnvString("TASKLOG_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := getEnvBool("TASKLOG_SEED"); ok {
		cfg.SeedEvents = v
	}
	if v, ok := getEnvString("TASKLOG_FOCUS_DATE"); ok {
		cfg.FocusDate = v
	}
	if v, ok := getEnvString("TASKLOG_EXPORT_DIR"); ok && v != "" {
		cfg.ExportDir = v
	}
	return cfg
}

// Validate rejects values the program cannot start with. Empty paths are
// allowed and switch the matching feature off.
func (c RuntimeConfig) Validate() error {
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if c.FocusDate != "" {
		if _, err := model.ParseDate(c.FocusDate); err != nil {
			return fmt.Errorf("config: focus date: %w", err)
		}
	}
	return nil
}

// getEnvString distinguishes an unset variable from one set to empty, so a
// path can be switched off from the environment.
func getEnvString(name string) (string, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
