// Package config resolves runtime settings from the environment. The
// CLI layer feeds these values into cobra flag defaults, so every flag
// can also be set through a TMUX_SESSION_MANAGER_* variable.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	envStorageDir = "TMUX_SESSION_MANAGER_STORAGE_DIR"
	envSocketPath = "TMUX_SESSION_MANAGER_SOCKET"
	envLogFile    = "TMUX_SESSION_MANAGER_LOG_FILE"
	envTrace      = "TMUX_SESSION_MANAGER_TRACE"
	envPreview    = "TMUX_SESSION_MANAGER_PREVIEW"
	envConfirm    = "TMUX_SESSION_MANAGER_CONFIRM"
	envEditor     = "TMUX_SESSION_MANAGER_EDITOR"
)

// StorageDir returns the directory holding saved session configs:
// the override variable when set, otherwise ~/.config/tsessions.
func StorageDir() string {
	if dir := strings.TrimSpace(os.Getenv(envStorageDir)); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "tsessions")
	}
	return filepath.Join(home, ".config", "tsessions")
}

// SocketPath returns the tmux socket override, empty for the default
// server.
func SocketPath() string {
	return strings.TrimSpace(os.Getenv(envSocketPath))
}

// LogFile returns the log file override, empty for the default path.
func LogFile() string {
	return strings.TrimSpace(os.Getenv(envLogFile))
}

// Trace reports whether JSON trace logging is enabled by default.
func Trace() bool {
	return envBool(envTrace, false)
}

// Preview reports whether the preview panel starts visible.
func Preview() bool {
	return envBool(envPreview, false)
}

// ConfirmBeforeDelete reports whether deletes are confirmation gated.
func ConfirmBeforeDelete() bool {
	return envBool(envConfirm, false)
}

// Editor returns the command used to edit saved configs. The dedicated
// override wins over $EDITOR; the fallback is vi.
func Editor() string {
	if editor := strings.TrimSpace(os.Getenv(envEditor)); editor != "" {
		return editor
	}
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	return "vi"
}

func envBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return parsed
}
