package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ApplicationDirectory returns the writable per-user directory where the
// named application should keep its data, following platform conventions:
//   - Windows: %APPDATA%\<appName> (falling back to %USERPROFILE%\AppData\Roaming)
//   - macOS: $HOME/Library/Application Support/<appName>
//   - Linux: $XDG_DATA_HOME/<appName> or $HOME/.local/share/<appName>
//
// For an Unknown operating system it falls back to $HOME/.<appName> in
// lower case. The directory is not created; callers create it on first
// write. An error is returned only when no home directory can be
// determined at all.
func ApplicationDirectory(osys OS, appName string) (string, error) {
	switch osys {
	case Windows:
		appData := os.Getenv("APPDATA")
		if appData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine application data directory (APPDATA and USERPROFILE not set)")
			}
			appData = filepath.Join(userProfile, "AppData", "Roaming")
		}
		return filepath.Join(appData, appName), nil

	case MacOS:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, "Library", "Application Support", appName), nil

	case Linux:
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".local", "share", appName), nil

	default:
		// Best-effort fallback for unrecognized systems.
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, "."+strings.ToLower(appName)), nil
	}
}
