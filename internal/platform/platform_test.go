package platform

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	osys := Current()

	switch runtime.GOOS {
	case "linux":
		if osys != Linux {
			t.Errorf("Current() = %v, want Linux", osys)
		}
	case "darwin":
		if osys != MacOS {
			t.Errorf("Current() = %v, want MacOS", osys)
		}
	case "windows":
		if osys != Windows {
			t.Errorf("Current() = %v, want Windows", osys)
		}
	}

	t.Logf("Current OS: %s", osys)
}

func TestApplicationDirectory(t *testing.T) {
	dir, err := ApplicationDirectory(Current(), "SkyhavenLauncher")
	if err != nil {
		t.Fatalf("ApplicationDirectory() error = %v", err)
	}

	if dir == "" {
		t.Fatal("ApplicationDirectory() returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ApplicationDirectory() = %v, want absolute path", dir)
	}
	if !strings.Contains(dir, "SkyhavenLauncher") && !strings.Contains(dir, "skyhavenlauncher") {
		t.Errorf("ApplicationDirectory() = %v, should contain the application name", dir)
	}

	t.Logf("Application directory: %s", dir)
}

func TestApplicationDirectoryUnknownOS(t *testing.T) {
	// Unknown OS must still resolve somewhere writable.
	dir, err := ApplicationDirectory(Unknown, "SkyhavenLauncher")
	if err != nil {
		t.Fatalf("ApplicationDirectory(Unknown) error = %v", err)
	}
	if !strings.HasSuffix(dir, ".skyhavenlauncher") {
		t.Errorf("ApplicationDirectory(Unknown) = %v, want home dot directory", dir)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple relative", "saves/world1", false},
		{"absolute", filepath.Join(string(filepath.Separator), "opt", "skyhaven"), false},
		{"empty", "", true},
		{"embedded NUL", "saves\x00world", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
