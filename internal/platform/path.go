package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// ValidatePath reports whether s is a syntactically valid filesystem
// path on the host operating system. It checks syntax only; the path
// does not have to exist.
func ValidatePath(s string) error {
	if s == "" {
		return fmt.Errorf("path is empty")
	}
	if strings.ContainsRune(s, 0) {
		return fmt.Errorf("path contains a NUL byte")
	}
	if runtime.GOOS == "windows" {
		return validateWindowsPath(s)
	}
	return nil
}

// validateWindowsPath rejects characters NTFS and the Win32 API refuse
// in path components. A colon is allowed only as part of a leading
// drive specifier ("C:").
func validateWindowsPath(s string) error {
	for i, r := range s {
		switch r {
		case '<', '>', '"', '|', '?', '*':
			return fmt.Errorf("path contains reserved character %q", r)
		case ':':
			if i != 1 {
				return fmt.Errorf("path contains a colon outside the drive specifier")
			}
		}
	}
	return nil
}
