package platform

import "runtime"

// OS identifies the host operating system family.
type OS int

const (
	// Unknown is any operating system the launcher has no directory
	// conventions for.
	Unknown OS = iota
	// Linux covers Linux and other Unix-like systems.
	Linux
	// MacOS is Apple macOS.
	MacOS
	// Windows is Microsoft Windows.
	Windows
)

// Current identifies the operating system the process is running on.
func Current() OS {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return Linux
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// String returns a human-readable name for the operating system.
func (o OS) String() string {
	switch o {
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}
