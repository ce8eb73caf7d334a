// Package platform identifies the host operating system and resolves
// the per-user directory where the launcher stores its data.
//
// Resolution follows platform conventions (APPDATA on Windows,
// Application Support on macOS, XDG data directories on Linux). An
// unrecognized operating system does not fail resolution; a dot
// directory under the user's home is used as a best-effort fallback so
// the launcher can still run.
package platform
