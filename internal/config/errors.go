package config

import (
	"fmt"
	"io/fs"
	"strings"
)

// MalformedDocumentError reports a config file that is not a valid
// document: empty, syntactically broken JSON, or carrying field values
// that do not decode into a full snapshot.
type MalformedDocumentError struct {
	// Reason describes what is wrong with the document
	Reason string
	// Underlying error if any
	Err error
}

func (e *MalformedDocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed config document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed config document: %s", e.Reason)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// MalformedPathError reports a path field whose stored string is not a
// valid filesystem path on the host operating system.
type MalformedPathError struct {
	// Field is the document field holding the bad path
	Field string
	// Value is the stored string
	Value string
	// Underlying error
	Err error
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path in field %q (value %q): %v", e.Field, e.Value, e.Err)
}

func (e *MalformedPathError) Unwrap() error {
	return e.Err
}

// MalformedPackageRefError reports a package reference missing one or
// more of its identifying attributes.
type MalformedPackageRefError struct {
	// Missing lists the absent attributes
	Missing []string
}

func (e *MalformedPackageRefError) Error() string {
	return fmt.Sprintf("malformed package reference: missing %s", strings.Join(e.Missing, ", "))
}

// FileNotFoundError reports that no config file exists at the storage
// location. A load that fails this way is not fatal; the default
// snapshot simply stands.
type FileNotFoundError struct {
	// Path is the storage location that was checked
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// Unwrap lets errors.Is(err, fs.ErrNotExist) match.
func (e *FileNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// WriteError reports a failure to persist the configuration: the
// directory could not be created or the file could not be written.
type WriteError struct {
	// Path is the destination that failed
	Path string
	// Underlying error
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write config file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// UnsupportedOSError reports an operating system the launcher has no
// directory conventions for. It is logged during store construction;
// construction still succeeds with a best-effort fallback directory.
type UnsupportedOSError struct {
	// GOOS is the runtime.GOOS value that was not recognized
	GOOS string
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("unsupported operating system: %s", e.GOOS)
}
