// Package packages defines references to installable game builds.
package packages

import "fmt"

// Ref identifies an installable game package. A package is uniquely
// identified by its id (the release line, e.g. "skyhaven-stable") and
// version; everything else about a package is looked up from the
// package repository and is not part of its identity.
type Ref struct {
	ID      string
	Version string
}

// String returns the "id@version" form used in logs.
func (r Ref) String() string {
	return fmt.Sprintf("%s@%s", r.ID, r.Version)
}

// Zero reports whether the reference is empty.
func (r Ref) Zero() bool {
	return r.ID == "" && r.Version == ""
}
