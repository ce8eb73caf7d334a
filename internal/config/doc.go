// Package config manages the launcher's persisted configuration.
//
// The package is built around three pieces. A Snapshot is the full
// configuration value at a point in time, immutable by convention and
// always fully populated. The Store owns the current snapshot and the
// resolved storage location, and swaps snapshots atomically so readers
// never observe a partial configuration. The Codec translates
// snapshots to and from the pretty-printed JSON document stored at
// <launcher-dir>/config.json.
//
// # Lifecycle
//
// The process-wide store is created lazily on the first Get call and
// installs the built-in default snapshot synchronously, so a valid
// configuration exists before the on-disk file has been read. The host
// triggers StartLoad once at startup and StartSave when the user
// applies settings changes; both run off the caller's goroutine and
// report completion over a channel. A failed load or save leaves the
// installed snapshot untouched.
//
// # Threading
//
// Snapshot, Install, StartLoad and StartSave are safe for concurrent
// use. Starting an operation that is already running is rejected with
// task.ErrAlreadyRunning rather than queued. Load and save runs that
// overlap are not ordered with respect to each other; the save writes
// whichever snapshot is current when it begins.
package config
