package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"golang.org/x/text/language"

	"github.com/skyhaven/launcher/internal/packages"
	"github.com/skyhaven/launcher/internal/platform"
	"github.com/skyhaven/launcher/internal/settings"
)

// document is the wire form of a Snapshot. The config file is meant to
// be hand-editable, so field names are stable and the game section is
// kept as a nested object rather than flattened.
type document struct {
	Game                 gameDocument `json:"game"`
	Locale               string       `json:"locale"`
	LauncherDir          string       `json:"launcherDir"`
	CheckUpdatesOnLaunch bool         `json:"checkUpdatesOnLaunch"`
	CacheGamePackages    bool         `json:"cacheGamePackages"`
	CloseAfterGameStarts bool         `json:"closeAfterGameStarts"`
}

type gameDocument struct {
	InstallDir string           `json:"installDir"`
	DataDir    string           `json:"dataDir"`
	MaxMemory  string           `json:"maxMemory"`
	InitMemory string           `json:"initMemory"`
	JavaParams string           `json:"javaParams"`
	LogLevel   string           `json:"logLevel"`
	Package    *packageDocument `json:"package,omitempty"`
}

type packageDocument struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// pathAdapter translates filesystem paths to and from their canonical
// string form. Decoding validates the string against the host OS.
type pathAdapter struct{}

func (pathAdapter) Encode(p string) string {
	return filepath.Clean(p)
}

func (pathAdapter) Decode(field, value string) (string, error) {
	if err := platform.ValidatePath(value); err != nil {
		return "", &MalformedPathError{Field: field, Value: value, Err: err}
	}
	return filepath.Clean(value), nil
}

// packageAdapter translates package references to and from their
// identifying attributes. Anything else about a package is repository
// state and never serialized.
type packageAdapter struct{}

func (packageAdapter) Encode(r packages.Ref) *packageDocument {
	if r.Zero() {
		return nil
	}
	return &packageDocument{ID: r.ID, Version: r.Version}
}

func (packageAdapter) Decode(d *packageDocument) (packages.Ref, error) {
	if d == nil {
		return packages.Ref{}, nil
	}
	var missing []string
	if d.ID == "" {
		missing = append(missing, "id")
	}
	if d.Version == "" {
		missing = append(missing, "version")
	}
	if len(missing) > 0 {
		return packages.Ref{}, &MalformedPackageRefError{Missing: missing}
	}
	return packages.Ref{ID: d.ID, Version: d.Version}, nil
}

// Codec converts configuration snapshots to and from the on-disk JSON
// document. The two non-primitive field types, paths and package
// references, go through adapters registered at construction.
type Codec struct {
	paths pathAdapter
	pkgs  packageAdapter
}

// NewCodec creates a codec with the path and package adapters
// registered.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode serializes a snapshot as a pretty-printed UTF-8 JSON document.
// Output is meant for humans: two-space indent and no HTML escaping, so
// embedded path separators stay readable.
func (c *Codec) Encode(s *Snapshot) ([]byte, error) {
	doc := document{
		Game: gameDocument{
			InstallDir: c.paths.Encode(s.Game.InstallDir),
			DataDir:    c.paths.Encode(s.Game.DataDir),
			MaxMemory:  string(s.Game.MaxHeap),
			InitMemory: string(s.Game.InitialHeap),
			JavaParams: s.Game.JavaParams,
			LogLevel:   string(s.Game.LogLevel),
			Package:    c.pkgs.Encode(s.Game.Package),
		},
		Locale:               s.Locale.String(),
		LauncherDir:          c.paths.Encode(s.LauncherDir),
		CheckUpdatesOnLaunch: s.CheckUpdatesOnLaunch,
		CacheGamePackages:    s.CacheGamePackages,
		CloseAfterGameStarts: s.CloseAfterGameStarts,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return pretty.Pretty(buf.Bytes()), nil
}

// Decode parses a document produced by Encode (or edited by hand) back
// into a snapshot. It never panics on bad input; every failure mode is
// a typed, recoverable error.
func (c *Codec) Decode(data []byte) (*Snapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &MalformedDocumentError{Reason: "document is empty"}
	}
	if !gjson.ValidBytes(data) {
		return nil, &MalformedDocumentError{Reason: "invalid JSON syntax"}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Reason: "document does not match the config schema", Err: err}
	}

	installDir, err := c.paths.Decode("game.installDir", doc.Game.InstallDir)
	if err != nil {
		return nil, err
	}
	dataDir, err := c.paths.Decode("game.dataDir", doc.Game.DataDir)
	if err != nil {
		return nil, err
	}
	launcherDir, err := c.paths.Decode("launcherDir", doc.LauncherDir)
	if err != nil {
		return nil, err
	}

	ref, err := c.pkgs.Decode(doc.Game.Package)
	if err != nil {
		return nil, err
	}

	maxHeap, err := settings.ParseHeapSize(doc.Game.MaxMemory)
	if err != nil {
		return nil, &MalformedDocumentError{Reason: "field maxMemory", Err: err}
	}
	initHeap, err := settings.ParseHeapSize(doc.Game.InitMemory)
	if err != nil {
		return nil, &MalformedDocumentError{Reason: "field initMemory", Err: err}
	}
	level, err := settings.ParseLogLevel(doc.Game.LogLevel)
	if err != nil {
		return nil, &MalformedDocumentError{Reason: "field logLevel", Err: err}
	}
	locale, err := language.Parse(doc.Locale)
	if err != nil {
		return nil, &MalformedDocumentError{Reason: "field locale", Err: err}
	}

	snap, err := NewBuilder().
		InstallDir(installDir).
		DataDir(dataDir).
		MaxHeap(maxHeap).
		InitialHeap(initHeap).
		JavaParams(doc.Game.JavaParams).
		LogLevel(level).
		Package(ref).
		Locale(locale).
		LauncherDir(launcherDir).
		CheckUpdatesOnLaunch(doc.CheckUpdatesOnLaunch).
		CacheGamePackages(doc.CacheGamePackages).
		CloseAfterGameStarts(doc.CloseAfterGameStarts).
		Build()
	if err != nil {
		return nil, &MalformedDocumentError{Reason: "incomplete configuration", Err: err}
	}
	return snap, nil
}
