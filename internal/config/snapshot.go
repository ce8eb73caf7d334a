package config

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/language"

	"github.com/skyhaven/launcher/internal/packages"
	"github.com/skyhaven/launcher/internal/platform"
	"github.com/skyhaven/launcher/internal/settings"
)

// Directory names created under the launcher directory for the game
// itself and its save/module data.
const (
	gameDirName     = "Skyhaven"
	gameDataDirName = "SkyhavenData"
)

// defaultJavaParams are the JVM tuning flags passed to the game when
// the user has not overridden them.
const defaultJavaParams = "-XX:+UseParNewGC" +
	" -XX:+UseConcMarkSweepGC" +
	" -XX:MaxGCPauseMillis=20" +
	" -XX:ParallelGCThreads=10"

// GameSettings is the game-related section of a configuration snapshot.
type GameSettings struct {
	// InstallDir is where game builds are installed
	InstallDir string
	// DataDir holds saves, modules and screenshots
	DataDir string
	// MaxHeap is the JVM maximum heap size (-Xmx)
	MaxHeap settings.HeapSize
	// InitialHeap is the JVM initial heap size (-Xms)
	InitialHeap settings.HeapSize
	// JavaParams are extra JVM arguments appended to the command line
	JavaParams string
	// LogLevel is the game log verbosity
	LogLevel settings.LogLevel
	// Package is the game build selected to launch; the zero Ref means
	// no build has been selected yet
	Package packages.Ref
}

// Snapshot is a full launcher configuration at a point in time.
//
// A Snapshot is immutable by convention: it is constructed wholesale
// through a Builder or the default factory and must not be modified
// afterwards. Callers receive snapshots from the Store read-only.
type Snapshot struct {
	// Game holds the game-related settings section
	Game GameSettings
	// Locale is the launcher display language
	Locale language.Tag
	// LauncherDir is the storage root the launcher runs from
	LauncherDir string
	// CheckUpdatesOnLaunch controls the update check at startup
	CheckUpdatesOnLaunch bool
	// CacheGamePackages controls whether downloaded builds are kept
	CacheGamePackages bool
	// CloseAfterGameStarts closes the launcher window once the game runs
	CloseAfterGameStarts bool
}

// defaultSnapshot builds the built-in configuration rooted at
// launcherDir. It never fails: every value is a documented literal or
// derived from launcherDir.
func defaultSnapshot(launcherDir string) *Snapshot {
	return &Snapshot{
		Game: GameSettings{
			InstallDir:  filepath.Join(launcherDir, gameDirName),
			DataDir:     filepath.Join(launcherDir, gameDataDirName),
			MaxHeap:     settings.HeapGb1_5,
			InitialHeap: settings.HeapGb1,
			JavaParams:  defaultJavaParams,
			LogLevel:    settings.LevelDefault,
		},
		Locale:               language.English,
		LauncherDir:          launcherDir,
		CheckUpdatesOnLaunch: false,
		CacheGamePackages:    true,
		CloseAfterGameStarts: true,
	}
}

// Builder assembles a Snapshot, validating that every field is set to a
// legal value before the Snapshot is released.
//
// Example usage:
//
//	snap, err := config.NewBuilder().
//	    From(store.Snapshot()).
//	    MaxHeap(settings.HeapGb2).
//	    Locale(language.German).
//	    Build()
type Builder struct {
	s Snapshot
}

// NewBuilder creates an empty builder. All fields must be set before
// Build; start From an existing snapshot to change only a few.
func NewBuilder() *Builder {
	return &Builder{}
}

// From copies every field of an existing snapshot as the baseline.
func (b *Builder) From(s *Snapshot) *Builder {
	b.s = *s
	return b
}

// InstallDir sets the game installation directory.
func (b *Builder) InstallDir(dir string) *Builder {
	b.s.Game.InstallDir = dir
	return b
}

// DataDir sets the game data directory.
func (b *Builder) DataDir(dir string) *Builder {
	b.s.Game.DataDir = dir
	return b
}

// MaxHeap sets the JVM maximum heap size.
func (b *Builder) MaxHeap(h settings.HeapSize) *Builder {
	b.s.Game.MaxHeap = h
	return b
}

// InitialHeap sets the JVM initial heap size.
func (b *Builder) InitialHeap(h settings.HeapSize) *Builder {
	b.s.Game.InitialHeap = h
	return b
}

// JavaParams sets extra JVM arguments.
func (b *Builder) JavaParams(params string) *Builder {
	b.s.Game.JavaParams = params
	return b
}

// LogLevel sets the game log verbosity.
func (b *Builder) LogLevel(l settings.LogLevel) *Builder {
	b.s.Game.LogLevel = l
	return b
}

// Package sets the selected game build.
func (b *Builder) Package(ref packages.Ref) *Builder {
	b.s.Game.Package = ref
	return b
}

// Locale sets the launcher display language.
func (b *Builder) Locale(tag language.Tag) *Builder {
	b.s.Locale = tag
	return b
}

// LauncherDir sets the storage root.
func (b *Builder) LauncherDir(dir string) *Builder {
	b.s.LauncherDir = dir
	return b
}

// CheckUpdatesOnLaunch sets the startup update check flag.
func (b *Builder) CheckUpdatesOnLaunch(v bool) *Builder {
	b.s.CheckUpdatesOnLaunch = v
	return b
}

// CacheGamePackages sets the package cache flag.
func (b *Builder) CacheGamePackages(v bool) *Builder {
	b.s.CacheGamePackages = v
	return b
}

// CloseAfterGameStarts sets the close-on-launch flag.
func (b *Builder) CloseAfterGameStarts(v bool) *Builder {
	b.s.CloseAfterGameStarts = v
	return b
}

// Build validates the assembled snapshot and returns it. A snapshot
// never leaves the builder partially populated.
func (b *Builder) Build() (*Snapshot, error) {
	if err := platform.ValidatePath(b.s.Game.InstallDir); err != nil {
		return nil, fmt.Errorf("install directory: %w", err)
	}
	if err := platform.ValidatePath(b.s.Game.DataDir); err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	if err := platform.ValidatePath(b.s.LauncherDir); err != nil {
		return nil, fmt.Errorf("launcher directory: %w", err)
	}
	if !b.s.Game.MaxHeap.Valid() {
		return nil, fmt.Errorf("invalid maximum heap size %q", b.s.Game.MaxHeap)
	}
	if !b.s.Game.InitialHeap.Valid() {
		return nil, fmt.Errorf("invalid initial heap size %q", b.s.Game.InitialHeap)
	}
	if !b.s.Game.LogLevel.Valid() {
		return nil, fmt.Errorf("invalid log level %q", b.s.Game.LogLevel)
	}
	if b.s.Locale == language.Und {
		return nil, fmt.Errorf("locale is not set")
	}

	snap := b.s
	return &snap, nil
}
