package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/skyhaven/launcher/internal/logging"
	"github.com/skyhaven/launcher/internal/platform"
	"github.com/skyhaven/launcher/internal/task"
)

const (
	// ConfigFileName is the fixed file name under the launcher directory.
	ConfigFileName = "config.json"

	// appDirName is the per-user directory the launcher stores its
	// data in, resolved per platform conventions.
	appDirName = "SkyhavenLauncher"
)

// Store holds the current configuration snapshot and its storage
// location. It is the single source of configuration truth for the
// process: a valid snapshot exists from the moment the store is
// constructed, before any file has been read.
type Store struct {
	launcherDir string
	configPath  string
	codec       *Codec
	logger      *zap.Logger

	current atomic.Pointer[Snapshot]

	loader *task.Task
	saver  *task.Task
}

var (
	globalStore *Store
	globalOnce  sync.Once
)

// Get returns the process-wide store, constructing it on first call.
// Construction resolves the launcher directory for the host OS and
// installs the default snapshot, so Get never returns a store without
// one. Safe to call from any goroutine; exactly one store is ever
// constructed.
func Get() *Store {
	globalOnce.Do(func() {
		globalStore = New(resolveLauncherDir(logging.GetLogger()), logging.GetLogger())
	})
	return globalStore
}

// New creates a store rooted at launcherDir with the default snapshot
// installed. Hosts that prefer explicit wiring (and tests) use New
// directly instead of the shared Get instance.
func New(launcherDir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		launcherDir: launcherDir,
		configPath:  filepath.Join(launcherDir, ConfigFileName),
		codec:       NewCodec(),
		logger:      logger,
		loader:      task.New("config-load", logger),
		saver:       task.New("config-save", logger),
	}
	s.current.Store(defaultSnapshot(launcherDir))
	return s
}

// resolveLauncherDir finds the per-user launcher directory. An
// unrecognized OS or a failed home lookup does not prevent store
// construction; a best-effort fallback is used instead.
func resolveLauncherDir(logger *zap.Logger) string {
	osys := platform.Current()
	if osys == platform.Unknown {
		logger.Error("falling back to default storage location",
			zap.Error(&UnsupportedOSError{GOOS: runtime.GOOS}),
			zap.String("arch", runtime.GOARCH),
		)
	}

	dir, err := platform.ApplicationDirectory(osys, appDirName)
	if err != nil {
		dir = filepath.Join(os.TempDir(), appDirName)
		logger.Error("cannot resolve application directory",
			zap.Error(err),
			zap.String("fallback", dir),
		)
	}
	return dir
}

// Snapshot returns the currently installed snapshot. It never blocks
// and never returns nil: before the first successful load it is the
// built-in default. The returned snapshot is shared and read-only.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Install atomically replaces the current snapshot. Readers observe
// either the old snapshot or the new one, never a mix.
func (s *Store) Install(snap *Snapshot) {
	if snap == nil {
		// The store invariant is a non-nil snapshot at all times.
		s.logger.Error("refusing to install nil snapshot")
		return
	}
	s.current.Store(snap)
}

// LauncherDir returns the resolved storage root directory.
func (s *Store) LauncherDir() string {
	return s.launcherDir
}

// ConfigPath returns the resolved config file location,
// <launcher-dir>/config.json, computed once at construction.
func (s *Store) ConfigPath() string {
	return s.configPath
}

// StartLoad reads and decodes the config file off the caller's
// goroutine, installing the decoded snapshot on success. The returned
// channel receives the run's result exactly once. While a load is in
// flight further StartLoad calls return task.ErrAlreadyRunning.
//
// A missing file fails with FileNotFoundError and a broken file with
// one of the codec's errors; in both cases the installed snapshot is
// left untouched.
func (s *Store) StartLoad(ctx context.Context) (<-chan error, error) {
	return s.loader.Start(ctx, s.load)
}

// StartSave captures the current snapshot, encodes it and writes it to
// the config file off the caller's goroutine, creating parent
// directories as needed. The returned channel receives the run's
// result exactly once. While a save is in flight further StartSave
// calls return task.ErrAlreadyRunning.
//
// The write is temp-file-then-rename, so a failed save never leaves a
// truncated config file behind; the in-memory snapshot is unaffected
// either way.
func (s *Store) StartSave(ctx context.Context) (<-chan error, error) {
	return s.saver.Start(ctx, s.save)
}

// LoadState returns the load operation's lifecycle state.
func (s *Store) LoadState() task.State {
	return s.loader.State()
}

// SaveState returns the save operation's lifecycle state.
func (s *Store) SaveState() task.State {
	return s.saver.State()
}

func (s *Store) load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileNotFoundError{Path: s.configPath}
		}
		return fmt.Errorf("failed to read config file %s: %w", s.configPath, err)
	}

	snap, err := s.codec.Decode(data)
	if err != nil {
		return err
	}

	s.Install(snap)
	s.logger.Info("configuration loaded",
		zap.String("path", s.configPath),
	)
	return nil
}

func (s *Store) save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Point-in-time view; installs that race with the save affect
	// the next save, not this one.
	snap := s.Snapshot()

	data, err := s.codec.Encode(snap)
	if err != nil {
		return &WriteError{Path: s.configPath, Err: err}
	}

	if err := os.MkdirAll(s.launcherDir, 0o700); err != nil {
		return &WriteError{Path: s.configPath, Err: err}
	}

	tmpPath := s.configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return &WriteError{Path: s.configPath, Err: err}
	}
	if err := os.Rename(tmpPath, s.configPath); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: s.configPath, Err: err}
	}

	s.logger.Info("configuration saved",
		zap.String("path", s.configPath),
	)
	return nil
}
