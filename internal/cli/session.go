package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/dailies/internal/kv"
	"github.com/mesh-intelligence/dailies/internal/logging"
	"github.com/mesh-intelligence/dailies/internal/persist"
	"github.com/mesh-intelligence/dailies/internal/store"
	"github.com/mesh-intelligence/dailies/internal/view"
	"github.com/mesh-intelligence/dailies/pkg/sqlite"
	"github.com/mesh-intelligence/dailies/pkg/types"
)

// session is an opened store plus the resources behind it. The caller must
// Close it.
type session struct {
	logger *zap.Logger
	kv     types.KVStore
	store  *store.Store
}

// openSession resolves configuration, opens the configured backend and
// loads the link collection. Unless --quiet is set, the views chosen by
// --view are printed to cmd's stdout after every committed change.
func openSession(cmd *cobra.Command) (*session, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, sysError(err)
	}

	logger, err := logging.New(s.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, userError(err)
	}

	backend, err := openKV(s.storeConfig())
	if err != nil {
		return nil, sysError(fmt.Errorf("open %s store: %w", s.backend, err))
	}
	logger.Debug("opened store",
		zap.String("backend", s.backend),
		zap.String("data_dir", s.dataDir),
	)

	st, err := store.Open(persist.NewAdapter(backend, logger), store.WithLogger(logger))
	if err != nil {
		_ = backend.Close()
		return nil, sysError(err)
	}

	if !flags.quiet {
		modes, err := changeViews(flags.view)
		if err != nil {
			_ = backend.Close()
			return nil, userError(err)
		}
		for _, mode := range modes {
			st.Subscribe(view.NewRenderer(cmd.OutOrStdout(), mode, view.DefaultColumns).Render)
		}
	}

	return &session{logger: logger, kv: backend, store: st}, nil
}

// Close releases the backend and flushes the logger.
func (s *session) Close() error {
	_ = s.logger.Sync()
	return s.kv.Close()
}

// Values accepted by --view.
const (
	viewSettings = "settings"
	viewGrid     = "grid"
	viewBoth     = "both"
)

// changeViews maps a --view value to the renderers drawn after each change.
func changeViews(name string) ([]view.Mode, error) {
	switch name {
	case viewSettings, "":
		return []view.Mode{view.ModeSettings}, nil
	case viewGrid:
		return []view.Mode{view.ModeGrid}, nil
	case viewBoth:
		return []view.Mode{view.ModeGrid, view.ModeSettings}, nil
	default:
		return nil, fmt.Errorf("unknown view %q (valid: settings, grid, both)", name)
	}
}

// openKV constructs the key-value store named by cfg.Backend.
func openKV(cfg types.Config) (types.KVStore, error) {
	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlite.Open(cfg.DataDir)
	case types.BackendFile:
		f, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return f, nil
	case types.BackendMemory:
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}

// withSession opens a session, runs fn and closes the session. A close
// failure is reported only when fn succeeded.
func withSession(cmd *cobra.Command, fn func(*session) error) (err error) {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = sysError(fmt.Errorf("close store: %w", cerr))
		}
	}()
	return fn(sess)
}
