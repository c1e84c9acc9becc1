package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dailies/internal/paths"
	"github.com/mesh-intelligence/dailies/pkg/types"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize dailies configuration and storage",
		Long: "Create the configuration directory and config.yaml if missing, then open\n" +
			"the storage backend, seeding the default links on first use.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return sysError(err)
	}

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	backend := s.backend
	if flags.ephemeral {
		backend = defaultBackend
	}
	written, err := writeConfigIfMissing(paths.ConfigFile(s.configDir), configFile{
		Backend: backend,
		DataDir: s.dataDir,
	})
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	return withSession(cmd, func(sess *session) error {
		out := cmd.OutOrStdout()
		if written {
			fmt.Fprintf(out, "Wrote %s\n", paths.ConfigFile(s.configDir))
		}
		where := s.dataDir
		if s.backend == types.BackendMemory {
			where = "memory"
		}
		fmt.Fprintf(out, "dailies initialized: %d links (%s, %s)\n", sess.store.Len(), s.backend, where)
		return nil
	})
}
