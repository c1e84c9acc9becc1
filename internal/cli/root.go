// Package cli implements the dailies command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dailies/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	logLevel  string
	view      string
	ephemeral bool
	quiet     bool
}

var flags rootFlags

// NewRootCmd creates the top-level "dailies" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}

	root := &cobra.Command{
		Use:   "dailies",
		Short: "Keep the handful of links you open every day",
		Long: "dailies keeps an ordered list of named links, persists it locally,\n" +
			"and moves it between machines as plain JSON.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "data directory (default: per-user data dir)")
	pf.StringVar(&flags.backend, "backend", "", "storage backend: sqlite, file or memory")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep links in memory only for this run")
	pf.StringVar(&flags.view, "view", viewSettings, "view printed after a change: settings, grid or both")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "do not print the list after a change")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newMoveCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args and returns the process exit code. Errors are
// printed to stderr.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitErr carries the exit code chosen where the error was raised.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

func userError(err error) error { return &exitErr{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitErr{code: exitSysError, err: err} }

// classify wraps a store error with the exit code its cause deserves.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isUserFault(err) {
		return userError(err)
	}
	return sysError(err)
}

func isUserFault(err error) bool {
	return types.IsValidation(err) ||
		errors.Is(err, types.ErrInvalidInput) ||
		errors.Is(err, types.ErrIndexOutOfRange)
}

// exitCode maps an error to a process exit code. Errors not raised through
// userError or sysError come from cobra flag and argument parsing.
func exitCode(err error) int {
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
