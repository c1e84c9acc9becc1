package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// importFailedMsg is shown for any rejected import.
const importFailedMsg = "error importing links: check the format and try again"

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the links as pretty-printed JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(sess *session) error {
				text, err := sess.store.Export()
				if err != nil {
					return sysError(fmt.Errorf("export links: %w", err))
				}
				if output == "" || output == "-" {
					fmt.Fprintln(cmd.OutOrStdout(), text)
					return nil
				}
				if err := os.WriteFile(output, []byte(text+"\n"), 0o644); err != nil {
					return sysError(fmt.Errorf("write %s: %w", output, err))
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d links to %s\n", sess.store.Len(), output)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file|-]",
		Short: "Replace all links with a JSON export",
		Long: "Replace all links with the contents of a JSON export read from file, or\n" +
			"from stdin when the argument is '-' or omitted. Nothing changes if any\n" +
			"record is invalid.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readImport(cmd, args)
			if err != nil {
				return userError(err)
			}
			return withSession(cmd, func(sess *session) error {
				if err := sess.store.Import(text); err != nil {
					err = classify(err)
					if exitCode(err) == exitUserError {
						fmt.Fprintln(cmd.ErrOrStderr(), importFailedMsg)
					}
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Imported %d links\n", sess.store.Len())
				return nil
			})
		},
	}
}

func readImport(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
