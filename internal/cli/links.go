package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dailies/internal/view"
)

func newListCmd() *cobra.Command {
	var settingsView, jsonOut bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the links",
		Long: "Show the links as a grid of tiles. --settings shows the numbered list\n" +
			"used by move, edit and delete; --json prints the export format.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(sess *session) error {
				out := cmd.OutOrStdout()
				switch {
				case jsonOut:
					text, err := sess.store.Export()
					if err != nil {
						return sysError(err)
					}
					fmt.Fprintln(out, text)
				case settingsView:
					fmt.Fprintln(out, view.Settings(sess.store.Links()))
				default:
					fmt.Fprintln(out, view.Grid(sess.store.Links(), view.DefaultColumns))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&settingsView, "settings", false, "show the numbered settings list")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print links as JSON")
	cmd.MarkFlagsMutuallyExclusive("settings", "json")
	return cmd
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Append a link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(sess *session) error {
				sess.store.BeginEdit("")
				link, err := sess.store.Submit(args[0], args[1])
				if err != nil {
					return classify(fmt.Errorf("add link: %w", err))
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Added %s (%s)\n", link.Name, link.ID)
				return nil
			})
		},
	}
}

func newEditCmd() *cobra.Command {
	var name, url string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a link's name or URL",
		Long:  "Change a link's name or URL. Omitted flags keep the current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("url") {
				return userError(fmt.Errorf("nothing to change: pass --name or --url"))
			}
			return withSession(cmd, func(sess *session) error {
				if !sess.store.BeginEdit(id) {
					fmt.Fprintf(cmd.ErrOrStderr(), "No link with id %q\n", id)
					return nil
				}
				current, _ := sess.store.Get(id)
				if !cmd.Flags().Changed("name") {
					name = current.Name
				}
				if !cmd.Flags().Changed("url") {
					url = current.URL
				}
				link, err := sess.store.Submit(name, url)
				if err != nil {
					return classify(fmt.Errorf("edit link: %w", err))
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Updated %s (%s)\n", link.Name, link.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&url, "url", "", "new URL")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a link",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return withSession(cmd, func(sess *session) error {
				ok, err := sess.store.Delete(id)
				if err != nil {
					return classify(fmt.Errorf("delete link: %w", err))
				}
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "No link with id %q\n", id)
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Deleted %s\n", id)
				return nil
			})
		},
	}
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a link to another position",
		Long: "Move the link at index <from> so it ends up at index <to>. Indices are\n" +
			"0-based, as shown by 'dailies list --settings'.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("from", args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex("to", args[1])
			if err != nil {
				return err
			}
			return withSession(cmd, func(sess *session) error {
				if err := sess.store.Reorder(from, to); err != nil {
					return classify(fmt.Errorf("move link: %w", err))
				}
				return nil
			})
		},
	}
}

func parseIndex(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, userError(fmt.Errorf("%s index %q is not a number", name, arg))
	}
	return n, nil
}
