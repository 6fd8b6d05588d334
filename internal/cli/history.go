package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xonecas/livemark/internal/history"
)

func newHistoryCommand(a *app) *cobra.Command {
	var limit int
	var diff bool
	cmd := &cobra.Command{
		Use:   "history <file>",
		Short: "List saved snapshots of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(a)
			if store == nil {
				return errors.New("history unavailable")
			}
			defer store.Close()

			snaps, err := store.Recent(args[0], limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(snaps) == 0 {
				fmt.Fprintln(out, "no snapshots")
				return nil
			}
			if diff {
				if len(snaps) < 2 {
					return errors.New("need at least two snapshots to diff")
				}
				fmt.Fprint(out, history.Diff(snaps[1], snaps[0]))
				return nil
			}
			for _, s := range snaps {
				fmt.Fprintf(out, "%4d  %s  %5d bytes\n",
					s.ID, s.Created.Format("2006-01-02 15:04:05"), len(s.Content))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of snapshots to list")
	cmd.Flags().BoolVar(&diff, "diff", false, "diff the two most recent snapshots")
	return cmd
}
