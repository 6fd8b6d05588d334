package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xonecas/livemark/internal/transform"
)

func newFmtCommand() *cobra.Command {
	var list bool
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt <transform> [file]",
		Short: "Run a text transform over a file or stdin",
		Long: `Run one of the built-in text transforms. With a file argument the file is
read; otherwise stdin is. The result goes to stdout unless --write is given.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list || len(args) == 0 {
				for _, tr := range transform.All() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", tr.Name, tr.Desc)
				}
				return nil
			}
			tr, ok := transform.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown transform %q", args[0])
			}
			var raw []byte
			var err error
			if len(args) == 2 {
				raw, err = os.ReadFile(args[1])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			out, err := tr.Apply(string(raw))
			if err != nil {
				return err
			}
			if write && len(args) == 2 {
				return os.WriteFile(args[1], []byte(out), 0o644)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list available transforms")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result back to the file")
	return cmd
}
