package commands

import (
	"github.com/spf13/cobra"
)

// notify <status>: subscribe --customer names and announce status to them.
func notifyCmd(st *state) *cobra.Command {
	var customers []string
	cmd := &cobra.Command{
		Use:   "notify <status>",
		Short: "Set the stock status and notify customers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range customers {
				st.wire.Subscribe(name)
			}
			st.wire.Stock.SetStatus(args[0])
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&customers, "customer", "c", []string{"Ali", "Bora"}, "customer to notify (repeatable)")
	return cmd
}
