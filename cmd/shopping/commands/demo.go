package commands

import (
	"github.com/spf13/cobra"

	"shopping/internal/app"
)

func demoCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical demonstration (same as no command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.wire.RunDemo(app.DefaultScenario())
		},
	}
}
