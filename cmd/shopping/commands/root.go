package commands

import (
	"github.com/spf13/cobra"

	"shopping/internal/app"
)

// state is shared by the root command and its subcommands.
type state struct {
	logLevel string
	card     string
	wire     *app.Wire
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	env := app.ConfigFromEnv()
	st := &state{}

	root := &cobra.Command{
		Use:          "shopping",
		Short:        "Shopping system pattern demonstration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(app.Config{
				Out:        cmd.OutOrStdout(),
				Log:        cmd.ErrOrStderr(),
				LogLevel:   st.logLevel,
				CardNumber: st.card,
			})
			if err != nil {
				return err
			}
			st.wire = w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = st.wire.Log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.wire.RunDemo(app.DefaultScenario())
		},
	}

	root.PersistentFlags().StringVar(&st.logLevel, "log-level", env.LogLevel, "log level: debug, info, warn or error (env SHOPPING_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&st.card, "card", env.CardNumber, "card number charged by the card adapter (env SHOPPING_CARD)")

	root.AddCommand(demoCmd(st), notifyCmd(st), productCmd(st), payCmd(st))
	return root
}
