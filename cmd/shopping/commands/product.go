package commands

import (
	"github.com/spf13/cobra"

	"shopping/internal/domain"
)

// product <label>...: all labels must be known before anything is displayed.
func productCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "product <label>...",
		Short: "Produce and display products (laptop, smartphone)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products := make([]domain.Product, 0, len(args))
			for _, label := range args {
				p, err := st.wire.Produce(label)
				if err != nil {
					return err
				}
				products = append(products, p)
			}
			for _, p := range products {
				p.Display()
			}
			return nil
		},
	}
}
