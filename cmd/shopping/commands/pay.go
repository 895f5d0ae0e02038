package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shopping/internal/payment"
)

func payCmd(st *state) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "pay <amount>",
		Short: "Pay an amount in lira",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			p, err := st.wire.PaymentMethod(method)
			if err != nil {
				return err
			}
			p.Pay(amount)
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", payment.MethodCreditCard,
		"payment method: "+payment.MethodCreditCard+", "+payment.MethodBankTransfer+" or "+payment.MethodCardAdapter)
	return cmd
}
