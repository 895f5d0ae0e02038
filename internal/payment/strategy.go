package payment

import (
	"errors"
	"fmt"
	"io"

	"shopping/internal/domain"
)

// ErrUnknownMethod is returned when a payment method name matches nothing.
var ErrUnknownMethod = errors.New("unknown payment method")

// Method names accepted on the command line.
const (
	MethodCreditCard   = "credit-card"
	MethodBankTransfer = "bank-transfer"
	MethodCardAdapter  = "card-adapter"
)

// CreditCard pays by credit card.
type CreditCard struct{ out io.Writer }

// NewCreditCard returns a credit card strategy printing to out.
func NewCreditCard(out io.Writer) *CreditCard { return &CreditCard{out: out} }

func (s *CreditCard) Pay(amount int) {
	fmt.Fprintf(s.out, "Kredi kartı ile %d lira ödendi.\n", amount)
}

// BankTransfer pays by bank transfer.
type BankTransfer struct{ out io.Writer }

// NewBankTransfer returns a bank transfer strategy printing to out.
func NewBankTransfer(out io.Writer) *BankTransfer { return &BankTransfer{out: out} }

func (s *BankTransfer) Pay(amount int) {
	fmt.Fprintf(s.out, "Havale ile %d lira ödendi.\n", amount)
}

var (
	_ domain.PaymentStrategy = (*CreditCard)(nil)
	_ domain.PaymentStrategy = (*BankTransfer)(nil)
)
