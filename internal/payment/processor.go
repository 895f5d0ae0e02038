package payment

import (
	"time"

	"github.com/google/uuid"

	"shopping/internal/domain"
)

// CardProcessor is the external card API the adapter wraps.
type CardProcessor interface {
	Charge(cardToken string, amountKurus int64) domain.Receipt
}

// LedgerProcessor is an in-process card processor that keeps every receipt.
type LedgerProcessor struct {
	receipts []domain.Receipt
	now      func() time.Time
}

// NewLedgerProcessor returns a processor with an empty ledger.
func NewLedgerProcessor() *LedgerProcessor {
	return &LedgerProcessor{now: time.Now}
}

// Charge records a receipt for the token and amount.
func (p *LedgerProcessor) Charge(cardToken string, amountKurus int64) domain.Receipt {
	r := domain.Receipt{
		ID:          uuid.New(),
		CardToken:   cardToken,
		AmountKurus: amountKurus,
		CreatedAt:   p.now().UTC(),
	}
	p.receipts = append(p.receipts, r)
	return r
}

// Receipts returns a copy of the ledger, oldest first.
func (p *LedgerProcessor) Receipts() []domain.Receipt {
	out := make([]domain.Receipt, len(p.receipts))
	copy(out, p.receipts)
	return out
}

var _ CardProcessor = (*LedgerProcessor)(nil)
