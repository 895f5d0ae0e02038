package payment

import (
	"go.uber.org/zap"

	"shopping/internal/crypto"
	"shopping/internal/domain"
)

// kurusPerLira converts whole lira to the processor's minor units.
const kurusPerLira = 100

// CardAdapter pays through a CardProcessor using a fixed card.
type CardAdapter struct {
	processor CardProcessor
	token     string
	masked    string
	log       *zap.Logger
}

// NewCardAdapter returns an adapter charging pan through processor.
// Only the token and the masked number are kept.
func NewCardAdapter(processor CardProcessor, pan string, log *zap.Logger) *CardAdapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &CardAdapter{
		processor: processor,
		token:     crypto.CardToken(pan),
		masked:    crypto.MaskPAN(pan),
		log:       log,
	}
}

// Pay charges amount lira. Nothing is printed.
func (a *CardAdapter) Pay(amount int) {
	r := a.processor.Charge(a.token, int64(amount)*kurusPerLira)
	a.log.Debug("card charged",
		zap.String("card", a.masked),
		zap.Stringer("receipt", r.ID),
		zap.Int64("amount_kurus", r.AmountKurus))
}

// Compile-time assertion that CardAdapter implements domain.PaymentAdapter.
var _ domain.PaymentAdapter = (*CardAdapter)(nil)
