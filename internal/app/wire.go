package app

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"shopping/internal/crypto"
	"shopping/internal/domain"
	"shopping/internal/logger"
	"shopping/internal/payment"
	"shopping/internal/product"
	"shopping/internal/stock"
)

// ErrInvalidCard is returned when the configured card number fails validation.
var ErrInvalidCard = errors.New("invalid card number")

// Wire bundles the shop's components for the CLI.
type Wire struct {
	Cfg      Config
	Log      *zap.Logger
	Stock    *stock.Stock
	Products *product.Factory
	Ledger   *payment.LedgerProcessor
	Adapter  domain.PaymentAdapter
	Credit   domain.PaymentStrategy
	Transfer domain.PaymentStrategy
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Log == nil {
		cfg.Log = os.Stderr
	}
	if cfg.CardNumber == "" {
		cfg.CardNumber = DefaultCardNumber
	}
	if !crypto.ValidPAN(cfg.CardNumber) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCard, crypto.MaskPAN(cfg.CardNumber))
	}

	log, err := logger.New(cfg.Log, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	ledger := payment.NewLedgerProcessor()

	return &Wire{
		Cfg:      cfg,
		Log:      log,
		Stock:    stock.New(log.Named("stock")),
		Products: product.NewFactory(cfg.Out),
		Ledger:   ledger,
		Adapter:  payment.NewCardAdapter(ledger, cfg.CardNumber, log.Named("payment")),
		Credit:   payment.NewCreditCard(cfg.Out),
		Transfer: payment.NewBankTransfer(cfg.Out),
	}, nil
}

// PaymentMethod returns the payment named by method. The card adapter has
// the same call shape as the strategies and is offered alongside them.
func (w *Wire) PaymentMethod(method string) (domain.PaymentStrategy, error) {
	switch method {
	case payment.MethodCreditCard:
		return w.Credit, nil
	case payment.MethodBankTransfer:
		return w.Transfer, nil
	case payment.MethodCardAdapter:
		return w.Adapter, nil
	}
	return nil, fmt.Errorf("%w: %q", payment.ErrUnknownMethod, method)
}

// Subscribe registers a new customer for stock notifications.
func (w *Wire) Subscribe(name string) *stock.Customer {
	c := stock.NewCustomer(name, w.Cfg.Out)
	w.Stock.AddObserver(c)
	return c
}

// Produce builds the product for label, or fails with product.ErrUnknownKind.
func (w *Wire) Produce(label string) (domain.Product, error) {
	p, ok := w.Products.Create(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", product.ErrUnknownKind, label)
	}
	return p, nil
}
