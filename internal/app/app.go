package app

import (
	"go.uber.org/zap"

	"shopping/internal/domain"
)

// Scenario is one demonstration run's inputs.
type Scenario struct {
	Customers      []string
	Status         string
	AdapterAmount  int
	Products       []string
	CreditAmount   int
	TransferAmount int
}

// DefaultScenario is the canonical run.
func DefaultScenario() Scenario {
	return Scenario{
		Customers:      []string{"Ali", "Bora"},
		Status:         "Stok var.",
		AdapterAmount:  100,
		Products:       []string{"Laptop", "Smartphone"},
		CreditAmount:   200,
		TransferAmount: 150,
	}
}

// RunDemo runs s: subscribe and notify, pay through the adapter, produce
// and display each product, then pay with each strategy.
//
// Every product label is resolved before any is displayed, so an unknown
// label stops the run after the adapter payment.
func (w *Wire) RunDemo(s Scenario) error {
	w.Log.Info("demo started", zap.Strings("customers", s.Customers))

	for _, name := range s.Customers {
		w.Subscribe(name)
	}
	w.Stock.SetStatus(s.Status)

	w.Adapter.Pay(s.AdapterAmount)

	products := make([]domain.Product, 0, len(s.Products))
	for _, label := range s.Products {
		p, err := w.Produce(label)
		if err != nil {
			w.Log.Error("demo stopped", zap.Error(err))
			return err
		}
		products = append(products, p)
	}
	for _, p := range products {
		p.Display()
	}

	w.Credit.Pay(s.CreditAmount)
	w.Transfer.Pay(s.TransferAmount)

	w.Log.Info("demo finished", zap.Int("receipts", len(w.Ledger.Receipts())))
	return nil
}
