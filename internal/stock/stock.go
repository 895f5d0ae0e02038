package stock

import (
	"go.uber.org/zap"

	"shopping/internal/domain"
)

// statusChangedPrefix starts every notification sent to observers.
const statusChangedPrefix = "Stok durumu değişti: "

// Stock holds the current stock status and the observers interested in it.
type Stock struct {
	observers []domain.Observer
	status    string
	log       *zap.Logger
}

// New returns an empty stock with no status set.
func New(log *zap.Logger) *Stock {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stock{log: log}
}

// AddObserver appends o to the notification list. The same observer may be
// added more than once and is then notified once per registration.
func (s *Stock) AddObserver(o domain.Observer) {
	if o == nil {
		s.log.Warn("ignoring nil observer")
		return
	}
	s.observers = append(s.observers, o)
	s.log.Debug("observer added", zap.Int("observers", len(s.observers)))
}

// SetStatus stores status and notifies every observer.
func (s *Stock) SetStatus(status string) {
	s.status = status
	s.notifyObservers()
}

// Status returns the last status set, or "" if none was.
func (s *Stock) Status() string { return s.status }

// Observers returns a copy of the registered observers in order.
func (s *Stock) Observers() []domain.Observer {
	out := make([]domain.Observer, len(s.observers))
	copy(out, s.observers)
	return out
}

func (s *Stock) notifyObservers() {
	msg := statusChangedPrefix + s.status
	s.log.Debug("notifying observers",
		zap.String("status", s.status),
		zap.Int("observers", len(s.observers)))
	for _, o := range s.observers {
		o.Update(msg)
	}
}
