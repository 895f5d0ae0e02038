package product

import (
	"errors"
	"io"
	"strings"

	"shopping/internal/domain"
)

// ErrUnknownKind is used by callers that turn an unmatched label into an error.
var ErrUnknownKind = errors.New("unknown product type")

// Factory creates products that display to out.
type Factory struct {
	out io.Writer
}

// NewFactory returns a factory whose products print to out.
func NewFactory(out io.Writer) *Factory { return &Factory{out: out} }

// Create returns the product for label. The label is compared to the known
// kinds ignoring case but not surrounding whitespace; ok is false when
// nothing matches.
func (f *Factory) Create(label string) (p domain.Product, ok bool) {
	switch {
	case strings.EqualFold(label, string(domain.ProductLaptop)):
		return Laptop{out: f.out}, true
	case strings.EqualFold(label, string(domain.ProductSmartphone)):
		return Smartphone{out: f.out}, true
	}
	return nil, false
}
