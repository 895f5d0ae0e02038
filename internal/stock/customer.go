package stock

import (
	"fmt"
	"io"

	"shopping/internal/domain"
)

// Customer is an observer that prints what it is told.
type Customer struct {
	name string
	out  io.Writer
}

// NewCustomer returns a customer printing to out.
func NewCustomer(name string, out io.Writer) *Customer {
	return &Customer{name: name, out: out}
}

// Name returns the customer's name.
func (c *Customer) Name() string { return c.name }

// Update prints "<name>: <message>".
func (c *Customer) Update(message string) {
	fmt.Fprintf(c.out, "%s: %s\n", c.name, message)
}

// Compile-time assertion that Customer implements domain.Observer.
var _ domain.Observer = (*Customer)(nil)
