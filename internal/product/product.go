package product

import (
	"fmt"
	"io"

	"shopping/internal/domain"
)

// Laptop is the laptop variant.
type Laptop struct{ out io.Writer }

func (Laptop) Kind() domain.ProductKind { return domain.ProductLaptop }

// Display prints the laptop's production line.
func (p Laptop) Display() { fmt.Fprintln(p.out, "Laptop üretildi. ") }

// Smartphone is the smartphone variant.
type Smartphone struct{ out io.Writer }

func (Smartphone) Kind() domain.ProductKind { return domain.ProductSmartphone }

// Display prints the smartphone's production line.
func (p Smartphone) Display() { fmt.Fprintln(p.out, "Akıllı Telefon üretildi. ") }

var (
	_ domain.Product = Laptop{}
	_ domain.Product = Smartphone{}
)
