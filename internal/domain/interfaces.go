package domain

// Observer receives stock status notifications.
type Observer interface {
	Update(message string)
}

// Product is something the factory can build and show.
type Product interface {
	Kind() ProductKind
	Display()
}

// PaymentAdapter is the fixed call shape the shop uses to pay through an
// external processor.
type PaymentAdapter interface {
	Pay(amount int)
}

// PaymentStrategy is one interchangeable way to pay.
type PaymentStrategy interface {
	Pay(amount int)
}
