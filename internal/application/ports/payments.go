package ports

import "context"

// PaymentIntent is the client-usable handle returned by the processor.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentProcessor exchanges an amount for a payment handle. Amounts are in
// the smallest currency unit (cents).
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amountCents int64) (*PaymentIntent, error)
}
