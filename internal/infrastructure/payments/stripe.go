package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
)

// StripeProcessor implements ports.PaymentProcessor against the Stripe API.
// Amounts are cents; currency and payment method match the original service
// (usd, card).
type StripeProcessor struct {
	api *client.API
}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProcessor{api: api}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, amountCents int64) (*ports.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	// A fresh idempotency key per call; retries are the caller's concern.
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &ports.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

var _ ports.PaymentProcessor = (*StripeProcessor)(nil)
