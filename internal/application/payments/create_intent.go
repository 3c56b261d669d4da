package payments

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
)

type CreateIntentInput struct {
	AmountCents int64
}

type CreateIntentResult struct {
	ClientSecret string
}

// CreateIntent asks the payment processor for a client-usable handle on the
// given amount. The processor is opaque; its failures surface as internal
// errors to the caller.
type CreateIntent struct {
	processor ports.PaymentProcessor
}

func NewCreateIntent(processor ports.PaymentProcessor) *CreateIntent {
	return &CreateIntent{processor: processor}
}

func (uc *CreateIntent) Execute(ctx context.Context, input CreateIntentInput) (*CreateIntentResult, error) {
	intent, err := uc.processor.CreateIntent(ctx, input.AmountCents)
	if err != nil {
		return nil, err
	}
	return &CreateIntentResult{ClientSecret: intent.ClientSecret}, nil
}
