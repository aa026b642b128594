package interfaces

import (
	"context"

	"roadassist/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (e.g. Mercado Pago).
//
// CreateOrder returns the provider's order handle consumed by the
// pending -> initiated transition; Refund reverses a captured payment in full.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amount entities.Money, reference string) (string, error)
	Refund(ctx context.Context, gatewayPaymentRef string, amount entities.Money) error
}
