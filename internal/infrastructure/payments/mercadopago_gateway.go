package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"roadassist/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway backs the online payment branch. Amounts cross the
// boundary in paise and are converted to currency units for the SDK.
type MercadoPagoGateway struct {
	payments payment.Client
	refunds  refund.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments: payment.NewClient(cfg),
		refunds:  refund.NewClient(cfg),
	}, nil
}

// CreateOrder opens a provider order for the given amount and returns the
// provider's order handle.
func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, amount entities.Money, reference string) (string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock order created order_ref=%s amount=%d reference=%s", id, amount, reference)
		return id, nil
	}

	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] order create start amount=%d reference=%s", amount, reference)

	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: float64(amount) / 100,
		Description:       "Roadside assistance service",
		ExternalReference: reference,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference=%s err=%v", reference, err)
		return "", err
	}

	log.Printf("[payment][gateway] order create success order_ref=%d status=%s", resp.ID, resp.Status)
	return fmt.Sprintf("%d", resp.ID), nil
}

// Refund reverses a captured payment in full.
func (g *MercadoPagoGateway) Refund(ctx context.Context, gatewayPaymentRef string, amount entities.Money) error {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock refund payment_ref=%s amount=%d", gatewayPaymentRef, amount)
		return nil
	}

	if g == nil || g.refunds == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return ErrMercadoPagoGatewayNotConfigured
	}

	paymentID, err := strconv.Atoi(strings.TrimSpace(gatewayPaymentRef))
	if err != nil {
		log.Printf("[payment][gateway] invalid payment ref %q err=%v", gatewayPaymentRef, err)
		return err
	}

	resp, err := g.refunds.Create(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][gateway] sdk refund failed payment_ref=%s err=%v", gatewayPaymentRef, err)
		return err
	}

	log.Printf("[payment][gateway] refund success payment_ref=%s refund_id=%d status=%s", gatewayPaymentRef, resp.ID, resp.Status)
	return nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
