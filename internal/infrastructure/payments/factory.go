package payments

import (
	"fmt"
	"strings"

	"hlc_marketplace/internal/usecase/interfaces"
)

// NewGatewayFromEnv picks the provider named by PAYMENT_PROVIDER (default paystack).
// Credentials are not checked here; every call reports a ConfigurationError while
// they are missing.
func NewGatewayFromEnv() (interfaces.IPaymentGateway, error) {
	name := strings.ToLower(strings.TrimSpace(getenvDefault("PAYMENT_PROVIDER", ProviderPaystack)))
	switch name {
	case ProviderPaystack:
		return NewPaystackGateway(), nil
	case ProviderMercadoPago:
		return NewMercadoPagoGateway(), nil
	default:
		return nil, fmt.Errorf("unsupported payment provider: %s", name)
	}
}
