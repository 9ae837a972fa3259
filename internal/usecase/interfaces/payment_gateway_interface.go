package interfaces

import (
	"context"

	"hlc_marketplace/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Paystack, Mercado Pago).
//
// Each call performs exactly one outbound request and keeps no local state.
// Implementations return the errors defined in the entities package:
//   - *entities.ConfigurationError when credentials are absent
//   - *entities.ValidationError when the intent fails schema checks
//   - *entities.ProviderError on non-2xx or malformed provider answers
//   - *entities.NotFoundError when the provider does not know the reference (Verify)
type IPaymentGateway interface {
	Name() string
	// Configured reports a *entities.ConfigurationError when the credentials the
	// next call would use are missing. It performs no I/O.
	Configured() error
	Initialize(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentInitialization, error)
	Verify(ctx context.Context, reference string) (entities.VerificationResult, error)
}
