package interfaces

import (
	"context"
	"errors"

	"hlc_marketplace/internal/domain/entities"
)

var ErrPaymentReferenceExists = errors.New("payment reference already used")

// IPaymentRecordRepository keeps the audit trail of payment attempts.
type IPaymentRecordRepository interface {
	// Create fails with ErrPaymentReferenceExists when the reference was already recorded.
	Create(ctx context.Context, rec entities.PaymentRecord) error
	// Release drops a pending attempt whose initialization failed, freeing the
	// reference for a retry. Unknown or already verified references are left alone.
	Release(ctx context.Context, reference string) error
	RecordVerification(ctx context.Context, rec entities.PaymentRecord) error
	GetByReference(ctx context.Context, reference string) (entities.PaymentRecord, error)
}
