package interfaces

import (
	"context"

	"roadassist/internal/domain/entities"
)

// IPaymentRepository persists payment records and their audit events.
//
// Absent records are reported as zero-value entities with a nil error.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	GetByServiceRequestRef(ctx context.Context, ref string) (entities.PaymentRecord, error)
	// List returns the filtered page plus the total match count.
	List(ctx context.Context, f entities.PaymentListFilter) ([]entities.PaymentRecord, int, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentRecord, error)
	// UpdateStatus writes p only if the stored record still holds
	// (fromStatus, fromVersion); it reports false when another writer won.
	UpdateStatus(ctx context.Context, p entities.PaymentRecord, fromStatus entities.PaymentStatus, fromVersion int) (bool, error)
	AppendEvent(ctx context.Context, e entities.PaymentEvent) error
	Stats(ctx context.Context) (entities.PaymentStats, error)
}
