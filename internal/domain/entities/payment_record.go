package entities

import "time"

// PaymentMethod distinguishes the gateway branch from cash on delivery.

type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCOD    PaymentMethod = "cod"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodOnline || m == PaymentMethodCOD
}

// PaymentStatus is the lifecycle state of a payment record.
//
// Online branch:  pending -> initiated -> paid -> refunded
//                                      -> failed -> initiated (explicit retry)
// COD branch:     pending -> cod_collected -> settled

type PaymentStatus string

const (
	StatusNone         PaymentStatus = "none"
	StatusPending      PaymentStatus = "pending"
	StatusInitiated    PaymentStatus = "initiated"
	StatusPaid         PaymentStatus = "paid"
	StatusFailed       PaymentStatus = "failed"
	StatusRefunded     PaymentStatus = "refunded"
	StatusCODCollected PaymentStatus = "cod_collected"
	StatusSettled      PaymentStatus = "settled"
)

// AllowedTransitions represents the payment state flow as code. Anything not
// listed here is rejected; the state machine never clamps.
var AllowedTransitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:      {StatusInitiated, StatusCODCollected},
	StatusInitiated:    {StatusPaid, StatusFailed},
	StatusFailed:       {StatusInitiated},
	StatusPaid:         {StatusRefunded},
	StatusCODCollected: {StatusSettled},
}

func CanTransition(from, to PaymentStatus) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// PaymentRecord is one payment per service request. TotalAmount and the
// commission split are snapshotted from the pricing config in effect at
// creation and never recomputed; records are never deleted.
//
// Version guards every transition: a write carries the version it read, and
// the store rejects it if another writer got there first.

type PaymentRecord struct {
	ID                string        `json:"id"`
	ServiceRequestRef string        `json:"service_request_ref"`
	CustomerRef       string        `json:"customer_ref"`
	MechanicRef       string        `json:"mechanic_ref"`
	VehicleType       VehicleType   `json:"vehicle_type"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	PaymentStatus     PaymentStatus `json:"payment_status"`

	TotalAmount           Money   `json:"total_amount"`
	PlatformCommissionPct float64 `json:"platform_commission_pct"`
	PlatformAmount        Money   `json:"platform_amount"`
	MechanicAmount        Money   `json:"mechanic_amount"`

	GatewayOrderRef   string `json:"gateway_order_ref,omitempty"`
	GatewayPaymentRef string `json:"gateway_payment_ref,omitempty"`

	CODCollectedAt *time.Time `json:"cod_collected_at,omitempty"`
	CODSettledAt   *time.Time `json:"cod_settled_at,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentEvent is the audit row appended on every transition: who moved
// which record, from where to where, and when.

type PaymentEvent struct {
	ID         string        `json:"id"`
	PaymentID  string        `json:"payment_id"`
	FromStatus PaymentStatus `json:"from_status"`
	ToStatus   PaymentStatus `json:"to_status"`
	ActorType  string        `json:"actor_type"`
	ActorRef   string        `json:"actor_ref,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// PaymentListFilter narrows the admin payment listing. Zero values mean "no
// filter"; Page is 1-based.

type PaymentListFilter struct {
	Page          int
	Limit         int
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
}

// PaymentStats aggregates the admin dashboard numbers.

type PaymentStats struct {
	TotalCount       int                   `json:"total_count"`
	TotalAmount      Money                 `json:"total_amount"`
	PlatformAmount   Money                 `json:"platform_amount"`
	MechanicAmount   Money                 `json:"mechanic_amount"`
	PendingCODAmount Money                 `json:"pending_cod_amount"`
	CountByMethod    map[PaymentMethod]int `json:"count_by_method"`
	CountByStatus    map[PaymentStatus]int `json:"count_by_status"`
}
