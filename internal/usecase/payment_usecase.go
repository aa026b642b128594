package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentAlreadyExists = errors.New("payment already exists for this service request")
	ErrIllegalTransition    = errors.New("illegal payment state transition")
	ErrAlreadySettled       = errors.New("payment already settled")
	ErrInvalidPaymentInput  = errors.New("invalid payment input")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// Actor types recorded on audit events.
const (
	ActorAdmin    = "admin"
	ActorMechanic = "mechanic"
	ActorGateway  = "gateway"
	ActorCustomer = "customer"
	ActorSystem   = "system"
)

// CreatePaymentCommand prices a service request and opens its payment
// record. Exactly one of IssueID / EmergencyServiceID / OtherIssue selects
// the catalogue component added on top of the distance fare; all three unset
// means a plain call-out.

type CreatePaymentCommand struct {
	ServiceRequestRef  string
	CustomerRef        string
	MechanicRef        string
	VehicleType        string
	DistanceKm         float64
	IssueID            string
	EmergencyServiceID string
	OtherIssue         bool
	IsEmergency        bool
	PaymentMethod      entities.PaymentMethod
}

// SettlementResult reports one record's outcome inside a batch settlement.

type SettlementResult struct {
	ServiceRequestRef string `json:"service_request_ref"`
	Settled           bool   `json:"settled"`
	Message           string `json:"message,omitempty"`
}

// IPaymentUseCase owns the payment lifecycle. Every transition is applied
// with a compare-and-swap on (status, version) so concurrent attempts on the
// same record resolve to exactly one winner, and every transition appends an
// audit event.

type IPaymentUseCase interface {
	Create(ctx context.Context, cmd CreatePaymentCommand) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	InitiateOnline(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
	ConfirmOnline(ctx context.Context, paymentID, gatewayPaymentRef string) (entities.PaymentRecord, error)
	FailOnline(ctx context.Context, paymentID, reason string) (entities.PaymentRecord, error)
	Refund(ctx context.Context, paymentID string) (entities.PaymentRecord, error)
	CollectCOD(ctx context.Context, paymentID, mechanicRef string) (entities.PaymentRecord, error)
	Settle(ctx context.Context, serviceRequestRef string) (entities.PaymentRecord, error)
	SettleAll(ctx context.Context) ([]SettlementResult, error)
	List(ctx context.Context, f entities.PaymentListFilter) ([]entities.PaymentRecord, int, error)
	Stats(ctx context.Context) (entities.PaymentStats, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	pricingRepo interfaces.IPricingConfigRepository
	gateway     interfaces.IPaymentGateway
	now         func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, pricingRepo interfaces.IPricingConfigRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{
		repo:        repo,
		pricingRepo: pricingRepo,
		gateway:     gateway,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) Create(ctx context.Context, cmd CreatePaymentCommand) (entities.PaymentRecord, error) {
	cmd.ServiceRequestRef = strings.TrimSpace(cmd.ServiceRequestRef)
	cmd.CustomerRef = strings.TrimSpace(cmd.CustomerRef)
	if cmd.ServiceRequestRef == "" || cmd.CustomerRef == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentInput
	}
	if !cmd.PaymentMethod.IsValid() {
		return entities.PaymentRecord{}, ErrInvalidPaymentInput
	}

	vt, err := parseVehicleType(cmd.VehicleType)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	// One payment record per service request; retries of the online branch
	// re-initiate the same record instead of creating a sibling.
	if existing, err := u.repo.GetByServiceRequestRef(ctx, cmd.ServiceRequestRef); err != nil {
		return entities.PaymentRecord{}, err
	} else if existing.ID != "" {
		return entities.PaymentRecord{}, ErrPaymentAlreadyExists
	}

	cfg, err := u.pricingRepo.GetByVehicleType(ctx, vt)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if cfg.VehicleType == "" {
		return entities.PaymentRecord{}, ErrPricingConfigNotFound
	}

	fare, err := entities.ComputeFare(cfg, cmd.DistanceKm, cmd.IsEmergency)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	catalogue, err := resolveCataloguePrice(cfg, cmd)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	total := fare + catalogue

	// Snapshot the split with the percentages in effect right now; later
	// config edits must not reach this record.
	platform, mechanic, err := entities.SplitCommission(total, cfg.PlatformCommissionPct)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	now := u.now()
	p := entities.PaymentRecord{
		ID:                    uuid.NewString(),
		ServiceRequestRef:     cmd.ServiceRequestRef,
		CustomerRef:           cmd.CustomerRef,
		MechanicRef:           strings.TrimSpace(cmd.MechanicRef),
		VehicleType:           vt,
		PaymentMethod:         cmd.PaymentMethod,
		PaymentStatus:         entities.StatusPending,
		TotalAmount:           total,
		PlatformCommissionPct: cfg.PlatformCommissionPct,
		PlatformAmount:        platform,
		MechanicAmount:        mechanic,
		Version:               0,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	u.appendEvent(ctx, created.ID, entities.StatusNone, entities.StatusPending, ActorSystem, cmd.CustomerRef)
	log.Printf("[payment][usecase] created payment_id=%s service_request=%s method=%s total=%d platform=%d mechanic=%d",
		created.ID, created.ServiceRequestRef, created.PaymentMethod, created.TotalAmount, created.PlatformAmount, created.MechanicAmount)
	return created, nil
}

// resolveCataloguePrice reads the catalogue at request time. A deleted or
// unknown issue id is a NotFound at pricing time; free-text "other" issues
// fall back to the configured base price.
func resolveCataloguePrice(cfg entities.PricingConfig, cmd CreatePaymentCommand) (entities.Money, error) {
	switch {
	case cmd.OtherIssue:
		return cfg.OtherIssueBasePrice, nil
	case cmd.IssueID != "":
		it, ok := cfg.Issue(cmd.IssueID)
		if !ok || !it.IsActive {
			return 0, entities.ErrItemNotFound
		}
		return it.EstimatedPrice, nil
	case cmd.EmergencyServiceID != "":
		es, ok := cfg.EmergencyService(cmd.EmergencyServiceID)
		if !ok || !es.IsActive {
			return 0, entities.ErrItemNotFound
		}
		return es.Price, nil
	default:
		return 0, nil
	}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentInput
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if p.ID == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	return p, nil
}

// InitiateOnline obtains a gateway order handle and moves pending -> initiated
// (or failed -> initiated on an explicit retry). Calling it again while
// already initiated is idempotent and returns the record as-is.
func (u *PaymentUseCase) InitiateOnline(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if p.PaymentMethod != entities.PaymentMethodOnline {
		return entities.PaymentRecord{}, ErrIllegalTransition
	}
	if p.PaymentStatus == entities.StatusInitiated && p.GatewayOrderRef != "" {
		log.Printf("[payment][usecase] initiate idempotent payment_id=%s gateway_order=%s", p.ID, p.GatewayOrderRef)
		return p, nil
	}
	if !entities.CanTransition(p.PaymentStatus, entities.StatusInitiated) {
		return entities.PaymentRecord{}, ErrIllegalTransition
	}
	if u.gateway == nil {
		return entities.PaymentRecord{}, ErrGatewayNotConfigured
	}

	orderRef, err := u.gateway.CreateOrder(ctx, p.TotalAmount, p.ID)
	if err != nil {
		log.Printf("[payment][usecase] gateway order failed payment_id=%s err=%v", p.ID, err)
		return entities.PaymentRecord{}, err
	}

	updated := p
	updated.GatewayOrderRef = orderRef
	return u.applyTransition(ctx, p, updated, entities.StatusInitiated, ActorGateway, "")
}

// ConfirmOnline handles the gateway success callback: initiated -> paid.
func (u *PaymentUseCase) ConfirmOnline(ctx context.Context, paymentID, gatewayPaymentRef string) (entities.PaymentRecord, error) {
	gatewayPaymentRef = strings.TrimSpace(gatewayPaymentRef)
	if gatewayPaymentRef == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentInput
	}
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if !entities.CanTransition(p.PaymentStatus, entities.StatusPaid) {
		return entities.PaymentRecord{}, ErrIllegalTransition
	}

	updated := p
	updated.GatewayPaymentRef = gatewayPaymentRef
	return u.applyTransition(ctx, p, updated, entities.StatusPaid, ActorGateway, gatewayPaymentRef)
}

// FailOnline handles the gateway failure/timeout callback: initiated -> failed.
func (u *PaymentUseCase) FailOnline(ctx context.Context, paymentID, reason string) (entities.PaymentRecord, error) {
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if !entities.CanTransition(p.PaymentStatus, entities.StatusFailed) {
		return entities.PaymentRecord{}, ErrIllegalTransition
	}
	log.Printf("[payment][usecase] gateway failure payment_id=%s reason=%q", p.ID, reason)
	return u.applyTransition(ctx, p, p, entities.StatusFailed, ActorGateway, "")
}

// Refund reverses a paid online payment in full: paid -> refunded.
func (u *PaymentUseCase) Refund(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if !entities.CanTransition(p.PaymentStatus, entities.StatusRefunded) {
		return entities.PaymentRecord{}, ErrIllegalTransition
	}
	if u.gateway == nil {
		return entities.PaymentRecord{}, ErrGatewayNotConfigured
	}
	if err := u.gateway.Refund(ctx, p.GatewayPaymentRef, p.TotalAmount); err != nil {
		log.Printf("[payment][usecase] gateway refund failed payment_id=%s err=%v", p.ID, err)
		return entities.PaymentRecord{}, err
	}
	return u.applyTransition(ctx, p, p, entities.StatusRefunded, ActorAdmin, "")
}

// CollectCOD records the mechanic's cash-received confirmation:
// pending -> cod_collected. COD has no initiated phase.
func (u *PaymentUseCase) CollectCOD(ctx context.Context, paymentID, mechanicRef string) (entities.PaymentRecord, error) {
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if p.PaymentMethod != entities.PaymentMethodCOD {
		return entities.PaymentRecord{}, ErrIllegalTransition
	}
	if !entities.CanTransition(p.PaymentStatus, entities.StatusCODCollected) {
		return entities.PaymentRecord{}, ErrIllegalTransition
	}

	now := u.now()
	updated := p
	updated.CODCollectedAt = &now
	return u.applyTransition(ctx, p, updated, entities.StatusCODCollected, ActorMechanic, strings.TrimSpace(mechanicRef))
}

// Settle finalizes one collected COD payment: cod_collected -> settled.
// A repeat call is answered with ErrAlreadySettled, not a silent success;
// under concurrent attempts exactly one caller wins the compare-and-swap.
func (u *PaymentUseCase) Settle(ctx context.Context, serviceRequestRef string) (entities.PaymentRecord, error) {
	serviceRequestRef = strings.TrimSpace(serviceRequestRef)
	if serviceRequestRef == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentInput
	}

	p, err := u.repo.GetByServiceRequestRef(ctx, serviceRequestRef)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if p.ID == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	if p.PaymentStatus == entities.StatusSettled {
		return entities.PaymentRecord{}, ErrAlreadySettled
	}
	if !entities.CanTransition(p.PaymentStatus, entities.StatusSettled) {
		return entities.PaymentRecord{}, ErrIllegalTransition
	}

	now := u.now()
	updated := p
	updated.CODSettledAt = &now
	settled, err := u.applyTransition(ctx, p, updated, entities.StatusSettled, ActorAdmin, "")
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][usecase] settled payment_id=%s service_request=%s amount=%d", settled.ID, settled.ServiceRequestRef, settled.TotalAmount)
	return settled, nil
}

// SettleAll applies the single-record settle to every collected COD payment.
// Failures are independent: one bad record never aborts the batch.
func (u *PaymentUseCase) SettleAll(ctx context.Context) ([]SettlementResult, error) {
	pending, err := u.repo.ListByStatus(ctx, entities.StatusCODCollected)
	if err != nil {
		return nil, err
	}

	results := make([]SettlementResult, 0, len(pending))
	for _, p := range pending {
		res := SettlementResult{ServiceRequestRef: p.ServiceRequestRef}
		if _, err := u.Settle(ctx, p.ServiceRequestRef); err != nil {
			res.Message = err.Error()
		} else {
			res.Settled = true
		}
		results = append(results, res)
	}
	log.Printf("[payment][usecase] settle-all finished total=%d", len(results))
	return results, nil
}

func (u *PaymentUseCase) List(ctx context.Context, f entities.PaymentListFilter) ([]entities.PaymentRecord, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return u.repo.List(ctx, f)
}

func (u *PaymentUseCase) Stats(ctx context.Context) (entities.PaymentStats, error) {
	return u.repo.Stats(ctx)
}

// applyTransition is the one write path for state changes: compare-and-swap
// on the status and version the caller read, then append the audit event.
// A lost race is re-read so the caller sees AlreadySettled when the other
// writer finished the same settlement, IllegalTransition otherwise.
func (u *PaymentUseCase) applyTransition(ctx context.Context, current, updated entities.PaymentRecord, to entities.PaymentStatus, actorType, actorRef string) (entities.PaymentRecord, error) {
	from := current.PaymentStatus
	updated.PaymentStatus = to
	updated.Version = current.Version + 1
	updated.UpdatedAt = u.now()

	ok, err := u.repo.UpdateStatus(ctx, updated, from, current.Version)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if !ok {
		latest, rerr := u.repo.GetByID(ctx, current.ID)
		if rerr == nil && latest.PaymentStatus == entities.StatusSettled && to == entities.StatusSettled {
			return entities.PaymentRecord{}, ErrAlreadySettled
		}
		return entities.PaymentRecord{}, ErrIllegalTransition
	}

	u.appendEvent(ctx, updated.ID, from, to, actorType, actorRef)
	log.Printf("[payment][usecase] transition payment_id=%s %s -> %s actor=%s", updated.ID, from, to, actorType)
	return updated, nil
}

func (u *PaymentUseCase) appendEvent(ctx context.Context, paymentID string, from, to entities.PaymentStatus, actorType, actorRef string) {
	err := u.repo.AppendEvent(ctx, entities.PaymentEvent{
		ID:         uuid.NewString(),
		PaymentID:  paymentID,
		FromStatus: from,
		ToStatus:   to,
		ActorType:  actorType,
		ActorRef:   actorRef,
		CreatedAt:  u.now(),
	})
	if err != nil {
		// The transition already committed; losing the audit row is logged,
		// not surfaced as a failed operation.
		log.Printf("[payment][usecase] audit event append failed payment_id=%s %s->%s err=%v", paymentID, from, to, err)
	}
}
