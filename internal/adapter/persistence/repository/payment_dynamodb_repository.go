package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName      = "payments"
	defaultPaymentEventsTableName = "payment_events"
	paymentsServiceRequestIndex   = "service_request_ref-index"
)

type paymentItem struct {
	ID                    string  `dynamodbav:"id"`
	ServiceRequestRef     string  `dynamodbav:"service_request_ref"`
	CustomerRef           string  `dynamodbav:"customer_ref"`
	MechanicRef           string  `dynamodbav:"mechanic_ref,omitempty"`
	VehicleType           string  `dynamodbav:"vehicle_type"`
	PaymentMethod         string  `dynamodbav:"payment_method"`
	PaymentStatus         string  `dynamodbav:"payment_status"`
	TotalAmount           int64   `dynamodbav:"total_amount"`
	PlatformCommissionPct float64 `dynamodbav:"platform_commission_pct"`
	PlatformAmount        int64   `dynamodbav:"platform_amount"`
	MechanicAmount        int64   `dynamodbav:"mechanic_amount"`
	GatewayOrderRef       string  `dynamodbav:"gateway_order_ref,omitempty"`
	GatewayPaymentRef     string  `dynamodbav:"gateway_payment_ref,omitempty"`
	CODCollectedAt        string  `dynamodbav:"cod_collected_at,omitempty"`
	CODSettledAt          string  `dynamodbav:"cod_settled_at,omitempty"`
	Version               int     `dynamodbav:"version"`
	CreatedAt             string  `dynamodbav:"created_at"`
	UpdatedAt             string  `dynamodbav:"updated_at"`
}

type paymentEventItem struct {
	ID         string `dynamodbav:"id"`
	PaymentID  string `dynamodbav:"payment_id"`
	FromStatus string `dynamodbav:"from_status"`
	ToStatus   string `dynamodbav:"to_status"`
	ActorType  string `dynamodbav:"actor_type"`
	ActorRef   string `dynamodbav:"actor_ref,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - payments: PK id (string), GSI service_request_ref-index (PK: service_request_ref)
//   - payment_events: PK id (string)
//
// Transitions are compare-and-swap writes: the put is conditioned on the
// (payment_status, version) pair the caller read, so of two concurrent
// writers exactly one succeeds.

type PaymentDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	eventsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		eventsTable: getenvDefault("PAYMENT_EVENTS_TABLE", defaultPaymentEventsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByServiceRequestRef(ctx context.Context, ref string) (entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsServiceRequestIndex),
		KeyConditionExpression: aws.String("service_request_ref = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: ref},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	// The GSI is eventually consistent; the authoritative read goes back to
	// the table by primary key.
	return r.GetByID(ctx, it.ID)
}

func (r *PaymentDynamoRepository) List(ctx context.Context, f entities.PaymentListFilter) ([]entities.PaymentRecord, int, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]entities.PaymentRecord, 0, len(all))
	for _, p := range all {
		if f.PaymentMethod != "" && p.PaymentMethod != f.PaymentMethod {
			continue
		}
		if f.PaymentStatus != "" && p.PaymentStatus != f.PaymentStatus {
			continue
		}
		filtered = append(filtered, p)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	start := (f.Page - 1) * f.Limit
	if start >= total {
		return []entities.PaymentRecord{}, total, nil
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

func (r *PaymentDynamoRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentRecord, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]entities.PaymentRecord, 0, len(all))
	for _, p := range all {
		if p.PaymentStatus == status {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, p entities.PaymentRecord, fromStatus entities.PaymentStatus, fromVersion int) (bool, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#status = :from AND #version = :v"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "payment_status",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(fromStatus)},
			":v":    &types.AttributeValueMemberN{Value: strconv.Itoa(fromVersion)},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PaymentDynamoRepository) AppendEvent(ctx context.Context, e entities.PaymentEvent) error {
	av, err := attributevalue.MarshalMap(paymentEventItem{
		ID:         e.ID,
		PaymentID:  e.PaymentID,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		ActorType:  e.ActorType,
		ActorRef:   e.ActorRef,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.eventsTable),
		Item:      av,
	})
	return err
}

func (r *PaymentDynamoRepository) Stats(ctx context.Context) (entities.PaymentStats, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return entities.PaymentStats{}, err
	}
	return aggregateStats(all), nil
}

func (r *PaymentDynamoRepository) scanAll(ctx context.Context) ([]entities.PaymentRecord, error) {
	var records []entities.PaymentRecord
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromPaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return records, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// aggregateStats builds the admin dashboard aggregate from a full record
// set. Shared with the in-memory repository.
func aggregateStats(all []entities.PaymentRecord) entities.PaymentStats {
	stats := entities.PaymentStats{
		CountByMethod: make(map[entities.PaymentMethod]int),
		CountByStatus: make(map[entities.PaymentStatus]int),
	}
	for _, p := range all {
		stats.TotalCount++
		stats.TotalAmount += p.TotalAmount
		stats.PlatformAmount += p.PlatformAmount
		stats.MechanicAmount += p.MechanicAmount
		stats.CountByMethod[p.PaymentMethod]++
		stats.CountByStatus[p.PaymentStatus]++
		if p.PaymentStatus == entities.StatusCODCollected {
			stats.PendingCODAmount += p.TotalAmount
		}
	}
	return stats
}

func toPaymentItem(p entities.PaymentRecord) paymentItem {
	it := paymentItem{
		ID:                    p.ID,
		ServiceRequestRef:     p.ServiceRequestRef,
		CustomerRef:           p.CustomerRef,
		MechanicRef:           p.MechanicRef,
		VehicleType:           string(p.VehicleType),
		PaymentMethod:         string(p.PaymentMethod),
		PaymentStatus:         string(p.PaymentStatus),
		TotalAmount:           int64(p.TotalAmount),
		PlatformCommissionPct: p.PlatformCommissionPct,
		PlatformAmount:        int64(p.PlatformAmount),
		MechanicAmount:        int64(p.MechanicAmount),
		GatewayOrderRef:       p.GatewayOrderRef,
		GatewayPaymentRef:     p.GatewayPaymentRef,
		Version:               p.Version,
		CreatedAt:             p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.CODCollectedAt != nil {
		it.CODCollectedAt = p.CODCollectedAt.UTC().Format(time.RFC3339Nano)
	}
	if p.CODSettledAt != nil {
		it.CODSettledAt = p.CODSettledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.PaymentRecord{
		ID:                    it.ID,
		ServiceRequestRef:     it.ServiceRequestRef,
		CustomerRef:           it.CustomerRef,
		MechanicRef:           it.MechanicRef,
		VehicleType:           entities.VehicleType(it.VehicleType),
		PaymentMethod:         entities.PaymentMethod(it.PaymentMethod),
		PaymentStatus:         entities.PaymentStatus(it.PaymentStatus),
		TotalAmount:           entities.Money(it.TotalAmount),
		PlatformCommissionPct: it.PlatformCommissionPct,
		PlatformAmount:        entities.Money(it.PlatformAmount),
		MechanicAmount:        entities.Money(it.MechanicAmount),
		GatewayOrderRef:       it.GatewayOrderRef,
		GatewayPaymentRef:     it.GatewayPaymentRef,
		Version:               it.Version,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
	if it.CODCollectedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CODCollectedAt); err == nil {
			p.CODCollectedAt = &t
		}
	}
	if it.CODSettledAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CODSettledAt); err == nil {
			p.CODSettledAt = &t
		}
	}
	return p
}
