package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"roadassist/internal/domain/entities"
	"roadassist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPricingConfigsTableName = "pricing_configs"

	// globalPricingKey is a reserved partition key in the pricing_configs
	// table holding the platform-wide defaults. It can never collide with a
	// vehicle type.
	globalPricingKey = "_global"
)

type issueItemRecord struct {
	ID             string `dynamodbav:"id"`
	Label          string `dynamodbav:"label"`
	EstimatedPrice int64  `dynamodbav:"estimated_price"`
	IsActive       bool   `dynamodbav:"is_active"`
}

type emergencyServiceItemRecord struct {
	ID            string `dynamodbav:"id"`
	Label         string `dynamodbav:"label"`
	Price         int64  `dynamodbav:"price"`
	Description   string `dynamodbav:"description,omitempty"`
	EstimatedTime string `dynamodbav:"estimated_time,omitempty"`
	UrgencyLevel  string `dynamodbav:"urgency_level"`
	IsActive      bool   `dynamodbav:"is_active"`
}

type pricingConfigItem struct {
	VehicleType           string                       `dynamodbav:"vehicle_type"`
	BaseFare              int64                        `dynamodbav:"base_fare"`
	PricePerKm            int64                        `dynamodbav:"price_per_km"`
	MinimumFare           int64                        `dynamodbav:"minimum_fare"`
	EmergencySurcharge    int64                        `dynamodbav:"emergency_surcharge"`
	SurgeMultiplier       float64                      `dynamodbav:"surge_multiplier"`
	PlatformCommissionPct float64                      `dynamodbav:"platform_commission_pct"`
	MechanicCommissionPct float64                      `dynamodbav:"mechanic_commission_pct"`
	OtherIssueBasePrice   int64                        `dynamodbav:"other_issue_base_price"`
	Issues                []issueItemRecord            `dynamodbav:"issues"`
	EmergencyServices     []emergencyServiceItemRecord `dynamodbav:"emergency_services"`
	UpdatedAt             string                       `dynamodbav:"updated_at"`
}

type globalPricingItem struct {
	VehicleType           string  `dynamodbav:"vehicle_type"`
	BaseFare              int64   `dynamodbav:"base_fare"`
	PricePerKm            int64   `dynamodbav:"price_per_km"`
	MinimumFare           int64   `dynamodbav:"minimum_fare"`
	EmergencySurcharge    int64   `dynamodbav:"emergency_surcharge"`
	SurgeMultiplier       float64 `dynamodbav:"surge_multiplier"`
	PlatformCommissionPct float64 `dynamodbav:"platform_commission_pct"`
	MechanicCommissionPct float64 `dynamodbav:"mechanic_commission_pct"`
	UpdatedAt             string  `dynamodbav:"updated_at"`
}

// PricingConfigDynamoRepository persists per-vehicle pricing catalogues in
// DynamoDB, one item per vehicle type. Saves always replace the whole item
// so catalogue edits land atomically.
type PricingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_CONFIGS_TABLE", defaultPricingConfigsTableName),
	}
}

func (r *PricingConfigDynamoRepository) GetByVehicleType(ctx context.Context, vt entities.VehicleType) (entities.PricingConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"vehicle_type": &types.AttributeValueMemberS{Value: string(vt)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingConfig{}, nil
	}

	var it pricingConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingConfig{}, err
	}
	return fromPricingConfigItem(it), nil
}

func (r *PricingConfigDynamoRepository) GetAll(ctx context.Context) ([]entities.PricingConfig, error) {
	var configs []entities.PricingConfig
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
			var it pricingConfigItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.VehicleType == globalPricingKey {
				continue
			}
			configs = append(configs, fromPricingConfigItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].VehicleType < configs[j].VehicleType
	})
	return configs, nil
}

func (r *PricingConfigDynamoRepository) Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	av, err := attributevalue.MarshalMap(toPricingConfigItem(cfg))
	if err != nil {
		return entities.PricingConfig{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PricingConfig{}, err
	}
	return cfg, nil
}

func (r *PricingConfigDynamoRepository) CreateIfAbsent(ctx context.Context, cfg entities.PricingConfig) (bool, error) {
	av, err := attributevalue.MarshalMap(toPricingConfigItem(cfg))
	if err != nil {
		return false, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(vehicle_type)"),
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

func (r *PricingConfigDynamoRepository) GetGlobal(ctx context.Context) (entities.GlobalPricing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"vehicle_type": &types.AttributeValueMemberS{Value: globalPricingKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GlobalPricing{}, err
	}
	if len(out.Item) == 0 {
		return entities.GlobalPricing{}, nil
	}

	var it globalPricingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GlobalPricing{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.GlobalPricing{
		BaseFare:              entities.Money(it.BaseFare),
		PricePerKm:            entities.Money(it.PricePerKm),
		MinimumFare:           entities.Money(it.MinimumFare),
		EmergencySurcharge:    entities.Money(it.EmergencySurcharge),
		SurgeMultiplier:       it.SurgeMultiplier,
		PlatformCommissionPct: it.PlatformCommissionPct,
		MechanicCommissionPct: it.MechanicCommissionPct,
		UpdatedAt:             updatedAt,
	}, nil
}

func (r *PricingConfigDynamoRepository) SaveGlobal(ctx context.Context, g entities.GlobalPricing) (entities.GlobalPricing, error) {
	av, err := attributevalue.MarshalMap(globalPricingItem{
		VehicleType:           globalPricingKey,
		BaseFare:              int64(g.BaseFare),
		PricePerKm:            int64(g.PricePerKm),
		MinimumFare:           int64(g.MinimumFare),
		EmergencySurcharge:    int64(g.EmergencySurcharge),
		SurgeMultiplier:       g.SurgeMultiplier,
		PlatformCommissionPct: g.PlatformCommissionPct,
		MechanicCommissionPct: g.MechanicCommissionPct,
		UpdatedAt:             g.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.GlobalPricing{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.GlobalPricing{}, err
	}
	return g, nil
}

func toPricingConfigItem(cfg entities.PricingConfig) pricingConfigItem {
	it := pricingConfigItem{
		VehicleType:           string(cfg.VehicleType),
		BaseFare:              int64(cfg.BaseFare),
		PricePerKm:            int64(cfg.PricePerKm),
		MinimumFare:           int64(cfg.MinimumFare),
		EmergencySurcharge:    int64(cfg.EmergencySurcharge),
		SurgeMultiplier:       cfg.SurgeMultiplier,
		PlatformCommissionPct: cfg.PlatformCommissionPct,
		MechanicCommissionPct: cfg.MechanicCommissionPct,
		OtherIssueBasePrice:   int64(cfg.OtherIssueBasePrice),
		Issues:                make([]issueItemRecord, 0, len(cfg.Issues)),
		EmergencyServices:     make([]emergencyServiceItemRecord, 0, len(cfg.EmergencyServices)),
		UpdatedAt:             cfg.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, is := range cfg.Issues {
		it.Issues = append(it.Issues, issueItemRecord{
			ID:             is.ID,
			Label:          is.Label,
			EstimatedPrice: int64(is.EstimatedPrice),
			IsActive:       is.IsActive,
		})
	}
	for _, es := range cfg.EmergencyServices {
		it.EmergencyServices = append(it.EmergencyServices, emergencyServiceItemRecord{
			ID:            es.ID,
			Label:         es.Label,
			Price:         int64(es.Price),
			Description:   es.Description,
			EstimatedTime: es.EstimatedTime,
			UrgencyLevel:  string(es.UrgencyLevel),
			IsActive:      es.IsActive,
		})
	}
	return it
}

func fromPricingConfigItem(it pricingConfigItem) entities.PricingConfig {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	cfg := entities.PricingConfig{
		VehicleType:           entities.VehicleType(it.VehicleType),
		BaseFare:              entities.Money(it.BaseFare),
		PricePerKm:            entities.Money(it.PricePerKm),
		MinimumFare:           entities.Money(it.MinimumFare),
		EmergencySurcharge:    entities.Money(it.EmergencySurcharge),
		SurgeMultiplier:       it.SurgeMultiplier,
		PlatformCommissionPct: it.PlatformCommissionPct,
		MechanicCommissionPct: it.MechanicCommissionPct,
		OtherIssueBasePrice:   entities.Money(it.OtherIssueBasePrice),
		Issues:                make([]entities.IssueItem, 0, len(it.Issues)),
		EmergencyServices:     make([]entities.EmergencyServiceItem, 0, len(it.EmergencyServices)),
		UpdatedAt:             updatedAt,
	}
	for _, is := range it.Issues {
		cfg.Issues = append(cfg.Issues, entities.IssueItem{
			ID:             is.ID,
			Label:          is.Label,
			EstimatedPrice: entities.Money(is.EstimatedPrice),
			IsActive:       is.IsActive,
		})
	}
	for _, es := range it.EmergencyServices {
		cfg.EmergencyServices = append(cfg.EmergencyServices, entities.EmergencyServiceItem{
			ID:            es.ID,
			Label:         es.Label,
			Price:         entities.Money(es.Price),
			Description:   es.Description,
			EstimatedTime: es.EstimatedTime,
			UrgencyLevel:  entities.UrgencyLevel(es.UrgencyLevel),
			IsActive:      es.IsActive,
		})
	}
	return cfg
}
