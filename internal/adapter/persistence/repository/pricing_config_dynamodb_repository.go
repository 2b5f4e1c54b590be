package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingTableName = "pricing_configs"

type pricingConfigItem struct {
	TenantID  string `dynamodbav:"tenant_id"`
	Config    string `dynamodbav:"config"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PricingConfigDynamoRepository stores one pricing override per tenant.
//
// Table requirements:
//   - PK: tenant_id (string)

type PricingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_TABLE", defaultPricingTableName),
	}
}

func (r *PricingConfigDynamoRepository) GetByTenant(ctx context.Context, tenantID string) (entities.PricingConfig, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingConfig{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.PricingConfig{}, false, nil
	}

	var it pricingConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingConfig{}, false, err
	}
	var cfg entities.PricingConfig
	if err := json.Unmarshal([]byte(it.Config), &cfg); err != nil {
		return entities.PricingConfig{}, false, fmt.Errorf("decode pricing config: %w", err)
	}
	cfg.TenantID = it.TenantID
	cfg.UpdatedAt = parseTime(it.UpdatedAt)
	return cfg, true, nil
}

func (r *PricingConfigDynamoRepository) Save(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return entities.PricingConfig{}, fmt.Errorf("encode pricing config: %w", err)
	}
	av, err := attributevalue.MarshalMap(pricingConfigItem{
		TenantID:  cfg.TenantID,
		Config:    string(raw),
		UpdatedAt: formatTime(cfg.UpdatedAt),
	})
	if err != nil {
		return entities.PricingConfig{}, err
	}

	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.PricingConfig{}, err
	}
	return cfg, nil
}
