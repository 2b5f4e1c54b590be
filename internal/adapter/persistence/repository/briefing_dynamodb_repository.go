package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBriefingsTableName = "briefings"
	briefingsTenantIDIndex    = "tenant_id-index"
)

type briefingItem struct {
	ID        string `dynamodbav:"id"`
	TenantID  string `dynamodbav:"tenant_id"`
	ClientID  string `dynamodbav:"client_id"`
	Status    string `dynamodbav:"status"`
	Answers   string `dynamodbav:"answers"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	DeletedAt string `dynamodbav:"deleted_at,omitempty"`
}

// BriefingDynamoRepository persists Briefing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
//
// Answers are stored as a JSON document in a single attribute.

type BriefingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBriefingRepository = (*BriefingDynamoRepository)(nil)

func NewBriefingDynamoRepository(ddb *dynamodb.Client) *BriefingDynamoRepository {
	return &BriefingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BRIEFINGS_TABLE", defaultBriefingsTableName),
	}
}

func (r *BriefingDynamoRepository) Create(ctx context.Context, b entities.Briefing) (entities.Briefing, error) {
	it, err := toBriefingItem(b)
	if err != nil {
		return entities.Briefing{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Briefing{}, err
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
		return entities.Briefing{}, err
	}
	return b, nil
}

func (r *BriefingDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Briefing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Briefing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Briefing{}, nil
	}

	var it briefingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Briefing{}, err
	}
	if it.TenantID != tenantID {
		return entities.Briefing{}, nil
	}
	return fromBriefingItem(it)
}

func (r *BriefingDynamoRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entities.BriefingStatus) (entities.Briefing, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND attribute_not_exists(#deleted_at)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant_id":  &types.AttributeValueMemberS{Value: tenantID},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#tenant_id":  "tenant_id",
			"#deleted_at": "deleted_at",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Briefing{}, nil
		}
		return entities.Briefing{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Briefing{}, nil
	}
	var it briefingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Briefing{}, err
	}
	return fromBriefingItem(it)
}

func (r *BriefingDynamoRepository) ListAvailable(ctx context.Context, tenantID string) ([]entities.Briefing, error) {
	names, values, filter := eligibleStatusFilter()
	values[":tenant_id"] = &types.AttributeValueMemberS{Value: tenantID}

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(briefingsTenantIDIndex),
		KeyConditionExpression:    aws.String("tenant_id = :tenant_id"),
		FilterExpression:          aws.String(filter + " AND attribute_not_exists(#deleted_at)"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#deleted_at": "deleted_at"}),
	})

	items := make([]entities.Briefing, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it briefingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			b, err := fromBriefingItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, b)
		}
	}
	return items, nil
}

// eligibleStatusFilter builds `#status IN (...)` over the statuses a budget
// may be generated from.
func eligibleStatusFilter() (map[string]string, map[string]types.AttributeValue, string) {
	values := make(map[string]types.AttributeValue, len(entities.BudgetEligibleStatuses)+1)
	expr := "#status IN ("
	for i, s := range entities.BudgetEligibleStatuses {
		key := fmt.Sprintf(":eligible%d", i)
		if i > 0 {
			expr += ", "
		}
		expr += key
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}
	return map[string]string{"#status": "status"}, values, expr + ")"
}

func toBriefingItem(b entities.Briefing) (briefingItem, error) {
	answers, err := json.Marshal(b.Answers)
	if err != nil {
		return briefingItem{}, fmt.Errorf("encode briefing answers: %w", err)
	}
	return briefingItem{
		ID:        b.ID,
		TenantID:  b.TenantID,
		ClientID:  b.ClientID,
		Status:    string(b.Status),
		Answers:   string(answers),
		CreatedAt: formatTime(b.CreatedAt),
		UpdatedAt: formatTime(b.UpdatedAt),
		DeletedAt: formatTimePtr(b.DeletedAt),
	}, nil
}

func fromBriefingItem(it briefingItem) (entities.Briefing, error) {
	b := entities.Briefing{
		ID:        it.ID,
		TenantID:  it.TenantID,
		ClientID:  it.ClientID,
		Status:    entities.BriefingStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		DeletedAt: parseTimePtr(it.DeletedAt),
	}
	if it.Answers != "" {
		if err := json.Unmarshal([]byte(it.Answers), &b.Answers); err != nil {
			return entities.Briefing{}, fmt.Errorf("decode briefing answers: %w", err)
		}
	}
	return b, nil
}
