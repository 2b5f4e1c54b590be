package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBudgetsTableName = "budgets"

	budgetItemKind    = "budget"
	guardItemKind     = "briefing_guard"
	codeGuardItemKind = "code_guard"

	// Positions inside the create transaction.
	txGuardIndex     = 0
	txBudgetIndex    = 1
	txBriefingIndex  = 2
	txCodeGuardIndex = 3
)

type budgetItem struct {
	ID                 string `dynamodbav:"id"`
	Kind               string `dynamodbav:"kind"`
	Code               string `dynamodbav:"code"`
	TenantID           string `dynamodbav:"tenant_id"`
	BriefingID         string `dynamodbav:"briefing_id"`
	ClientID           string `dynamodbav:"client_id"`
	ResponsibleUserID  string `dynamodbav:"responsible_user_id"`
	Status             string `dynamodbav:"status"`
	MethodologyVersion string `dynamodbav:"methodology_version"`
	Total              string `dynamodbav:"total"`
	ValuePerM2         string `dynamodbav:"value_per_m2"`
	Details            string `dynamodbav:"details"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	DeletedAt          string `dynamodbav:"deleted_at,omitempty"`
}

// guardItem reserves (tenant_id, briefing_id) for one live budget, or a
// budget code when keyed by codeGuardKey.
type guardItem struct {
	ID        string `dynamodbav:"id"`
	Kind      string `dynamodbav:"kind"`
	BudgetID  string `dynamodbav:"budget_id"`
	Code      string `dynamodbav:"code"`
	CreatedAt string `dynamodbav:"created_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Besides the budget itself, the table holds one guard item per
// (tenant_id, briefing_id) keyed "briefing#<tenant>#<briefing>". The guard is
// written with attribute_not_exists in the same transaction as the budget and
// the briefing status change, so a second budget for a briefing can never
// commit. A second guard keyed "code#<code>" keeps budget codes unique.

type BudgetDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	briefingTableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
		briefingTableName: getenvDefault("BRIEFINGS_TABLE", defaultBriefingsTableName),
	}
}

func guardKey(tenantID, briefingID string) string {
	return "briefing#" + tenantID + "#" + briefingID
}

func codeGuardKey(code string) string {
	return "code#" + code
}

func (r *BudgetDynamoRepository) CreateWithBriefingTransition(ctx context.Context, b entities.Budget, briefingStatus entities.BriefingStatus) (entities.Budget, error) {
	items, err := r.createTransaction(b, briefingStatus)
	if err != nil {
		return entities.Budget{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.Budget{}, mapCreateError(err)
	}
	return b, nil
}

// createTransaction builds the guard, budget, briefing update and code guard
// writes at their tx*Index positions.
func (r *BudgetDynamoRepository) createTransaction(b entities.Budget, briefingStatus entities.BriefingStatus) ([]types.TransactWriteItem, error) {
	it, err := toBudgetItem(b)
	if err != nil {
		return nil, err
	}
	budgetAV, err := attributevalue.MarshalMap(it)
	if err != nil {
		return nil, err
	}
	guardAV, err := attributevalue.MarshalMap(guardItem{
		ID:        guardKey(b.TenantID, b.BriefingID),
		Kind:      guardItemKind,
		BudgetID:  b.ID,
		Code:      b.Code,
		CreatedAt: it.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	codeGuardAV, err := attributevalue.MarshalMap(guardItem{
		ID:        codeGuardKey(b.Code),
		Kind:      codeGuardItemKind,
		BudgetID:  b.ID,
		Code:      b.Code,
		CreatedAt: it.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	statusNames, statusValues, statusFilter := eligibleStatusFilter()
	statusValues[":tenant_id"] = &types.AttributeValueMemberS{Value: b.TenantID}
	statusValues[":new_status"] = &types.AttributeValueMemberS{Value: string(briefingStatus)}
	statusValues[":updated_at"] = &types.AttributeValueMemberS{Value: it.CreatedAt}

	items := make([]types.TransactWriteItem, 4)
	items[txGuardIndex] = types.TransactWriteItem{Put: r.putIfAbsent(guardAV)}
	items[txBudgetIndex] = types.TransactWriteItem{Put: r.putIfAbsent(budgetAV)}
	items[txBriefingIndex] = types.TransactWriteItem{Update: &types.Update{
		TableName: aws.String(r.briefingTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: b.BriefingID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #tenant_id = :tenant_id AND attribute_not_exists(#deleted_at) AND " + statusFilter),
		UpdateExpression:          aws.String("SET #status = :new_status, #updated_at = :updated_at"),
		ExpressionAttributeValues: statusValues,
		ExpressionAttributeNames: mergeNames(statusNames, map[string]string{
			"#id":         "id",
			"#tenant_id":  "tenant_id",
			"#deleted_at": "deleted_at",
			"#updated_at": "updated_at",
		}),
	}}
	items[txCodeGuardIndex] = types.TransactWriteItem{Put: r.putIfAbsent(codeGuardAV)}
	return items, nil
}

func (r *BudgetDynamoRepository) putIfAbsent(item map[string]types.AttributeValue) *types.Put {
	return &types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
}

// mapCreateError translates a cancelled create transaction. The briefing
// guard wins when several conditions fail.
func mapCreateError(err error) error {
	switch {
	case cancelledBy(err, txGuardIndex):
		return interfaces.ErrDuplicateBudget
	case cancelledBy(err, txBriefingIndex):
		return interfaces.ErrBriefingTransitionRejected
	case cancelledBy(err, txCodeGuardIndex):
		return interfaces.ErrDuplicateBudgetCode
	}
	return err
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	if it.Kind != budgetItemKind || it.TenantID != tenantID {
		return entities.Budget{}, nil
	}
	return fromBudgetItem(it)
}

func (r *BudgetDynamoRepository) GetActiveByBriefingID(ctx context.Context, tenantID, briefingID string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: guardKey(tenantID, briefingID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var g guardItem
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return entities.Budget{}, err
	}
	b, err := r.GetByID(ctx, tenantID, g.BudgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Deleted() {
		return entities.Budget{}, nil
	}
	return b, nil
}

func toBudgetItem(b entities.Budget) (budgetItem, error) {
	details, err := json.Marshal(b.ValidatedBudget)
	if err != nil {
		return budgetItem{}, fmt.Errorf("encode budget details: %w", err)
	}
	return budgetItem{
		ID:                 b.ID,
		Kind:               budgetItemKind,
		Code:               b.Code,
		TenantID:           b.TenantID,
		BriefingID:         b.BriefingID,
		ClientID:           b.ClientID,
		ResponsibleUserID:  b.ResponsibleUserID,
		Status:             string(b.Status),
		MethodologyVersion: b.MethodologyVersion,
		Total:              strconv.FormatInt(int64(b.Total), 10),
		ValuePerM2:         strconv.FormatInt(int64(b.ValuePerM2), 10),
		Details:            string(details),
		CreatedAt:          formatTime(b.CreatedAt),
		UpdatedAt:          formatTime(b.UpdatedAt),
		DeletedAt:          formatTimePtr(b.DeletedAt),
	}, nil
}

func fromBudgetItem(it budgetItem) (entities.Budget, error) {
	b := entities.Budget{
		ID:                 it.ID,
		Code:               it.Code,
		TenantID:           it.TenantID,
		BriefingID:         it.BriefingID,
		ClientID:           it.ClientID,
		ResponsibleUserID:  it.ResponsibleUserID,
		Status:             entities.BudgetStatus(it.Status),
		MethodologyVersion: it.MethodologyVersion,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		DeletedAt:          parseTimePtr(it.DeletedAt),
	}
	if it.Details != "" {
		if err := json.Unmarshal([]byte(it.Details), &b.ValidatedBudget); err != nil {
			return entities.Budget{}, fmt.Errorf("decode budget details: %w", err)
		}
	}
	return b, nil
}
