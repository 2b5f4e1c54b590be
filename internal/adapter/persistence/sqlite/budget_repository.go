package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/interfaces"
)

const budgetColumns = "id, code, tenant_id, briefing_id, client_id, responsible_user_id, status, methodology_version, total, value_per_m2, details, created_at, updated_at, deleted_at"

// BudgetRepository persists Budget entities in the budgets table. The partial
// unique index on (tenant_id, briefing_id) keeps one live budget per briefing.
type BudgetRepository struct {
	db *sql.DB
}

var _ interfaces.IBudgetRepository = (*BudgetRepository)(nil)

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) CreateWithBriefingTransition(ctx context.Context, b entities.Budget, briefingStatus entities.BriefingStatus) (entities.Budget, error) {
	details, err := json.Marshal(b.ValidatedBudget)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("encode budget details: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("begin budget transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO budgets (`+budgetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Code, b.TenantID, b.BriefingID, b.ClientID, b.ResponsibleUserID, string(b.Status),
		b.MethodologyVersion, int64(b.Total), int64(b.ValuePerM2), string(details),
		formatTime(b.CreatedAt), formatTime(b.UpdatedAt), nullTime(b.DeletedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "budgets.code") {
				return entities.Budget{}, interfaces.ErrDuplicateBudgetCode
			}
			return entities.Budget{}, interfaces.ErrDuplicateBudget
		}
		return entities.Budget{}, fmt.Errorf("insert budget: %w", err)
	}

	placeholders := make([]string, len(entities.BudgetEligibleStatuses))
	args := []any{string(briefingStatus), formatTime(b.CreatedAt), b.BriefingID, b.TenantID}
	for i, s := range entities.BudgetEligibleStatuses {
		placeholders[i] = "?"
		args = append(args, string(s))
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE briefings SET status = ?, updated_at = ?
		 WHERE id = ? AND tenant_id = ? AND deleted_at IS NULL AND status IN (`+strings.Join(placeholders, ", ")+`)`,
		args...)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("advance briefing status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.Budget{}, interfaces.ErrBriefingTransitionRejected
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return entities.Budget{}, interfaces.ErrDuplicateBudget
		}
		return entities.Budget{}, fmt.Errorf("commit budget transaction: %w", err)
	}
	return b, nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Budget, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE id = ? AND tenant_id = ?`, id, tenantID)
	b, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Budget{}, nil
	}
	return b, err
}

func (r *BudgetRepository) GetActiveByBriefingID(ctx context.Context, tenantID, briefingID string) (entities.Budget, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE tenant_id = ? AND briefing_id = ? AND deleted_at IS NULL`,
		tenantID, briefingID)
	b, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Budget{}, nil
	}
	return b, err
}

func scanBudget(row rowScanner) (entities.Budget, error) {
	var (
		b                    entities.Budget
		status, details      string
		total, valuePerM2    int64
		createdAt, updatedAt string
		deletedAt            sql.NullString
	)
	err := row.Scan(&b.ID, &b.Code, &b.TenantID, &b.BriefingID, &b.ClientID, &b.ResponsibleUserID, &status,
		&b.MethodologyVersion, &total, &valuePerM2, &details, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := json.Unmarshal([]byte(details), &b.ValidatedBudget); err != nil {
		return entities.Budget{}, fmt.Errorf("decode budget details: %w", err)
	}
	b.Status = entities.BudgetStatus(status)
	b.Total = entities.Money(total)
	b.ValuePerM2 = entities.Money(valuePerM2)
	b.CreatedAt = parseTime(createdAt)
	b.UpdatedAt = parseTime(updatedAt)
	b.DeletedAt = timePtr(deletedAt)
	return b, nil
}
