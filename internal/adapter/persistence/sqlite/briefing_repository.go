package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"orcamento_arq/internal/domain/entities"
	"orcamento_arq/internal/usecase/interfaces"
)

const briefingColumns = "id, tenant_id, client_id, status, answers, created_at, updated_at, deleted_at"

// BriefingRepository persists Briefing entities in the briefings table.
type BriefingRepository struct {
	db *sql.DB
}

var _ interfaces.IBriefingRepository = (*BriefingRepository)(nil)

func NewBriefingRepository(db *sql.DB) *BriefingRepository {
	return &BriefingRepository{db: db}
}

func (r *BriefingRepository) Create(ctx context.Context, b entities.Briefing) (entities.Briefing, error) {
	answers, err := json.Marshal(b.Answers)
	if err != nil {
		return entities.Briefing{}, fmt.Errorf("encode briefing answers: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO briefings (`+briefingColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.TenantID, b.ClientID, string(b.Status), string(answers),
		formatTime(b.CreatedAt), formatTime(b.UpdatedAt), nullTime(b.DeletedAt),
	)
	if err != nil {
		return entities.Briefing{}, fmt.Errorf("insert briefing: %w", err)
	}
	return b, nil
}

func (r *BriefingRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Briefing, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+briefingColumns+` FROM briefings WHERE id = ? AND tenant_id = ?`, id, tenantID)
	b, err := scanBriefing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Briefing{}, nil
	}
	return b, err
}

func (r *BriefingRepository) UpdateStatus(ctx context.Context, tenantID, id string, status entities.BriefingStatus) (entities.Briefing, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE briefings SET status = ?, updated_at = ? WHERE id = ? AND tenant_id = ? AND deleted_at IS NULL`,
		string(status), formatTime(time.Now()), id, tenantID)
	if err != nil {
		return entities.Briefing{}, fmt.Errorf("update briefing status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.Briefing{}, nil
	}
	return r.GetByID(ctx, tenantID, id)
}

func (r *BriefingRepository) ListAvailable(ctx context.Context, tenantID string) ([]entities.Briefing, error) {
	placeholders := make([]string, len(entities.BudgetEligibleStatuses))
	args := []any{tenantID}
	for i, s := range entities.BudgetEligibleStatuses {
		placeholders[i] = "?"
		args = append(args, string(s))
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+briefingColumns+` FROM briefings
		 WHERE tenant_id = ? AND deleted_at IS NULL AND status IN (`+strings.Join(placeholders, ", ")+`)
		 ORDER BY updated_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list briefings: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Briefing, 0)
	for rows.Next() {
		b, err := scanBriefing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func scanBriefing(row rowScanner) (entities.Briefing, error) {
	var (
		b                    entities.Briefing
		status, answers      string
		createdAt, updatedAt string
		deletedAt            sql.NullString
	)
	if err := row.Scan(&b.ID, &b.TenantID, &b.ClientID, &status, &answers, &createdAt, &updatedAt, &deletedAt); err != nil {
		return entities.Briefing{}, err
	}
	if err := json.Unmarshal([]byte(answers), &b.Answers); err != nil {
		return entities.Briefing{}, fmt.Errorf("decode briefing answers: %w", err)
	}
	b.Status = entities.BriefingStatus(status)
	b.CreatedAt = parseTime(createdAt)
	b.UpdatedAt = parseTime(updatedAt)
	b.DeletedAt = timePtr(deletedAt)
	return b, nil
}
