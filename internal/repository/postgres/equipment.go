package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"enginerent-backend/internal/domain"
	"enginerent-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipment (name, description, category, brand, daily_rate_cents, location, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, eq.Name, eq.Description, eq.Category, eq.Brand, eq.DailyRateCents, eq.Location, eq.Status, time.Now()).Scan(&eq.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT id, name, description, category, brand, daily_rate_cents, location, status, created_on FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&eq.ID, &eq.Name, &eq.Description, &eq.Category, &eq.Brand, &eq.DailyRateCents, &eq.Location, &eq.Status, &eq.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("equipment %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, description=$2, category=$3, brand=$4, daily_rate_cents=$5, location=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, eq.Name, eq.Description, eq.Category, eq.Brand, eq.DailyRateCents, eq.Location, eq.ID)
	if err != nil {
		return err
	}
	return checkAffected(res, eq.ID)
}

func (r *equipmentRepository) UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE equipment SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

func (r *equipmentRepository) CompareAndSwapStatus(ctx context.Context, id int32, from, to domain.EquipmentStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE equipment SET status=$1 WHERE id=$2 AND status=$3`, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

func (r *equipmentRepository) List(ctx context.Context, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	query := `SELECT id, name, description, category, brand, daily_rate_cents, location, status, created_on FROM equipment WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	addFilter := func(column, value string) {
		if value != "" {
			query += fmt.Sprintf(" AND %s = $%d", column, argIdx)
			args = append(args, value)
			argIdx++
		}
	}
	addFilter("category", filter.Category)
	addFilter("brand", filter.Brand)
	addFilter("status", filter.Status)
	addFilter("location", filter.Location)
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	query += " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.Name, &eq.Description, &eq.Category, &eq.Brand, &eq.DailyRateCents, &eq.Location, &eq.Status, &eq.CreatedOn); err != nil {
			return nil, err
		}
		out = append(out, eq)
	}
	return out, rows.Err()
}

func (r *equipmentRepository) CountByStatus(ctx context.Context) (map[domain.EquipmentStatus]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM equipment GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.EquipmentStatus]int32)
	for rows.Next() {
		var status domain.EquipmentStatus
		var n int32
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// checkAffected turns a zero-row update into ErrNotFound.
func checkAffected(res sql.Result, id int32) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("id %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
