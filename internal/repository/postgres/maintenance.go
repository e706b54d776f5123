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

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, equipment_id, type, description, scheduled_date, completed_date, technician_id, status, notes, created_on`

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRecord) error {
	query := `INSERT INTO maintenance_records (equipment_id, type, description, scheduled_date, technician_id, status, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.EquipmentID, m.Type, m.Description, m.ScheduledDate, m.TechnicianID, m.Status, m.Notes, time.Now()).Scan(&m.ID)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRecord, error) {
	m := &domain.MaintenanceRecord{}
	var completed sql.NullTime
	var notes sql.NullString
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.EquipmentID, &m.Type, &m.Description, &m.ScheduledDate, &completed, &m.TechnicianID, &m.Status, &notes, &m.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("maintenance record %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if completed.Valid {
		m.CompletedDate = &completed.Time
	}
	m.Notes = notes.String
	return m, nil
}

func (r *maintenanceRepository) Complete(ctx context.Context, id int32, notes string) error {
	query := `UPDATE maintenance_records SET status=$1, completed_date=$2, notes=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, domain.MaintenanceStatusCompleted, time.Now(), notes, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

func (r *maintenanceRepository) ListAll(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records ORDER BY scheduled_date DESC`
	return r.list(ctx, query)
}

func (r *maintenanceRepository) ListByTechnician(ctx context.Context, technicianID int32) ([]domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE technician_id = $1 ORDER BY scheduled_date DESC`
	return r.list(ctx, query, technicianID)
}

func (r *maintenanceRepository) ListScheduledBefore(ctx context.Context, cutoff string) ([]domain.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE status = $1 AND scheduled_date <= $2`
	return r.list(ctx, query, domain.MaintenanceStatusScheduled, cutoff)
}

func (r *maintenanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MaintenanceRecord
	for rows.Next() {
		var m domain.MaintenanceRecord
		var completed sql.NullTime
		var notes sql.NullString
		if err := rows.Scan(&m.ID, &m.EquipmentID, &m.Type, &m.Description, &m.ScheduledDate, &completed, &m.TechnicianID, &m.Status, &notes, &m.CreatedOn); err != nil {
			return nil, err
		}
		if completed.Valid {
			m.CompletedDate = &completed.Time
		}
		m.Notes = notes.String
		out = append(out, m)
	}
	return out, rows.Err()
}
