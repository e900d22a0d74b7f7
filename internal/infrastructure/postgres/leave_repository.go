package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
)

var _ repository.LeaveRequestRepository = (*LeaveRequestRepo)(nil)

const leaveColumns = `id, employee_id, employee_name, start_date, end_date, reason, status, reviewed_by_id, reviewed_by_name, review_notes, requested_at, reviewed_at`

// LeaveRequestRepo implements the LeaveRequestRepository port over PostgreSQL.
type LeaveRequestRepo struct {
	db querier
}

// NewLeaveRequestRepository builds the persistence adapter for leave requests.
func NewLeaveRequestRepository(db querier) *LeaveRequestRepo {
	return &LeaveRequestRepo{db: db}
}

// Create persists a new leave request.
func (r *LeaveRequestRepo) Create(ctx context.Context, lr *entity.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (` + leaveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		lr.ID, lr.EmployeeID, lr.EmployeeName, lr.StartDate, lr.EndDate, lr.Reason,
		lr.Status, lr.ReviewedByID, lr.ReviewedByName, lr.ReviewNotes, lr.RequestedAt, lr.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("insert leave request: %w", err)
	}
	return nil
}

// GetByID fetches a leave request; nil when absent.
func (r *LeaveRequestRepo) GetByID(ctx context.Context, id string) (*entity.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`
	var lr entity.LeaveRequest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.EmployeeName, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.Status, &lr.ReviewedByID, &lr.ReviewedByName, &lr.ReviewNotes, &lr.RequestedAt, &lr.ReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave request by id: %w", err)
	}
	return &lr, nil
}

// Update persists the review mutation.
func (r *LeaveRequestRepo) Update(ctx context.Context, lr *entity.LeaveRequest) error {
	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by_id = $3, reviewed_by_name = $4, review_notes = $5, reviewed_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		lr.ID, lr.Status, lr.ReviewedByID, lr.ReviewedByName, lr.ReviewNotes, lr.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("update leave request: %w", err)
	}
	return nil
}

// ListByEmployee returns an employee's own requests, newest first.
func (r *LeaveRequestRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE employee_id = $1 ORDER BY requested_at DESC`
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leave requests by employee: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByManagers returns requests whose submitting employee reports to one of
// managerIDs, newest first. The scoping join runs on the employee's live
// manager_id, not on the reviewer snapshot.
func (r *LeaveRequestRepo) ListByManagers(ctx context.Context, managerIDs []string) ([]*entity.LeaveRequest, error) {
	if len(managerIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT lr.id, lr.employee_id, lr.employee_name, lr.start_date, lr.end_date, lr.reason,
		       lr.status, lr.reviewed_by_id, lr.reviewed_by_name, lr.review_notes, lr.requested_at, lr.reviewed_at
		FROM leave_requests lr
		JOIN users u ON u.id = lr.employee_id
		WHERE u.manager_id = ANY($1)
		ORDER BY lr.requested_at DESC`
	rows, err := r.db.Query(ctx, query, managerIDs)
	if err != nil {
		return nil, fmt.Errorf("list leave requests by managers: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *LeaveRequestRepo) scanAll(rows pgx.Rows) ([]*entity.LeaveRequest, error) {
	var list []*entity.LeaveRequest
	for rows.Next() {
		var lr entity.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.EmployeeName, &lr.StartDate, &lr.EndDate, &lr.Reason,
			&lr.Status, &lr.ReviewedByID, &lr.ReviewedByName, &lr.ReviewNotes, &lr.RequestedAt, &lr.ReviewedAt,
		); err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		list = append(list, &lr)
	}
	return list, rows.Err()
}
