package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
	l.status, l.approver_id, l.approved_at, l.reject_reason,
	l.created_at, l.updated_at, e.name`

const leaveFrom = `
	FROM attendance_leaves l
	JOIN employees e ON e.id = l.employee_id`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Reason,
		&l.Status, &l.ApproverID, &l.ApprovedAt, &l.RejectReason,
		&l.CreatedAt, &l.UpdatedAt, &l.EmployeeName,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_leaves (id, employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		newLeave.ID,
		newLeave.EmployeeID,
		newLeave.LeaveType,
		newLeave.StartDate,
		newLeave.EndDate,
		newLeave.Reason,
		newLeave.Status,
	).Scan(&newLeave.CreatedAt, &newLeave.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to insert leave request: %w", err)
	}

	return newLeave, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	// the uuid column rejects anything else with 22P02
	if !validator.IsUUID(id) {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveFrom + ` WHERE l.id = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return l, nil
}

// Decide implements leave.LeaveRepository.
func (r *leaveRepository) Decide(ctx context.Context, decided leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_leaves
		SET status = $2, approver_id = $3, approved_at = $4, reject_reason = $5, updated_at = now()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING updated_at`

	err := q.QueryRow(ctx, query,
		decided.ID,
		decided.Status,
		decided.ApproverID,
		decided.ApprovedAt,
		decided.RejectReason,
	).Scan(&decided.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return decided, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", len(args)))
	}

	query := `SELECT ` + leaveColumns + leaveFrom
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY l.created_at DESC, l.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	leaves := []leave.Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave requests: %w", err)
	}

	return leaves, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{
		db: db,
	}
}
