package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/payment"
	"github.com/hostelhq/hostelhq/internal/resident"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectResidentColumns = `
	r.id, r.name, r.email, r.mobile, r.monthly_fee, r.joining_date, r.next_fee_date,
	r.due_amount, r.status, r.receipt_url, r.room_id, rm.room_number, rm.floor_number,
	r.created_at, r.updated_at, r.deleted_at
`

// scanResident reads a resident row in selectResidentColumns order.
func scanResident(s scanner) (*resident.Resident, error) {
	var r resident.Resident

	var (
		email, mobile, receipt  sql.NullString
		statusStr               string
		roomID                  *uuid.UUID
		roomNumber, floorNumber sql.NullString
	)

	if err := s.Scan(
		&r.ID, &r.Name, &email, &mobile, &r.MonthlyFee, &r.JoiningDate, &r.NextFeeDate,
		&r.DueAmount, &statusStr, &receipt, &roomID, &roomNumber, &floorNumber,
		&r.CreatedAt, &r.UpdatedAt, &r.DeletedAt,
	); err != nil {
		return nil, err
	}

	r.Email = email.String
	r.Mobile = mobile.String
	r.ReceiptURL = receipt.String
	r.Status = resident.Status(statusStr)

	if roomID != nil {
		r.Room = &resident.RoomRef{
			ID:          *roomID,
			RoomNumber:  roomNumber.String,
			FloorNumber: floorNumber.String,
		}
	}

	return &r, nil
}

// claimBed decrements the room's available beds, refusing when the room is
// full or inactive. Fills the room ref's display fields on the way out.
func claimBed(ctx context.Context, tx *sql.Tx, ref *resident.RoomRef) error {
	query := `
		UPDATE rooms
		SET available_beds = available_beds - 1, updated_at = NOW()
		WHERE id = $1 AND status = 'Active' AND available_beds > 0
		RETURNING room_number, floor_number
	`

	err := tx.QueryRowContext(ctx, query, ref.ID).Scan(&ref.RoomNumber, &ref.FloorNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resident.ErrRoomFull
		}

		return fmt.Errorf("claiming bed: %w", err)
	}

	return nil
}

func freeBed(ctx context.Context, tx *sql.Tx, roomID uuid.UUID) error {
	query := `
		UPDATE rooms
		SET available_beds = available_beds + 1, updated_at = NOW()
		WHERE id = $1 AND available_beds < total_beds
	`

	if _, err := tx.ExecContext(ctx, query, roomID); err != nil {
		return fmt.Errorf("freeing bed: %w", err)
	}

	return nil
}

func insertPayment(ctx context.Context, tx *sql.Tx, pay *payment.Payment) error {
	query := `
		INSERT INTO payments (resident_id, amount, type, status, receipt_url, created_at, approved_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NOW(), CASE WHEN $4 = 'APPROVED' THEN NOW() END)
		RETURNING id, created_at
	`

	err := tx.QueryRowContext(ctx, query,
		pay.ResidentID,
		pay.Amount,
		pay.Type,
		pay.Status,
		pay.ReceiptURL,
	).Scan(&pay.ID, &pay.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}

	return nil
}

func (s *Store) CreateResident(ctx context.Context, r *resident.Resident, initial *payment.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if r.Room != nil {
		if err := claimBed(ctx, tx, r.Room); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO residents (name, email, mobile, monthly_fee, joining_date, next_fee_date, due_amount, status, receipt_url, room_id, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, NULLIF($9, ''), $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	var roomID *uuid.UUID
	if r.Room != nil {
		roomID = &r.Room.ID
	}

	err = tx.QueryRowContext(ctx, query,
		r.Name,
		r.Email,
		r.Mobile,
		r.MonthlyFee,
		r.JoiningDate,
		r.NextFeeDate,
		r.DueAmount,
		r.Status,
		r.ReceiptURL,
		roomID,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating resident: %w", err)
	}

	if initial != nil {
		initial.ResidentID = r.ID
		if err := insertPayment(ctx, tx, initial); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetResident(ctx context.Context, id uuid.UUID) (*resident.Resident, error) {
	query := `SELECT ` + selectResidentColumns + `
		FROM residents r
		LEFT JOIN rooms rm ON r.room_id = rm.id
		WHERE r.id = $1 AND r.deleted_at IS NULL`

	r, err := scanResident(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resident.ErrNotFound
		}

		return nil, fmt.Errorf("getting resident: %w", err)
	}

	return r, nil
}

func (s *Store) SearchResidents(ctx context.Context, filter resident.SearchFilter) ([]*resident.Resident, error) {
	query := `SELECT ` + selectResidentColumns + `
		FROM residents r
		LEFT JOIN rooms rm ON r.room_id = rm.id
		WHERE r.deleted_at IS NULL`

	var args []any

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += ` AND (r.name ILIKE $1 OR r.mobile ILIKE $1 OR rm.room_number ILIKE $1)`
	}

	query += " ORDER BY r.created_at DESC"

	if filter.Paging {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.PageCount, filter.PageIndex*filter.PageCount)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching residents: %w", err)
	}
	defer rows.Close()

	var residents []*resident.Resident

	for rows.Next() {
		r, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning resident: %w", err)
		}

		residents = append(residents, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resident rows: %w", err)
	}

	return residents, nil
}

func (s *Store) UpdateResident(ctx context.Context, r *resident.Resident, oldRoomID, newRoomID *uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if oldRoomID != nil {
		if err := freeBed(ctx, tx, *oldRoomID); err != nil {
			return err
		}
	}

	if newRoomID != nil {
		if err := claimBed(ctx, tx, r.Room); err != nil {
			return err
		}
	}

	query := `
		UPDATE residents
		SET name = $1, email = NULLIF($2, ''), mobile = NULLIF($3, ''), monthly_fee = $4,
			joining_date = $5, status = $6, receipt_url = NULLIF($7, ''), room_id = $8, updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`

	var roomID *uuid.UUID
	if r.Room != nil {
		roomID = &r.Room.ID
	}

	res, err := tx.ExecContext(ctx, query,
		r.Name,
		r.Email,
		r.Mobile,
		r.MonthlyFee,
		r.JoiningDate,
		r.Status,
		r.ReceiptURL,
		roomID,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating resident: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating resident: %w", err)
	}

	if affected == 0 {
		return resident.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// DeleteResident soft-deletes the row and frees the resident's bed in the
// same transaction.
func (s *Store) DeleteResident(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE rooms
		SET available_beds = available_beds + 1, updated_at = NOW()
		WHERE id = (SELECT room_id FROM residents WHERE id = $1 AND deleted_at IS NULL)
			AND available_beds < total_beds
	`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("freeing bed: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE residents
		SET deleted_at = NOW(), room_id = NULL
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("deleting resident: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting resident: %w", err)
	}

	if affected == 0 {
		return resident.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ApplyCollection(ctx context.Context, r *resident.Resident, pay *payment.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateBilling(ctx, tx, r); err != nil {
		return err
	}

	if err := insertPayment(ctx, tx, pay); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) RecordPayment(ctx context.Context, pay *payment.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertPayment(ctx, tx, pay); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) PendingPayments(ctx context.Context, residentID uuid.UUID) ([]*payment.Payment, error) {
	query := `
		SELECT id, resident_id, amount, type, status, COALESCE(receipt_url, ''), created_at, approved_at
		FROM payments
		WHERE resident_id = $1 AND status = 'PENDING'
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("listing pending payments: %w", err)
	}
	defer rows.Close()

	var payments []*payment.Payment

	for rows.Next() {
		var p payment.Payment

		var typeStr, statusStr string

		if err := rows.Scan(&p.ID, &p.ResidentID, &p.Amount, &typeStr, &statusStr, &p.ReceiptURL, &p.CreatedAt, &p.ApprovedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		p.Type = payment.Type(typeStr)
		p.Status = payment.Status(statusStr)

		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}

// ApplyApproval flips the payments to APPROVED and writes the resident's
// new billing state. The conditional status flip makes approval safe to
// race: the loser matches zero rows and nothing is double-applied.
func (s *Store) ApplyApproval(ctx context.Context, r *resident.Resident, paymentIDs []uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE payments
		SET status = 'APPROVED', approved_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	for _, payID := range paymentIDs {
		res, err := tx.ExecContext(ctx, query, payID)
		if err != nil {
			return fmt.Errorf("approving payment: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("approving payment: %w", err)
		}

		if affected == 0 {
			return resident.ErrAlreadyApproved
		}
	}

	if err := updateBilling(ctx, tx, r); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func updateBilling(ctx context.Context, tx *sql.Tx, r *resident.Resident) error {
	query := `
		UPDATE residents
		SET due_amount = $1, next_fee_date = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	if _, err := tx.ExecContext(ctx, query, r.DueAmount, r.NextFeeDate, r.ID); err != nil {
		return fmt.Errorf("updating billing state: %w", err)
	}

	return nil
}
