package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/dashboard"
	"github.com/hostelhq/hostelhq/internal/resident"
	"github.com/hostelhq/hostelhq/internal/room"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectResidentColumns = `
	r.id, r.name, r.email, r.mobile, r.monthly_fee, r.joining_date, r.next_fee_date,
	r.due_amount, r.status, r.receipt_url, r.room_id, rm.room_number, rm.floor_number,
	r.created_at, r.updated_at, r.deleted_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanResident(s scanner, dest ...any) (*resident.Resident, error) {
	var r resident.Resident

	var (
		email, mobile, receipt  sql.NullString
		statusStr               string
		roomID                  *uuid.UUID
		roomNumber, floorNumber sql.NullString
	)

	cols := []any{
		&r.ID, &r.Name, &email, &mobile, &r.MonthlyFee, &r.JoiningDate, &r.NextFeeDate,
		&r.DueAmount, &statusStr, &receipt, &roomID, &roomNumber, &floorNumber,
		&r.CreatedAt, &r.UpdatedAt, &r.DeletedAt,
	}
	cols = append(cols, dest...)

	if err := s.Scan(cols...); err != nil {
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

func (s *Store) ListResidents(ctx context.Context) ([]*resident.Resident, error) {
	query := `SELECT ` + selectResidentColumns + `
		FROM residents r
		LEFT JOIN rooms rm ON r.room_id = rm.id
		WHERE r.deleted_at IS NULL
		ORDER BY r.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing residents: %w", err)
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

func (s *Store) ListRooms(ctx context.Context) ([]*room.Room, error) {
	query := `
		SELECT id, room_number, floor_number, total_beds, available_beds, status, created_at, updated_at
		FROM rooms
		ORDER BY floor_number ASC, room_number ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*room.Room

	for rows.Next() {
		var r room.Room

		var statusStr string

		if err := rows.Scan(
			&r.ID, &r.RoomNumber, &r.FloorNumber, &r.TotalBeds, &r.AvailableBeds,
			&statusStr, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}

		r.Status = room.Status(statusStr)

		rooms = append(rooms, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room rows: %w", err)
	}

	return rooms, nil
}

func (s *Store) CollectedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'APPROVED' AND approved_at >= $1 AND approved_at < $2
	`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing collections: %w", err)
	}

	return total, nil
}

func (s *Store) ListPendingCollections(ctx context.Context) ([]*dashboard.PendingCollection, error) {
	query := `SELECT ` + selectResidentColumns + `, p.pending_amount
		FROM residents r
		LEFT JOIN rooms rm ON r.room_id = rm.id
		JOIN (
			SELECT resident_id, SUM(amount) AS pending_amount
			FROM payments
			WHERE status = 'PENDING'
			GROUP BY resident_id
		) p ON p.resident_id = r.id
		WHERE r.deleted_at IS NULL
		ORDER BY r.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing pending collections: %w", err)
	}
	defer rows.Close()

	var pending []*dashboard.PendingCollection

	for rows.Next() {
		var amount int64

		r, err := scanResident(rows, &amount)
		if err != nil {
			return nil, fmt.Errorf("scanning pending collection: %w", err)
		}

		pending = append(pending, &dashboard.PendingCollection{Resident: r, PendingAmount: amount})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending rows: %w", err)
	}

	return pending, nil
}
