package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hostelhq/hostelhq/internal/room"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectRoomColumns = `
	id, room_number, floor_number, total_beds, available_beds, status, created_at, updated_at
`

func scanRoom(s scanner) (*room.Room, error) {
	var r room.Room

	var statusStr string

	if err := s.Scan(
		&r.ID, &r.RoomNumber, &r.FloorNumber, &r.TotalBeds, &r.AvailableBeds,
		&statusStr, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.Status = room.Status(statusStr)

	return &r, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (s *Store) CreateRoom(ctx context.Context, r *room.Room) error {
	query := `
		INSERT INTO rooms (room_number, floor_number, total_beds, available_beds, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.RoomNumber,
		r.FloorNumber,
		r.TotalBeds,
		r.AvailableBeds,
		r.Status,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return room.ErrDuplicate
		}

		return fmt.Errorf("creating room: %w", err)
	}

	return nil
}

func (s *Store) GetRoom(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	query := `SELECT ` + selectRoomColumns + ` FROM rooms WHERE id = $1`

	r, err := scanRoom(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, room.ErrNotFound
		}

		return nil, fmt.Errorf("getting room: %w", err)
	}

	return r, nil
}

func (s *Store) SearchRooms(ctx context.Context, filter room.SearchFilter) ([]*room.Room, error) {
	query := `SELECT ` + selectRoomColumns + ` FROM rooms`

	var args []any

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += ` WHERE room_number ILIKE $1 OR floor_number ILIKE $1`
	}

	query += " ORDER BY floor_number ASC, room_number ASC"

	if filter.Paging {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.PageCount, filter.PageIndex*filter.PageCount)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*room.Room

	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}

		rooms = append(rooms, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room rows: %w", err)
	}

	return rooms, nil
}

// UpdateRoom recomputes available beds from the live occupancy count so the
// occupancy invariant survives a change to total beds.
func (s *Store) UpdateRoom(ctx context.Context, r *room.Room) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	occupied, err := occupancy(ctx, tx, r.ID)
	if err != nil {
		return err
	}

	if r.TotalBeds < occupied {
		return room.ErrOccupied
	}

	r.AvailableBeds = r.TotalBeds - occupied

	query := `
		UPDATE rooms
		SET room_number = $1, floor_number = $2, total_beds = $3, available_beds = $4, status = $5, updated_at = NOW()
		WHERE id = $6
	`

	res, err := tx.ExecContext(ctx, query,
		r.RoomNumber,
		r.FloorNumber,
		r.TotalBeds,
		r.AvailableBeds,
		r.Status,
		r.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return room.ErrDuplicate
		}

		return fmt.Errorf("updating room: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating room: %w", err)
	}

	if affected == 0 {
		return room.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// DeleteRoom refuses while residents are still assigned.
func (s *Store) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	occupied, err := occupancy(ctx, tx, id)
	if err != nil {
		return err
	}

	if occupied > 0 {
		return room.ErrOccupied
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}

	if affected == 0 {
		return room.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func occupancy(ctx context.Context, tx *sql.Tx, roomID uuid.UUID) (int, error) {
	var occupied int

	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM residents WHERE room_id = $1 AND deleted_at IS NULL`,
		roomID,
	).Scan(&occupied)
	if err != nil {
		return 0, fmt.Errorf("counting occupancy: %w", err)
	}

	return occupied, nil
}
