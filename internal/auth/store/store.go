package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hostelhq/hostelhq/internal/auth"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindOperatorByUsername(ctx context.Context, username string) (*auth.Operator, error) {
	query := `
		SELECT id, username, name, role, hostel_id, password_hash, created_at
		FROM operators
		WHERE username = $1
	`

	var op auth.Operator

	var roleStr string

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&op.ID, &op.Username, &op.Name, &roleStr, &op.HostelID, &op.PasswordHash, &op.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrOperatorNotFound
		}

		return nil, fmt.Errorf("finding operator: %w", err)
	}

	op.Role = auth.Role(roleStr)

	return &op, nil
}

func (s *Store) CreateOperator(ctx context.Context, op *auth.Operator) error {
	query := `
		INSERT INTO operators (username, name, role, hostel_id, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		op.Username,
		op.Name,
		op.Role,
		op.HostelID,
		op.PasswordHash,
	).Scan(&op.ID, &op.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating operator: %w", err)
	}

	return nil
}
