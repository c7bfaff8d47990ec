package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrOperatorNotFound   = errors.New("operator not found")
)

// Role gates what an operator's collections do: ADMIN collections apply
// immediately, SUPERVISOR collections land on the pending-approval list.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
)

// Operator is a console login.
type Operator struct {
	ID           uuid.UUID
	Username     string
	Name         string
	Role         Role
	HostelID     uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
}

// Claims is the JWT payload carried on every authenticated request.
type Claims struct {
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	HostelID uuid.UUID `json:"hostel_id"`
	jwt.RegisteredClaims
}

type Repository interface {
	FindOperatorByUsername(ctx context.Context, username string) (*Operator, error)
}

type Service struct {
	repo   Repository
	secret []byte
	ttl    time.Duration
}

func NewService(repo Repository, secret string, ttl time.Duration) *Service {
	return &Service{repo: repo, secret: []byte(secret), ttl: ttl}
}

// Login verifies the credentials and issues a session token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, *Operator, error) {
	op, err := s.repo.FindOperatorByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrOperatorNotFound) {
			return "", nil, ErrInvalidCredentials
		}

		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(op)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	return token, op, nil
}

func (s *Service) issueToken(op *Operator) (string, error) {
	now := time.Now()

	claims := Claims{
		Name:     op.Name,
		Role:     op.Role,
		HostelID: op.HostelID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   op.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken parses and validates a bearer token.
func (s *Service) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}
