package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	"github.com/EleisonC/Auth-Service/internal/auth/password"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

const uniqueViolationCode = "23505"

// DB is the subset of pgxpool.Pool the store needs; pgxmock satisfies it in
// tests.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UserStore persists user records in the users table.
type UserStore struct {
	db     DB
	hasher *password.Hasher
}

func NewUserStore(db DB, hasher *password.Hasher) *UserStore {
	return &UserStore{db: db, hasher: hasher}
}

// Add hashes the password and inserts the record. The unique index on email
// enforces at-most-one record per identity; a violation maps to
// ErrUserAlreadyExists without touching the existing row.
func (s *UserStore) Add(ctx context.Context, email domain.Email, pw domain.Password, requires2FA bool) error {
	hash, err := s.hasher.Hash(ctx, pw.Reveal())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, email, password_hash, requires_2fa, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.Exec(ctx, query, uuid.NewString(), email.String(), hash, requires2FA, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return autherror.ErrUserAlreadyExists
		}

		return fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	return nil
}

func (s *UserStore) Get(ctx context.Context, email domain.Email) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, requires_2fa, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`
	row := s.db.QueryRow(ctx, query, email.String())

	var (
		user     domain.User
		emailRaw string
	)
	err := row.Scan(&user.ID, &emailRaw, &user.PasswordHash, &user.Requires2FA, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, autherror.ErrUserNotFound
		}

		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	parsed, err := domain.ParseEmail(emailRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt email column", autherror.ErrStoreUnavailable)
	}
	user.Email = parsed

	return &user, nil
}

// Validate fetches the stored hash and compares it against the candidate.
// Neither value is returned or logged.
func (s *UserStore) Validate(ctx context.Context, email domain.Email, pw domain.Password) error {
	user, err := s.Get(ctx, email)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(ctx, pw.Reveal(), user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return autherror.ErrInvalidCredentials
	}

	return nil
}
