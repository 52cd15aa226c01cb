package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrAdminNotFound = errors.New("admin not found")

var _ adminStore = (*Repo)(nil)

type adminStore interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	return r.get(ctx, `SELECT id, email, password_hash, created_at FROM admin WHERE email = $1;`, email)
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Admin, error) {
	return r.get(ctx, `SELECT id, email, password_hash, created_at FROM admin WHERE id = $1;`, id)
}

func (r *Repo) get(ctx context.Context, query, arg string) (*Admin, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrAdminNotFound
	}

	var admin Admin
	if err := rows.Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &admin, nil
}

// Add enrolls a new administrator. Used by the admin tool only.
func (r *Repo) Add(ctx context.Context, admin *Admin) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO admin (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4);`,
		admin.ID, admin.Email, admin.PasswordHash, admin.CreatedAt,
	)
	return err
}
