package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the query surface the repository needs; pgxmock implements it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository reads the client directory. Writes happen through the
// reservations transaction, never here.
type Repository struct {
	db DB
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("clients: pgx pool required")
	}
	return &Repository{db: pool}
}

// NewRepositoryWithDB allows injecting a mock database for testing.
func NewRepositoryWithDB(db DB) *Repository {
	return &Repository{db: db}
}

const clientColumns = `id, full_name, phone, email, total_reservations, created_at`

// List returns clients ordered by visit count, best clients first.
// search matches name (case insensitive) or phone substring.
func (r *Repository) List(ctx context.Context, search string, limit int) ([]*Client, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	query := `SELECT ` + clientColumns + ` FROM clients`
	args := []any{}
	if search != "" {
		query += ` WHERE full_name ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += fmt.Sprintf(` ORDER BY total_reservations DESC, created_at DESC LIMIT %d`, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("clients: list: %w", err)
	}
	defer rows.Close()

	var out []*Client
	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.TotalReservations, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("clients: scan: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("clients: list rows: %w", err)
	}
	return out, nil
}

// GetByID fetches one client.
func (r *Repository) GetByID(ctx context.Context, id string) (*Client, error) {
	var c Client
	err := r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.TotalReservations, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("clients: get: %w", err)
	}
	return &c, nil
}
