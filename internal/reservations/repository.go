package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock
// implements it for tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository stores reservations and their clients in Postgres.
type Repository struct {
	db DB
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("reservations: pgx pool required")
	}
	return &Repository{db: pool}
}

// NewRepositoryWithDB allows injecting a mock database for testing.
func NewRepositoryWithDB(db DB) *Repository {
	return &Repository{db: db}
}

// CreateWithClient inserts a reservation and upserts its client in one
// transaction: the atomic remote procedure the booking flow calls.
// The client is keyed by phone; repeat bookings bump total_reservations.
func (r *Repository) CreateWithClient(ctx context.Context, params CreateParams) (*Reservation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("reservations: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var clientID string
	upsertClient := `
		INSERT INTO clients (id, full_name, phone, email, total_reservations)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (phone) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = COALESCE(NULLIF(EXCLUDED.email, ''), clients.email),
			total_reservations = clients.total_reservations + 1
		RETURNING id
	`
	if err := tx.QueryRow(ctx, upsertClient,
		uuid.New().String(),
		params.FullName,
		params.Phone,
		params.Email,
	).Scan(&clientID); err != nil {
		return nil, fmt.Errorf("reservations: upsert client: %w", err)
	}

	id := uuid.New().String()
	insertReservation := `
		INSERT INTO reservations
			(id, client_id, client_name, client_phone, client_email,
			 service_name, booking_date, booking_time, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := tx.QueryRow(ctx, insertReservation,
		id,
		clientID,
		params.FullName,
		params.Phone,
		params.Email,
		params.ServiceName,
		params.BookingDate,
		params.BookingTime,
		params.TotalPrice,
		StatusPending,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("reservations: insert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("reservations: commit: %w", err)
	}

	bookingDate, _ := time.Parse("2006-01-02", params.BookingDate)
	return &Reservation{
		ID:          id,
		ClientID:    clientID,
		ClientName:  params.FullName,
		ClientPhone: params.Phone,
		ClientEmail: params.Email,
		ServiceName: params.ServiceName,
		BookingDate: bookingDate,
		BookingTime: params.BookingTime,
		TotalPrice:  params.TotalPrice,
		Status:      StatusPending,
		CreatedAt:   createdAt,
	}, nil
}

// ListFilter narrows List results. Search matches client name (case
// insensitive) or phone substring.
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

const listColumns = `
	r.id, r.client_id, r.client_name, r.client_phone, r.client_email,
	r.service_name, r.booking_date, r.booking_time, r.total_price,
	r.status, r.created_at, c.total_reservations
`

// List returns reservations joined with client visit totals, ordered by
// booking date ascending (the back-office default).
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]*Reservation, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	query := `
		SELECT ` + listColumns + `
		FROM reservations r
		JOIN clients c ON c.id = r.client_id
	`
	args := []any{}
	if filter.Search != "" {
		query += ` WHERE r.client_name ILIKE '%' || $1 || '%' OR r.client_phone LIKE '%' || $1 || '%'`
		args = append(args, filter.Search)
	}
	query += fmt.Sprintf(` ORDER BY r.booking_date ASC, r.booking_time ASC LIMIT %d OFFSET %d`,
		filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reservations: list: %w", err)
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reservations: list rows: %w", err)
	}
	return out, nil
}

// GetByID fetches one reservation with its client visit total.
func (r *Repository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := `
		SELECT ` + listColumns + `
		FROM reservations r
		JOIN clients c ON c.id = r.client_id
		WHERE r.id = $1
	`
	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reservations: get: %w", err)
	}
	return res, nil
}

// UpdateStatus moves a reservation through the back-office workflow.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	tag, err := r.db.Exec(ctx, `UPDATE reservations SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("reservations: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var res Reservation
	if err := row.Scan(
		&res.ID,
		&res.ClientID,
		&res.ClientName,
		&res.ClientPhone,
		&res.ClientEmail,
		&res.ServiceName,
		&res.BookingDate,
		&res.BookingTime,
		&res.TotalPrice,
		&res.Status,
		&res.CreatedAt,
		&res.ClientTotalReservations,
	); err != nil {
		return nil, err
	}
	return &res, nil
}
