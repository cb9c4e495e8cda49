package giftcard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the query surface the repository needs; pgxmock implements it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository persists gift cards in Postgres.
type Repository struct {
	db DB
}

// NewRepository creates a repository backed by a pgx pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("giftcard: pgx pool required")
	}
	return &Repository{db: pool}
}

// NewRepositoryWithDB allows injecting a mock database for testing.
func NewRepositoryWithDB(db DB) *Repository {
	return &Repository{db: db}
}

const cardColumns = `id, code, amount, recipient_name, sender_name, message, created_at, redeemed_at`

// CreateParams is a gift card purchase.
type CreateParams struct {
	Amount        int    `json:"amount"`
	RecipientName string `json:"recipient_name"`
	SenderName    string `json:"sender_name"`
	Message       string `json:"message"`
}

// Create issues a new card with a fresh code.
func (r *Repository) Create(ctx context.Context, params CreateParams) (*Card, error) {
	if !ValidAmount(params.Amount) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, params.Amount)
	}

	card := Card{
		ID:            uuid.NewString(),
		Code:          NewCode(),
		Amount:        params.Amount,
		RecipientName: params.RecipientName,
		SenderName:    params.SenderName,
		Message:       params.Message,
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO gift_cards (id, code, amount, recipient_name, sender_name, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		card.ID, card.Code, card.Amount, card.RecipientName, card.SenderName, card.Message,
	).Scan(&card.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("giftcard: create: %w", err)
	}
	return &card, nil
}

// GetByCode looks up a card by its code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*Card, error) {
	var c Card
	err := r.db.QueryRow(ctx, `SELECT `+cardColumns+` FROM gift_cards WHERE code = $1`,
		NormalizeCode(code)).
		Scan(&c.ID, &c.Code, &c.Amount, &c.RecipientName, &c.SenderName, &c.Message,
			&c.CreatedAt, &c.RedeemedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("giftcard: get: %w", err)
	}
	return &c, nil
}

// Redeem marks a card spent. The redeemed_at IS NULL guard makes the
// operation idempotent-safe under concurrent redemptions.
func (r *Repository) Redeem(ctx context.Context, code string) (*Card, error) {
	var c Card
	err := r.db.QueryRow(ctx, `
		UPDATE gift_cards SET redeemed_at = now()
		WHERE code = $1 AND redeemed_at IS NULL
		RETURNING `+cardColumns,
		NormalizeCode(code)).
		Scan(&c.ID, &c.Code, &c.Amount, &c.RecipientName, &c.SenderName, &c.Message,
			&c.CreatedAt, &c.RedeemedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish unknown code from already-spent card.
		if _, getErr := r.GetByCode(ctx, code); getErr == nil {
			return nil, ErrAlreadyRedeemed
		}
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("giftcard: redeem: %w", err)
	}
	return &c, nil
}
