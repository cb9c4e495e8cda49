package giftcard

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidAmount is returned when the amount is not one of the
	// offered denominations.
	ErrInvalidAmount = errors.New("invalid gift card amount")

	// ErrCardNotFound is returned when no card matches the code.
	ErrCardNotFound = errors.New("gift card not found")

	// ErrAlreadyRedeemed is returned when redeeming a spent card.
	ErrAlreadyRedeemed = errors.New("gift card already redeemed")
)

// Amounts are the offered denominations, in FCFA.
var Amounts = []int{25000, 50000, 75000, 100000, 150000}

// ValidAmount reports whether amount is an offered denomination.
func ValidAmount(amount int) bool {
	for _, a := range Amounts {
		if a == amount {
			return true
		}
	}
	return false
}

// Card is a purchased gift card.
type Card struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	Amount        int        `json:"amount"`
	RecipientName string     `json:"recipient_name"`
	SenderName    string     `json:"sender_name"`
	Message       string     `json:"message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	RedeemedAt    *time.Time `json:"redeemed_at,omitempty"`
}

// codeAlphabet omits ambiguous characters (0/O, 1/I).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewCode generates a card code like "SAPHIR-K4Q7-X2MN".
func NewCode() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("giftcard: rand: %v", err))
	}
	chars := make([]byte, 8)
	for i, b := range buf {
		chars[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return fmt.Sprintf("SAPHIR-%s-%s", chars[:4], chars[4:])
}

// NormalizeCode uppercases and trims a user-typed code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
