package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saphirspa/saphir-platform/internal/reservations"
)

type recordingSender struct {
	sent []EmailMessage
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg EmailMessage) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func testReservation() *reservations.Reservation {
	return &reservations.Reservation{
		ID:          "res-1",
		ClientName:  "Awa Koné",
		ClientPhone: "0143250653",
		ServiceName: "Massage Relaxant",
		BookingDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		BookingTime: "14:00",
		TotalPrice:  40000,
		Status:      reservations.StatusPending,
	}
}

func TestNotifyNewReservation(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, []string{"owner@saphir.ci", "spa@saphir.ci"}, nil)

	svc.NotifyNewReservation(context.Background(), testReservation())

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "owner@saphir.ci", sender.sent[0].To)
	assert.Equal(t, "Nouvelle réservation — Massage Relaxant", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].Body, "vendredi 4 septembre 2026")
	assert.Contains(t, sender.sent[0].Body, "Awa Koné")
	assert.Contains(t, sender.sent[0].Body, "FCFA")
}

func TestNotifySkipsWhenDisabled(t *testing.T) {
	// nil sender: configured off.
	svc := NewService(nil, []string{"owner@saphir.ci"}, nil)
	svc.NotifyNewReservation(context.Background(), testReservation())

	// No recipients: nothing to do either.
	sender := &recordingSender{}
	svc = NewService(sender, nil, nil)
	svc.NotifyNewReservation(context.Background(), testReservation())
	assert.Empty(t, sender.sent)
}

func TestNotifyContinuesAfterSendError(t *testing.T) {
	sender := &recordingSender{err: assert.AnError}
	svc := NewService(sender, []string{"a@saphir.ci", "b@saphir.ci"}, nil)

	// Errors are logged, not returned; every recipient is attempted.
	svc.NotifyNewReservation(context.Background(), testReservation())
	assert.Len(t, sender.sent, 2)
}
