package notify

import (
	"context"
	"fmt"

	"github.com/saphirspa/saphir-platform/internal/booking"
	"github.com/saphirspa/saphir-platform/internal/reservations"
	"github.com/saphirspa/saphir-platform/pkg/logging"
)

// Service emails the spa owners when a reservation lands. Failures are
// logged, never surfaced to the booking client.
type Service struct {
	email      EmailSender
	recipients []string
	logger     *logging.Logger
}

// NewService creates a notification service. email may be nil to
// disable sending entirely.
func NewService(email EmailSender, recipients []string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{email: email, recipients: recipients, logger: logger}
}

// NotifyNewReservation sends the owner notification for a new booking.
func (s *Service) NotifyNewReservation(ctx context.Context, res *reservations.Reservation) {
	if s.email == nil || len(s.recipients) == 0 {
		s.logger.Debug("notify: email disabled, skipping reservation notification")
		return
	}

	subject := fmt.Sprintf("Nouvelle réservation — %s", res.ServiceName)
	body := fmt.Sprintf(
		"Nouvelle réservation reçue.\n\n"+
			"Prestation : %s\n"+
			"Date : %s à %s\n"+
			"Client : %s (%s)\n"+
			"Total : %s FCFA\n",
		res.ServiceName,
		booking.FormatDateFR(res.BookingDate),
		res.BookingTime,
		res.ClientName,
		res.ClientPhone,
		booking.FormatPrice(res.TotalPrice),
	)

	for _, to := range s.recipients {
		if err := s.email.Send(ctx, EmailMessage{To: to, Subject: subject, Body: body}); err != nil {
			s.logger.Error("notify: reservation email failed", "error", err, "to", to)
		}
	}
}
