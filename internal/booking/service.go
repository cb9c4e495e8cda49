package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/saphirspa/saphir-platform/internal/availability"
	"github.com/saphirspa/saphir-platform/internal/catalog"
	"github.com/saphirspa/saphir-platform/internal/observability/metrics"
	"github.com/saphirspa/saphir-platform/internal/reservations"
	"github.com/saphirspa/saphir-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("saphir.internal.booking")

// ReservationCreator is the persistence collaborator: one atomic call
// creating the reservation and upserting the client.
type ReservationCreator interface {
	CreateWithClient(ctx context.Context, params reservations.CreateParams) (*reservations.Reservation, error)
}

// ChangePublisher pushes inserts to the back-office change feed.
type ChangePublisher interface {
	ReservationCreated(res *reservations.Reservation)
}

// Notifier tells the owners about a new reservation. Fire-and-forget.
type Notifier interface {
	NotifyNewReservation(ctx context.Context, res *reservations.Reservation)
}

// Service drives the booking flow: draft lifecycle, event dispatch and
// the final submission.
type Service struct {
	store     *Store
	repo      ReservationCreator
	slots     *availability.Provider
	publisher ChangePublisher
	notifier  Notifier
	metrics   *metrics.BookingMetrics
	logger    *logging.Logger
}

// NewService constructs a booking service. publisher, notifier and
// metrics may be nil.
func NewService(store *Store, repo ReservationCreator, slots *availability.Provider,
	publisher ChangePublisher, notifier Notifier, m *metrics.BookingMetrics,
	logger *logging.Logger) *Service {
	if store == nil {
		panic("booking: draft store required")
	}
	if repo == nil {
		panic("booking: reservation creator required")
	}
	if slots == nil {
		slots = availability.New(nil, 0)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		store:     store,
		repo:      repo,
		slots:     slots,
		publisher: publisher,
		notifier:  notifier,
		metrics:   m,
		logger:    logger,
	}
}

// DraftState is a draft plus its derived running total.
type DraftState struct {
	DraftID string `json:"draft_id"`
	Draft   Draft  `json:"draft"`
	Total   int    `json:"total"`
}

func (s *Service) machineFor(serviceID string) (*Machine, error) {
	svc, err := catalog.Get(serviceID)
	if err != nil {
		return nil, err
	}
	return NewMachine(svc, s.slots), nil
}

func (s *Service) state(id string, m *Machine, d Draft) (*DraftState, error) {
	total, err := m.Total(d)
	if err != nil {
		return nil, err
	}
	return &DraftState{DraftID: id, Draft: d, Total: total}, nil
}

// Start opens a new draft for a service.
func (s *Service) Start(ctx context.Context, serviceID string) (*DraftState, error) {
	m, err := s.machineFor(serviceID)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	draft := m.New()
	if err := s.store.Put(ctx, id, draft); err != nil {
		return nil, err
	}
	s.metrics.ObserveDraftStarted()
	s.logger.Info("draft started", "draft_id", id, "service_id", serviceID)
	return s.state(id, m, draft)
}

// Get loads a draft with its running total.
func (s *Service) Get(ctx context.Context, draftID string) (*DraftState, error) {
	draft, err := s.store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	m, err := s.machineFor(draft.ServiceID)
	if err != nil {
		return nil, err
	}
	return s.state(draftID, m, draft)
}

// Apply dispatches one wizard event against a stored draft.
func (s *Service) Apply(ctx context.Context, draftID string, ev Event) (*DraftState, error) {
	draft, err := s.store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	m, err := s.machineFor(draft.ServiceID)
	if err != nil {
		return nil, err
	}
	next, err := m.Apply(draft, ev)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, draftID, next); err != nil {
		return nil, err
	}
	return s.state(draftID, m, next)
}

// Discard drops a draft (modal closed).
func (s *Service) Discard(ctx context.Context, draftID string) error {
	return s.store.Delete(ctx, draftID)
}

// SubmitResult is a successful submission: the stored reservation plus
// the WhatsApp handoff text.
type SubmitResult struct {
	Reservation *reservations.Reservation `json:"reservation"`
	Message     string                    `json:"message"`
}

// Submit validates and persists a draft. On persistence failure the
// draft is left intact so the client can retry; on success it is
// deleted and the change feed and owners are notified.
func (s *Service) Submit(ctx context.Context, draftID string) (*SubmitResult, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.submit")
	defer span.End()
	span.SetAttributes(attribute.String("saphir.draft_id", draftID))

	draft, err := s.store.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	m, err := s.machineFor(draft.ServiceID)
	if err != nil {
		return nil, err
	}

	payload, err := m.Payload(draft)
	if err != nil {
		return nil, err
	}
	message, err := m.HumanMessage(draft)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := s.repo.CreateWithClient(ctx, reservations.CreateParams{
		FullName:    payload.FullName,
		Phone:       payload.Phone,
		Email:       payload.Email,
		BookingDate: payload.BookingDate,
		BookingTime: payload.BookingTime,
		ServiceName: payload.ServiceName,
		TotalPrice:  payload.TotalPrice,
	})
	elapsed := time.Since(start).Seconds()
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveSubmission("error", elapsed)
		s.logger.Error("reservation submission failed", "error", err, "draft_id", draftID)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	s.metrics.ObserveSubmission("success", elapsed)

	if err := s.store.Delete(ctx, draftID); err != nil {
		s.logger.Warn("failed to delete submitted draft", "error", err, "draft_id", draftID)
	}
	if s.publisher != nil {
		s.publisher.ReservationCreated(res)
	}
	if s.notifier != nil {
		s.notifier.NotifyNewReservation(ctx, res)
	}

	s.logger.Info("reservation created",
		"reservation_id", res.ID,
		"service", res.ServiceName,
		"date", payload.BookingDate,
		"time", payload.BookingTime,
		"total", res.TotalPrice,
	)
	return &SubmitResult{Reservation: res, Message: message}, nil
}
