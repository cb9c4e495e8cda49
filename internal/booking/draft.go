package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/saphirspa/saphir-platform/internal/availability"
	"github.com/saphirspa/saphir-platform/internal/catalog"
)

// Step is the wizard stage gating which fields are editable.
type Step int

const (
	StepCustomize Step = iota + 1 // pick options
	StepSchedule                  // pick date and time
	StepContact                   // contact details and recap
)

// Draft is the in-progress booking for one session. It is a plain value:
// all transitions go through Machine.Apply, which returns a new Draft.
type Draft struct {
	ServiceID  string     `json:"service_id"`
	Step       Step       `json:"step"`
	Selections Selections `json:"selections"`
	Date       *time.Time `json:"date,omitempty"`
	Slot       string     `json:"time,omitempty"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
}

// ContactField names a mutable contact field.
type ContactField string

const (
	FieldName  ContactField = "name"
	FieldPhone ContactField = "phone"
	FieldEmail ContactField = "email"
)

// Event is a wizard transition input.
type Event interface{ eventName() string }

// SelectOption picks an option inside a group.
type SelectOption struct {
	Group    catalog.GroupKind `json:"group"`
	OptionID string            `json:"option_id"`
}

// SelectDate picks the booking date.
type SelectDate struct {
	Date time.Time `json:"date"`
}

// SelectTime picks a daily time slot.
type SelectTime struct {
	Slot string `json:"time"`
}

// SetContact updates one contact field.
type SetContact struct {
	Field ContactField `json:"field"`
	Value string       `json:"value"`
}

// Advance moves to the next step ("Continuer").
type Advance struct{}

// Retreat moves back one step, unconditionally.
type Retreat struct{}

// Reset discards the draft back to its initial state.
type Reset struct{}

func (SelectOption) eventName() string { return "select_option" }
func (SelectDate) eventName() string   { return "select_date" }
func (SelectTime) eventName() string   { return "select_time" }
func (SetContact) eventName() string   { return "set_contact" }
func (Advance) eventName() string      { return "advance" }
func (Retreat) eventName() string      { return "retreat" }
func (Reset) eventName() string        { return "reset" }

// Machine applies events to drafts for one service. Transitions are
// pure: the machine holds only the catalog service and the slot list.
type Machine struct {
	svc   *catalog.Service
	slots *availability.Provider
}

// NewMachine builds a machine for a service.
func NewMachine(svc *catalog.Service, slots *availability.Provider) *Machine {
	if slots == nil {
		slots = availability.New(nil, 0)
	}
	return &Machine{svc: svc, slots: slots}
}

// Service returns the machine's catalog service.
func (m *Machine) Service() *catalog.Service { return m.svc }

// New returns the initial draft: step 1, each group at its default.
func (m *Machine) New() Draft {
	return Draft{
		ServiceID:  m.svc.ID,
		Step:       StepCustomize,
		Selections: DefaultSelections(m.svc),
	}
}

// Apply dispatches one event and returns the resulting draft. The input
// draft is returned unchanged when the event is rejected.
func (m *Machine) Apply(d Draft, ev Event) (Draft, error) {
	switch e := ev.(type) {
	case SelectOption:
		if _, err := m.svc.FindOption(e.Group, e.OptionID); err != nil {
			return d, fmt.Errorf("%w: %s %q", ErrInvalidSelection, e.Group, e.OptionID)
		}
		switch e.Group {
		case catalog.GroupOil:
			d.Selections.Oil = e.OptionID
		case catalog.GroupMusic:
			d.Selections.Music = e.OptionID
		case catalog.GroupIntensity:
			d.Selections.Intensity = e.OptionID
		}
		return d, nil

	case SelectDate:
		day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		d.Date = &day
		return d, nil

	case SelectTime:
		if !m.slots.ValidSlot(e.Slot) {
			return d, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, e.Slot)
		}
		d.Slot = e.Slot
		return d, nil

	case SetContact:
		switch e.Field {
		case FieldName:
			d.Name = e.Value
		case FieldPhone:
			d.Phone = e.Value
		case FieldEmail:
			d.Email = e.Value
		default:
			return d, fmt.Errorf("%w: contact field %q", ErrUnknownEvent, e.Field)
		}
		return d, nil

	case Advance:
		if d.Step == StepSchedule && (d.Date == nil || d.Slot == "") {
			return d, fmt.Errorf("%w: date and time", ErrMissingRequiredField)
		}
		if d.Step < StepContact {
			d.Step++
		}
		return d, nil

	case Retreat:
		if d.Step > StepCustomize {
			d.Step--
		}
		return d, nil

	case Reset:
		return m.New(), nil

	default:
		return d, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
}

// Total prices the draft's current selections.
func (m *Machine) Total(d Draft) (int, error) {
	return ComputeTotal(m.svc, d.Selections)
}

// ValidateForSubmission enforces the submission gate: date, name and
// phone are required; email is optional.
func (m *Machine) ValidateForSubmission(d Draft) error {
	if d.Date == nil {
		return fmt.Errorf("%w: date", ErrMissingRequiredField)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	if strings.TrimSpace(d.Phone) == "" {
		return fmt.Errorf("%w: phone", ErrMissingRequiredField)
	}
	return nil
}
