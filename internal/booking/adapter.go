package booking

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// PersistencePayload is the record handed to the reservations store,
// one atomic create-reservation-with-client call.
type PersistencePayload struct {
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BookingDate string `json:"booking_date"` // yyyy-mm-dd
	BookingTime string `json:"booking_time"`
	ServiceName string `json:"service_name"`
	TotalPrice  int    `json:"total_price"`
}

// countryPrefixes are the literal Côte d'Ivoire prefixes stripped from
// submitted phone numbers, longest variants first.
var countryPrefixes = []string{"+225", "00225", "225"}

// NormalizePhone strips all whitespace and at most one leading country
// prefix: "+225 01 43 25 06 53" becomes "0143250653".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	for _, prefix := range countryPrefixes {
		if strings.HasPrefix(out, prefix) {
			return strings.TrimPrefix(out, prefix)
		}
	}
	return out
}

// Payload serializes a submittable draft for the persistence layer.
// The draft must already pass ValidateForSubmission.
func (m *Machine) Payload(d Draft) (PersistencePayload, error) {
	if err := m.ValidateForSubmission(d); err != nil {
		return PersistencePayload{}, err
	}
	total, err := m.Total(d)
	if err != nil {
		return PersistencePayload{}, err
	}
	return PersistencePayload{
		FullName:    d.Name,
		Phone:       NormalizePhone(d.Phone),
		Email:       d.Email,
		BookingDate: d.Date.Format("2006-01-02"),
		BookingTime: d.Slot,
		ServiceName: m.svc.Name,
		TotalPrice:  total,
	}, nil
}

// HumanMessage renders the reservation as the WhatsApp handoff text.
func (m *Machine) HumanMessage(d Draft) (string, error) {
	if err := m.ValidateForSubmission(d); err != nil {
		return "", err
	}
	total, err := m.Total(d)
	if err != nil {
		return "", err
	}
	opts, err := SelectedOptions(m.svc, d.Selections)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✨ NOUVELLE RÉSERVATION SAPHIR ✨\n\n")
	fmt.Fprintf(&b, "📋 Prestation : %s\n", m.svc.Name)
	fmt.Fprintf(&b, "📅 Date : %s à %s\n\n", FormatDateFR(*d.Date), d.Slot)
	b.WriteString("🌿 Options :\n")
	for _, opt := range opts {
		fmt.Fprintf(&b, "• %s\n", opt.Name)
	}
	fmt.Fprintf(&b, "\n👤 Client : %s\n", d.Name)
	fmt.Fprintf(&b, "💎 Total : %s FCFA", FormatPrice(total))
	return b.String(), nil
}

var frWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDateFR renders a date the way the booking message shows it:
// "jeudi 4 septembre 2025".
func FormatDateFR(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d",
		frWeekdays[t.Weekday()], t.Day(), frMonths[t.Month()-1], t.Year())
}

// FormatPrice groups thousands with non-breaking spaces, fr-FR style:
// 150000 becomes "150 000".
func FormatPrice(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	neg := false
	if strings.HasPrefix(digits, "-") {
		neg = true
		digits = digits[1:]
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	out := strings.Join(groups, " ")
	if neg {
		out = "-" + out
	}
	return out
}
