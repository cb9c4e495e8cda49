// Package catalog holds the static SAPHIR treatment catalog: bookable
// services, their option groups and per-option surcharges.
package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when no service matches the id
	ErrServiceNotFound = errors.New("service not found")

	// ErrUnknownGroup is returned for an unrecognized option group kind
	ErrUnknownGroup = errors.New("unknown option group")

	// ErrOptionNotFound is returned when an option id does not belong to its group
	ErrOptionNotFound = errors.New("option not found in group")
)

// GroupKind identifies one of the three customization groups every
// service carries.
type GroupKind string

const (
	GroupOil       GroupKind = "huile"
	GroupMusic     GroupKind = "musique"
	GroupIntensity GroupKind = "intensite"
)

// GroupKinds lists the recognized groups in display order.
func GroupKinds() []GroupKind {
	return []GroupKind{GroupOil, GroupMusic, GroupIntensity}
}

// Option is a single selectable choice inside a group. PriceDelta is in
// FCFA and added on top of the service base price when selected.
type Option struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceDelta int    `json:"price_delta"`
}

// OptionGroup is one customization axis of a service. DefaultOptionID is
// explicit so display order can change without moving the default.
type OptionGroup struct {
	Kind            GroupKind `json:"kind"`
	DefaultOptionID string    `json:"default_option_id"`
	Options         []Option  `json:"options"`
}

// Find returns the option with the given id.
func (g OptionGroup) Find(id string) (Option, bool) {
	for _, opt := range g.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Default returns the group's default option.
func (g OptionGroup) Default() Option {
	if opt, ok := g.Find(g.DefaultOptionID); ok {
		return opt
	}
	return g.Options[0]
}

// Service is a bookable spa treatment.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	BasePrice   int    `json:"base_price"`
	Image       string `json:"image"`

	Oils      OptionGroup `json:"oils"`
	Music     OptionGroup `json:"music"`
	Intensity OptionGroup `json:"intensity"`
}

// Group returns the service's option group of the given kind.
func (s *Service) Group(kind GroupKind) (OptionGroup, error) {
	switch kind {
	case GroupOil:
		return s.Oils, nil
	case GroupMusic:
		return s.Music, nil
	case GroupIntensity:
		return s.Intensity, nil
	default:
		return OptionGroup{}, ErrUnknownGroup
	}
}

// FindOption resolves an option id within one of the service's groups.
func (s *Service) FindOption(kind GroupKind, id string) (Option, error) {
	group, err := s.Group(kind)
	if err != nil {
		return Option{}, err
	}
	opt, ok := group.Find(id)
	if !ok {
		return Option{}, ErrOptionNotFound
	}
	return opt, nil
}

// Category is a display grouping of services.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Get returns the service with the given id.
func Get(id string) (*Service, error) {
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, ErrServiceNotFound
}

// List returns services in catalog order, optionally filtered by
// category. The "all" wildcard (or empty string) returns everything.
func List(category string) []Service {
	if category == "" || category == "all" {
		out := make([]Service, len(services))
		copy(out, services)
		return out
	}
	var out []Service
	for _, svc := range services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}

// Categories returns the ordered category tags, starting with the "all"
// wildcard.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
