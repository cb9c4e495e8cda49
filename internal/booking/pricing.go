package booking

import (
	"fmt"

	"github.com/saphirspa/saphir-platform/internal/catalog"
)

// Selections holds the chosen option id for each of the three groups.
type Selections struct {
	Oil       string `json:"oil"`
	Music     string `json:"music"`
	Intensity string `json:"intensity"`
}

// ByGroup returns the selected option id for a group kind.
func (s Selections) ByGroup(kind catalog.GroupKind) string {
	switch kind {
	case catalog.GroupOil:
		return s.Oil
	case catalog.GroupMusic:
		return s.Music
	case catalog.GroupIntensity:
		return s.Intensity
	}
	return ""
}

// DefaultSelections returns each group's default option for a service.
func DefaultSelections(svc *catalog.Service) Selections {
	return Selections{
		Oil:       svc.Oils.Default().ID,
		Music:     svc.Music.Default().ID,
		Intensity: svc.Intensity.Default().ID,
	}
}

// ComputeTotal prices a service with one selected option per group:
// base price plus the three option deltas. An option id that does not
// belong to its group is an error, never a silent zero contribution.
func ComputeTotal(svc *catalog.Service, sel Selections) (int, error) {
	total := svc.BasePrice
	for _, kind := range catalog.GroupKinds() {
		id := sel.ByGroup(kind)
		opt, err := svc.FindOption(kind, id)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q for service %s", ErrInvalidSelection, kind, id, svc.ID)
		}
		total += opt.PriceDelta
	}
	return total, nil
}

// SelectedOptions resolves the three selected options to their catalog
// entries, in group display order.
func SelectedOptions(svc *catalog.Service, sel Selections) ([]catalog.Option, error) {
	out := make([]catalog.Option, 0, 3)
	for _, kind := range catalog.GroupKinds() {
		opt, err := svc.FindOption(kind, sel.ByGroup(kind))
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidSelection, kind, sel.ByGroup(kind))
		}
		out = append(out, opt)
	}
	return out, nil
}
