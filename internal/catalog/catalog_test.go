package catalog

import "testing"

func TestGet(t *testing.T) {
	svc, err := Get("massage-relaxant")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if svc.Name != "Massage Relaxant Or Rose" {
		t.Errorf("Name = %q", svc.Name)
	}
	if svc.BasePrice != 35000 {
		t.Errorf("BasePrice = %d, want 35000", svc.BasePrice)
	}
}

func TestGetNotFound(t *testing.T) {
	if _, err := Get("massage-inconnu"); err != ErrServiceNotFound {
		t.Fatalf("err = %v, want ErrServiceNotFound", err)
	}
}

func TestCategoriesStartWithWildcard(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("len(Categories()) = %d, want 5", len(cats))
	}
	if cats[0].ID != "all" {
		t.Errorf("first category = %q, want all", cats[0].ID)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	if got := len(List("all")); got != 5 {
		t.Errorf("List(all) = %d services, want 5", got)
	}
	if got := len(List("")); got != 5 {
		t.Errorf("List(\"\") = %d services, want 5", got)
	}
	massages := List("massages")
	if len(massages) != 2 {
		t.Fatalf("List(massages) = %d services, want 2", len(massages))
	}
	for _, svc := range massages {
		if svc.Category != "massages" {
			t.Errorf("service %s has category %q", svc.ID, svc.Category)
		}
	}
	if got := List("plongee"); got != nil {
		t.Errorf("List(plongee) = %v, want nil", got)
	}
}

// Every service must carry one group per recognized kind, each with at
// least one option, unique ids, and a default that belongs to the group.
func TestCatalogInvariants(t *testing.T) {
	for _, svc := range List("all") {
		for _, kind := range GroupKinds() {
			group, err := svc.Group(kind)
			if err != nil {
				t.Fatalf("%s: Group(%s): %v", svc.ID, kind, err)
			}
			if group.Kind != kind {
				t.Errorf("%s/%s: group kind mismatch %q", svc.ID, kind, group.Kind)
			}
			if len(group.Options) == 0 {
				t.Fatalf("%s/%s: empty option group", svc.ID, kind)
			}
			seen := map[string]bool{}
			for _, opt := range group.Options {
				if seen[opt.ID] {
					t.Errorf("%s/%s: duplicate option id %q", svc.ID, kind, opt.ID)
				}
				seen[opt.ID] = true
				if opt.PriceDelta < 0 {
					t.Errorf("%s/%s/%s: negative price delta", svc.ID, kind, opt.ID)
				}
			}
			if !seen[group.DefaultOptionID] {
				t.Errorf("%s/%s: default %q not in group", svc.ID, kind, group.DefaultOptionID)
			}
			if group.Default().ID != group.DefaultOptionID {
				t.Errorf("%s/%s: Default() = %q", svc.ID, kind, group.Default().ID)
			}
		}
	}
}

func TestFindOption(t *testing.T) {
	svc, _ := Get("massage-relaxant")

	opt, err := svc.FindOption(GroupOil, "rose")
	if err != nil {
		t.Fatalf("FindOption: %v", err)
	}
	if opt.Name != "Rose de Damas" || opt.PriceDelta != 5000 {
		t.Errorf("option = %+v", opt)
	}

	if _, err := svc.FindOption(GroupOil, "vanille"); err != ErrOptionNotFound {
		t.Errorf("err = %v, want ErrOptionNotFound", err)
	}
	if _, err := svc.FindOption(GroupKind("parfum"), "rose"); err != ErrUnknownGroup {
		t.Errorf("err = %v, want ErrUnknownGroup", err)
	}
}

// List must return copies: mutating the result must not corrupt the catalog.
func TestListReturnsCopy(t *testing.T) {
	first := List("all")
	first[0].Name = "mutated"
	if svc, _ := Get(first[0].ID); svc.Name == "mutated" {
		t.Error("List exposed internal catalog storage")
	}
}
