package param

import "testing"

func newTestRegistry() *Registry {
	r := NewRegistry()
	r.Add(
		New(0, "Delay Time").Range(0, 2000).Unit("ms").Build(),
		New(1, "Feedback").Range(0, 100).Unit("%").Build(),
		New(2, "Dry/Wet").Range(0, 100).Unit("%").Build(),
	)
	return r
}

func TestRegistryIndexedAccess(t *testing.T) {
	r := newTestRegistry()

	if r.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", r.Count())
	}

	names := []string{"Delay Time", "Feedback", "Dry/Wet"}
	for i, want := range names {
		p := r.GetByIndex(int32(i))
		if p == nil {
			t.Fatalf("GetByIndex(%d) = nil", i)
		}
		if p.Name != want {
			t.Errorf("GetByIndex(%d).Name = %q, want %q", i, p.Name, want)
		}
	}
}

func TestRegistryOutOfRange(t *testing.T) {
	r := newTestRegistry()

	for _, index := range []int32{-1, 3, 100} {
		if p := r.GetByIndex(index); p != nil {
			t.Errorf("GetByIndex(%d) = %v, want nil", index, p)
		}
	}
}

func TestRegistryDuplicateID(t *testing.T) {
	r := newTestRegistry()
	r.Add(New(1, "Feedback Again").Build())

	if r.Count() != 3 {
		t.Errorf("Count() = %d after duplicate Add, want 3", r.Count())
	}
	if got := r.Get(1).Name; got != "Feedback" {
		t.Errorf("Get(1).Name = %q, want original \"Feedback\"", got)
	}
}

func TestRegistryAll(t *testing.T) {
	r := newTestRegistry()

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d parameters, want 3", len(all))
	}
	for i, p := range all {
		if p.ID != uint32(i) {
			t.Errorf("All()[%d].ID = %d, want %d", i, p.ID, i)
		}
	}
}
