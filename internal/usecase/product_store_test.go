package usecase

import (
	"errors"
	"testing"

	"rfq_console/internal/domain/entities"
)

func comp(id int64, name string) entities.Product {
	return entities.Product{ID: id, Name: name, Kind: entities.ProductKindNonBOM}
}

func bomp(id int64, name string) entities.Product {
	return entities.Product{ID: id, Name: name, Kind: entities.ProductKindItemizedBOM}
}

func names(ps []entities.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func equalNames(t *testing.T, got []entities.Product, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, g)
		}
	}
}

func TestSubset(t *testing.T) {
	all := []entities.Product{comp(1, "a"), bomp(2, "B"), comp(3, "c"), bomp(4, "D")}
	equalNames(t, Subset(all, false), "a", "c")
	equalNames(t, Subset(all, true), "B", "D")
}

func TestApplyDraft(t *testing.T) {
	subset := []entities.Product{comp(1, "a"), comp(3, "c")}

	t.Run("append", func(t *testing.T) {
		out, err := ApplyDraft(subset, -1, comp(0, "new"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		equalNames(t, out, "a", "c", "new")
		equalNames(t, subset, "a", "c")
	})

	t.Run("replace keeps persisted id", func(t *testing.T) {
		out, err := ApplyDraft(subset, 1, comp(0, "c2"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		equalNames(t, out, "a", "c2")
		if out[1].ID != 3 {
			t.Fatalf("expected id 3 kept, got %d", out[1].ID)
		}
	})

	t.Run("entry moved since the draft was taken", func(t *testing.T) {
		if _, err := ApplyDraft(subset, 0, comp(3, "c2")); !errors.Is(err, ErrStaleProductState) {
			t.Fatalf("expected ErrStaleProductState, got %v", err)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		if _, err := ApplyDraft(subset, 2, comp(0, "x")); !errors.Is(err, ErrStaleProductState) {
			t.Fatalf("expected ErrStaleProductState, got %v", err)
		}
	})
}

func TestMergeSubset_ReplacesOnlyWithinSubset(t *testing.T) {
	all := []entities.Product{comp(1, "a"), bomp(2, "B"), comp(3, "c"), bomp(4, "D")}

	bom, _ := ApplyDraft(Subset(all, true), 1, bomp(0, "D2"))
	merged := MergeSubset(all, true, bom)
	equalNames(t, merged, "a", "B", "c", "D2")
	if merged[3].ID != 4 {
		t.Fatalf("expected id 4 kept, got %d", merged[3].ID)
	}

	comps, _ := ApplyDraft(Subset(all, false), -1, comp(0, "e"))
	merged = MergeSubset(all, false, comps)
	equalNames(t, merged, "a", "B", "c", "D", "e")
}

func TestRemoveAt(t *testing.T) {
	products := []entities.Product{comp(1, "a"), comp(2, "b"), comp(3, "c"), comp(4, "d")}

	out, err := RemoveAt(products, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalNames(t, out, "a", "b", "d")
	equalNames(t, products, "a", "b", "c", "d")

	if _, err := RemoveAt(products, 4); !errors.Is(err, ErrStaleProductState) {
		t.Fatalf("expected ErrStaleProductState, got %v", err)
	}
	if _, err := RemoveAt(products, -1); !errors.Is(err, ErrStaleProductState) {
		t.Fatalf("expected ErrStaleProductState, got %v", err)
	}
}
