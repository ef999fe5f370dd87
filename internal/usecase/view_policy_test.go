package usecase

import (
	"reflect"
	"testing"

	"rfq_console/internal/domain/entities"
)

func hasColumn(cols []entities.Column, c entities.Column) bool {
	for _, x := range cols {
		if x == c {
			return true
		}
	}
	return false
}

func actionTags(actions []entities.Action) []entities.ActionTag {
	out := make([]entities.ActionTag, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Tag)
	}
	return out
}

func TestViewPolicy_ColumnsFor(t *testing.T) {
	p := NewViewPolicy(DefaultViewPolicyConfig())
	descriptive := []entities.Column{
		entities.ColumnDescription, entities.ColumnPartNo, entities.ColumnDrawingNo,
		entities.ColumnAnnualUsage, entities.ColumnSize,
	}
	costs := []entities.Column{entities.ColumnFOBValue, entities.ColumnCIFValue, entities.ColumnTotal}

	for _, stage := range []entities.Stage{5, 6, 7, 8} {
		cols := p.ColumnsFor(stage)
		if !reflect.DeepEqual(cols, p.ColumnsFor(stage)) {
			t.Fatalf("stage %d: columns must be stable", stage)
		}
		for _, c := range descriptive {
			if hasColumn(cols, c) {
				t.Fatalf("late stage %d must hide %s", stage, c)
			}
		}
		for _, c := range append(costs, entities.ColumnSubTotalCost, entities.ColumnTotalFactoryCost) {
			if !hasColumn(cols, c) {
				t.Fatalf("late stage %d must show %s", stage, c)
			}
		}
	}

	overhead := p.ColumnsFor(4)
	if !hasColumn(overhead, entities.ColumnSubTotalCost) || !hasColumn(overhead, entities.ColumnTotalFactoryCost) {
		t.Fatalf("overhead stage must show sub total and total factory cost: %v", overhead)
	}
	for _, c := range costs {
		if hasColumn(overhead, c) {
			t.Fatalf("overhead stage must hide %s", c)
		}
	}

	early := p.ColumnsFor(1)
	for _, c := range descriptive {
		if !hasColumn(early, c) {
			t.Fatalf("early stage must show %s", c)
		}
	}
	if hasColumn(early, entities.ColumnSubTotalCost) {
		t.Fatalf("early stage must hide cost columns")
	}

	unknown := p.ColumnsFor(99)
	want := []entities.Column{entities.ColumnSKUName, entities.ColumnStatus, entities.ColumnFactoryOverheadPerc}
	if !reflect.DeepEqual(unknown, want) {
		t.Fatalf("unknown stage: expected base columns, got %v", unknown)
	}
}

func TestViewPolicy_ActionsFor(t *testing.T) {
	p := NewViewPolicy(DefaultViewPolicyConfig())

	cases := []struct {
		name    string
		stage   entities.Stage
		role    entities.Role
		version int
		want    []entities.ActionTag
	}{
		{"component role early", 2, 3, 0, []entities.ActionTag{entities.ActionViewComponents, entities.ActionAddComponent}},
		{"bom role early", 2, 4, 0, []entities.ActionTag{entities.ActionAddBOM}},
		{"component role late", 6, 3, 0, []entities.ActionTag{entities.ActionViewComponents}},
		{"bom role late", 6, 4, 0, []entities.ActionTag{}},
		{"overhead stage", 4, 3, 0, []entities.ActionTag{entities.ActionAddOverhead, entities.ActionViewComponents, entities.ActionAddComponent}},
		{"cost role late", 7, 1, 0, []entities.ActionTag{entities.ActionViewCostSheet}},
		{"cost role early", 1, 2, 0, []entities.ActionTag{}},
		{"unknown stage", 42, 3, 0, []entities.ActionTag{}},
		{"unknown role", 2, 77, 0, []entities.ActionTag{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := actionTags(p.ActionsFor(tc.stage, tc.role, 10, tc.version))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestViewPolicy_CostSheetTarget(t *testing.T) {
	p := NewViewPolicy(DefaultViewPolicyConfig())

	a := p.ActionsFor(5, 1, 10, 0)
	if len(a) != 1 || a[0].Target != "/v1/rfqs/10/cost-sheet" {
		t.Fatalf("unexpected unversioned target: %+v", a)
	}
	a = p.ActionsFor(5, 1, 10, 3)
	if len(a) != 1 || a[0].Target != "/v1/rfqs/10/cost-sheet?version=3" {
		t.Fatalf("unexpected versioned target: %+v", a)
	}
}

func TestViewPolicy_Allows(t *testing.T) {
	p := NewViewPolicy(DefaultViewPolicyConfig())
	if !p.Allows(4, 3, entities.ActionAddOverhead) {
		t.Fatalf("expected overhead allowed at overhead stage")
	}
	if p.Allows(2, 3, entities.ActionAddOverhead) {
		t.Fatalf("overhead must not be allowed at early stage")
	}
	if p.Allows(6, 4, entities.ActionAddBOM) {
		t.Fatalf("add bom must not be allowed at late stage")
	}
}
