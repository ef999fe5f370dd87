package repository

import (
	"testing"
	"time"

	"rfq_console/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestWorkspaceItemMapping(t *testing.T) {
	updated := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	w := entities.Workspace{
		ID:     "u-1#10",
		UserID: "u-1",
		RoleID: 4,
		RFQ:    entities.RFQ{ID: 10, Name: "Pump housing", Stage: 2, Version: 3},
		SKUs: []entities.SKU{{
			ID:   100,
			Name: "S1",
			Products: []entities.Product{
				{ID: 55, SKUID: 100, Name: "Casting", Kind: entities.ProductKindFinalBOM, FinalBOMCost: "150.00", FinalBOMCostUnit: "USD"},
			},
		}},
		Editor: entities.Editor{
			Status:    entities.EditorStatusOpen,
			Kind:      entities.EditorKindBOM,
			SKUID:     100,
			EditIndex: 0,
			Draft:     entities.Product{SKUID: 100, Name: "Casting", Kind: entities.ProductKindFinalBOM},
			Errors:    entities.FieldErrors{"final_bom_cost": "Final BOM cost is required"},
		},
		Message:   "Please fix the highlighted fields",
		UpdatedAt: updated,
	}

	av, err := marshalItem(toWorkspaceItem(w))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["skus"].(*types.AttributeValueMemberL); !ok {
		t.Fatalf("skus must be a native list, got %T", av["skus"])
	}
	if _, ok := av["editor"].(*types.AttributeValueMemberM); !ok {
		t.Fatalf("editor must be a native map, got %T", av["editor"])
	}
	if n, ok := av["rfq_id"].(*types.AttributeValueMemberN); !ok || n.Value != "10" {
		t.Fatalf("unexpected rfq_id attribute: %#v", av["rfq_id"])
	}

	var item workspaceItem
	if err := unmarshalItem(av, &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromWorkspaceItem(item)
	if got.ID != w.ID || got.RFQ != w.RFQ || !got.UpdatedAt.Equal(updated) || got.Message != w.Message {
		t.Fatalf("unexpected workspace: %+v", got)
	}
	p := got.SKUs[0].Products[0]
	if p.FinalBOMCost != "150.00" || !p.IsFinalBOM() {
		t.Fatalf("amount must keep its text: %+v", p)
	}
	if !got.Editor.IsOpen() || got.Editor.Errors["final_bom_cost"] == "" {
		t.Fatalf("editor not restored: %+v", got.Editor)
	}
}

func TestFromWorkspaceItem_Defaults(t *testing.T) {
	got := fromWorkspaceItem(workspaceItem{ID: "u-1#10", RFQID: 10})
	if got.SKUs == nil || len(got.SKUs) != 0 {
		t.Fatalf("expected empty sku list")
	}
	if got.Editor.IsOpen() || got.Editor.EditIndex != -1 {
		t.Fatalf("expected closed editor, got %+v", got.Editor)
	}
}

func TestUnmarshalItem_WrongAttributeType(t *testing.T) {
	av := map[string]types.AttributeValue{
		"id":   &types.AttributeValueMemberS{Value: "u-1#10"},
		"skus": &types.AttributeValueMemberS{Value: "[]"},
	}
	var item workspaceItem
	if err := unmarshalItem(av, &item); err == nil {
		t.Fatalf("expected decode error")
	}
}
