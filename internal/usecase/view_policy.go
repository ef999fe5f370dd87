package usecase

import (
	"fmt"

	"rfq_console/internal/domain/entities"
)

// ViewPolicyConfig holds the stage and role ids the policy tests against.
type ViewPolicyConfig struct {
	EarlyStages     []int
	OverheadStage   int
	LateStages      []int
	ComponentRole   int
	BOMRole         int
	CostSheetRoles  []int
	CostSheetTarget string
}

func DefaultViewPolicyConfig() ViewPolicyConfig {
	return ViewPolicyConfig{
		EarlyStages:     []int{1, 2, 3},
		OverheadStage:   4,
		LateStages:      []int{5, 6, 7, 8},
		ComponentRole:   3,
		BOMRole:         4,
		CostSheetRoles:  []int{1, 2},
		CostSheetTarget: "/v1/rfqs/%d/cost-sheet",
	}
}

// ViewPolicy decides which SKU columns and action buttons are shown for a
// workflow stage and role. It holds no mutable state.
type ViewPolicy struct {
	early          map[entities.Stage]bool
	late           map[entities.Stage]bool
	overhead       entities.Stage
	componentRole  entities.Role
	bomRole        entities.Role
	costSheetRoles map[entities.Role]bool
	costTarget     string
}

func NewViewPolicy(cfg ViewPolicyConfig) *ViewPolicy {
	p := &ViewPolicy{
		early:          make(map[entities.Stage]bool, len(cfg.EarlyStages)),
		late:           make(map[entities.Stage]bool, len(cfg.LateStages)),
		overhead:       entities.Stage(cfg.OverheadStage),
		componentRole:  entities.Role(cfg.ComponentRole),
		bomRole:        entities.Role(cfg.BOMRole),
		costSheetRoles: make(map[entities.Role]bool, len(cfg.CostSheetRoles)),
		costTarget:     cfg.CostSheetTarget,
	}
	for _, s := range cfg.EarlyStages {
		p.early[entities.Stage(s)] = true
	}
	for _, s := range cfg.LateStages {
		p.late[entities.Stage(s)] = true
	}
	for _, r := range cfg.CostSheetRoles {
		p.costSheetRoles[entities.Role(r)] = true
	}
	if p.costTarget == "" {
		p.costTarget = DefaultViewPolicyConfig().CostSheetTarget
	}
	return p
}

func (p *ViewPolicy) isLate(stage entities.Stage) bool {
	return p.late[stage]
}

func (p *ViewPolicy) isOverhead(stage entities.Stage) bool {
	return p.overhead != 0 && stage == p.overhead && !p.late[stage]
}

func (p *ViewPolicy) known(stage entities.Stage) bool {
	return p.early[stage] || p.late[stage] || p.isOverhead(stage)
}

// ColumnsFor returns the SKU table columns visible at stage, in display order.
func (p *ViewPolicy) ColumnsFor(stage entities.Stage) []entities.Column {
	cols := []entities.Column{
		entities.ColumnSKUName,
		entities.ColumnStatus,
		entities.ColumnFactoryOverheadPerc,
	}
	if !p.known(stage) {
		return cols
	}

	if !p.isLate(stage) {
		cols = append(cols,
			entities.ColumnDescription,
			entities.ColumnPartNo,
			entities.ColumnDrawingNo,
			entities.ColumnAnnualUsage,
			entities.ColumnSize,
		)
	}
	if p.isLate(stage) || p.isOverhead(stage) {
		cols = append(cols, entities.ColumnSubTotalCost, entities.ColumnTotalFactoryCost)
	}
	if p.isLate(stage) {
		cols = append(cols, entities.ColumnFOBValue, entities.ColumnCIFValue, entities.ColumnTotal)
	}
	return cols
}

// ActionsFor returns the action buttons visible to role at stage. The cost
// sheet target carries the version when one is in context.
func (p *ViewPolicy) ActionsFor(stage entities.Stage, role entities.Role, rfqID int64, version int) []entities.Action {
	if !p.known(stage) {
		return nil
	}

	var actions []entities.Action
	if p.isOverhead(stage) {
		actions = append(actions, entities.Action{Tag: entities.ActionAddOverhead, Label: "Add Factory Overhead"})
	}

	editable := !p.isLate(stage)
	switch {
	case role != 0 && role == p.componentRole:
		actions = append(actions, entities.Action{Tag: entities.ActionViewComponents, Label: "View Components"})
		if editable {
			actions = append(actions, entities.Action{Tag: entities.ActionAddComponent, Label: "Add Component"})
		}
	case role != 0 && role == p.bomRole:
		if editable {
			actions = append(actions, entities.Action{Tag: entities.ActionAddBOM, Label: "Add BOM"})
		}
	case p.costSheetRoles[role]:
		if p.isLate(stage) {
			target := fmt.Sprintf(p.costTarget, rfqID)
			if version > 0 {
				target = fmt.Sprintf("%s?version=%d", target, version)
			}
			actions = append(actions, entities.Action{Tag: entities.ActionViewCostSheet, Label: "View Cost Sheet", Target: target})
		}
	}
	return actions
}

// Allows reports whether tag is among the actions visible to role at stage.
func (p *ViewPolicy) Allows(stage entities.Stage, role entities.Role, tag entities.ActionTag) bool {
	for _, a := range p.ActionsFor(stage, role, 0, 0) {
		if a.Tag == tag {
			return true
		}
	}
	return false
}
