package entities

// Stage is the workflow-stage identifier of an RFQ. Its values are owned by
// the RFQ backend; the console only tests membership in configured sets.
type Stage int

// Role is the acting user's role identifier, as issued in the session token.
type Role int

// Column is a SKU table column tag.
type Column string

const (
	ColumnSKUName             Column = "sku_name"
	ColumnStatus              Column = "status"
	ColumnFactoryOverheadPerc Column = "factory_overhead_perc"
	ColumnDescription         Column = "description"
	ColumnPartNo              Column = "part_no"
	ColumnDrawingNo           Column = "drawing_no"
	ColumnAnnualUsage         Column = "annual_usage"
	ColumnSize                Column = "size"
	ColumnSubTotalCost        Column = "sub_total_cost"
	ColumnTotalFactoryCost    Column = "total_factory_cost"
	ColumnFOBValue            Column = "fob_value"
	ColumnCIFValue            Column = "cif_value"
	ColumnTotal               Column = "total"
)

// ActionTag identifies an action button of the SKU table.
type ActionTag string

const (
	ActionAddOverhead    ActionTag = "add_overhead"
	ActionViewComponents ActionTag = "view_components"
	ActionAddComponent   ActionTag = "add_component"
	ActionAddBOM         ActionTag = "add_bom"
	ActionViewCostSheet  ActionTag = "view_cost_sheet"
)

// Action is a visible action button. Target is set for navigation actions.
type Action struct {
	Tag    ActionTag `json:"tag"`
	Label  string    `json:"label"`
	Target string    `json:"target,omitempty"`
}

// Session is the caller context handed explicitly to every operation.
type Session struct {
	UserID string
	RoleID Role
}
