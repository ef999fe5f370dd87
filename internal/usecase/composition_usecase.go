package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// BusyAction names a mutating action guarded by the busy lock.
type BusyAction string

const (
	BusyOpenEditor BusyAction = "open_editor"
	BusySave       BusyAction = "save"
	BusyDelete     BusyAction = "delete"
	BusyOverhead   BusyAction = "overhead"
)

var busyActions = []BusyAction{BusyOpenEditor, BusySave, BusyDelete, BusyOverhead}

// WorkspaceView is a workspace plus everything the SKU table needs to render.
type WorkspaceView struct {
	Workspace     entities.Workspace
	Columns       []entities.Column
	Actions       []entities.Action
	MaterialNames map[int64]string
	Busy          map[BusyAction]bool
}

// DraftPatch carries editor field changes. Nil fields are left untouched.
// SelectIndex switches the draft to the entry at that index (-1 = new entry)
// before the other fields apply; IsFinalBOM toggles the BOM sub-kind next.
type DraftPatch struct {
	SelectIndex       *int
	IsFinalBOM        *bool
	Name              *string
	Quantity          *entities.Amount
	RawMaterialTypeID *int64
	YieldPerc         *entities.Amount
	NetWeight         *entities.Amount
	BOMCostPerKg      *entities.Amount
	BOMCostUnit       *string
	FinalBOMCost      *entities.Amount
	FinalBOMCostUnit  *string
}

// ICompositionUseCase exposes the SKU/product composition workflow of an RFQ.
//
// Editor session per workspace: closed -> open(component|bom|view) -> closed.
// Saving closes the editor only after the backend accepted the write.
type ICompositionUseCase interface {
	OpenWorkspace(ctx context.Context, sess entities.Session, rfq entities.RFQ) (WorkspaceView, error)
	GetWorkspace(ctx context.Context, sess entities.Session, rfqID int64) (WorkspaceView, error)
	RefreshWorkspace(ctx context.Context, sess entities.Session, rfqID int64) (WorkspaceView, error)
	OpenEditor(ctx context.Context, sess entities.Session, rfqID, skuID int64, kind entities.EditorKind, index int) (WorkspaceView, error)
	UpdateDraft(ctx context.Context, sess entities.Session, rfqID int64, patch DraftPatch) (WorkspaceView, error)
	CloseEditor(ctx context.Context, sess entities.Session, rfqID int64) (WorkspaceView, error)
	SaveDraft(ctx context.Context, sess entities.Session, rfqID int64) (WorkspaceView, error)
	RemoveProduct(ctx context.Context, sess entities.Session, rfqID, skuID int64, scope ProductScope, index int) (WorkspaceView, error)
	SetOverhead(ctx context.Context, sess entities.Session, rfqID int64, percentage string) (WorkspaceView, error)
	CostSheet(ctx context.Context, sess entities.Session, rfqID int64, version int) ([]byte, error)
}

type CompositionUseCase struct {
	backend  interfaces.IProductBackend
	repo     interfaces.IWorkspaceRepository
	lock     interfaces.IBusyLock
	renderer interfaces.ICostSheetRenderer
	catalog  IRawMaterialCatalog
	policy   *ViewPolicy
	store    *ProductStore
	overhead *OverheadCalculator
	now      func() time.Time
}

var _ ICompositionUseCase = (*CompositionUseCase)(nil)

func NewCompositionUseCase(
	backend interfaces.IProductBackend,
	repo interfaces.IWorkspaceRepository,
	lock interfaces.IBusyLock,
	renderer interfaces.ICostSheetRenderer,
	catalog IRawMaterialCatalog,
	policy *ViewPolicy,
) *CompositionUseCase {
	return &CompositionUseCase{
		backend:  backend,
		repo:     repo,
		lock:     lock,
		renderer: renderer,
		catalog:  catalog,
		policy:   policy,
		store:    NewProductStore(backend),
		overhead: NewOverheadCalculator(backend),
		now:      time.Now,
	}
}

func (u *CompositionUseCase) OpenWorkspace(ctx context.Context, sess entities.Session, rfq entities.RFQ) (WorkspaceView, error) {
	if err := validSession(sess); err != nil {
		return WorkspaceView{}, err
	}
	if rfq.ID <= 0 {
		return WorkspaceView{}, ErrInvalidRFQID
	}
	if rfq.Version < 0 {
		rfq.Version = 0
	}

	skus, err := fetchSKUs(ctx, u.backend, rfq)
	if err != nil {
		zap.L().Warn("[composition][usecase] sku fetch failed", zap.Int64("rfq_id", rfq.ID), zap.Error(err))
		return WorkspaceView{}, err
	}

	ws := entities.Workspace{
		ID:     entities.WorkspaceID(sess.UserID, rfq.ID),
		UserID: sess.UserID,
		RoleID: sess.RoleID,
		RFQ:    rfq,
		SKUs:   skus,
		Editor: entities.ClosedEditor(),
	}
	if err := u.save(ctx, &ws); err != nil {
		return WorkspaceView{}, err
	}
	zap.L().Info("[composition][usecase] workspace opened",
		zap.String("workspace_id", ws.ID),
		zap.Int("stage", int(rfq.Stage)),
		zap.Int("version", rfq.Version),
		zap.Int("skus", len(skus)),
	)
	return u.view(ctx, sess, ws), nil
}

func (u *CompositionUseCase) GetWorkspace(ctx context.Context, sess entities.Session, rfqID int64) (WorkspaceView, error) {
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return WorkspaceView{}, err
	}
	return u.view(ctx, sess, ws), nil
}

func (u *CompositionUseCase) RefreshWorkspace(ctx context.Context, sess entities.Session, rfqID int64) (WorkspaceView, error) {
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return WorkspaceView{}, err
	}
	skus, err := fetchSKUs(ctx, u.backend, ws.RFQ)
	if err != nil {
		return WorkspaceView{}, u.fail(ctx, &ws, err)
	}
	ws.SKUs = skus
	ws.Message = ""
	syncEditor(&ws)
	if err := u.save(ctx, &ws); err != nil {
		return WorkspaceView{}, err
	}
	return u.view(ctx, sess, ws), nil
}

func (u *CompositionUseCase) OpenEditor(ctx context.Context, sess entities.Session, rfqID, skuID int64, kind entities.EditorKind, index int) (WorkspaceView, error) {
	if !kind.Valid() {
		return WorkspaceView{}, ErrInvalidEditorKind
	}
	if skuID <= 0 {
		return WorkspaceView{}, ErrInvalidSKUID
	}
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return WorkspaceView{}, err
	}
	if !u.policy.Allows(ws.RFQ.Stage, sess.RoleID, editorAction(kind)) {
		return WorkspaceView{}, ErrActionNotAllowed
	}

	err = u.withBusy(ctx, ws.ID, BusyOpenEditor, func() error {
		pos, ok := ws.SKUIndex(skuID)
		if !ok {
			return ErrSKUNotFound
		}
		if kind == entities.EditorKindComponent {
			// warm the catalog for the raw material picker
			if _, err := u.catalog.List(ctx); err != nil {
				return err
			}
		}

		if ws.Editor.IsOpen() {
			zap.L().Debug("[composition][usecase] discarding open editor",
				zap.String("workspace_id", ws.ID), zap.Int64("sku_id", ws.Editor.SKUID))
		}
		ed := entities.Editor{
			Status:    entities.EditorStatusOpen,
			Kind:      kind,
			SKUID:     skuID,
			Entries:   editorEntries(kind, ws.SKUs[pos].Products),
			EditIndex: -1,
			Draft:     newDraft(kind, skuID),
		}
		if index >= 0 && kind != entities.EditorKindViewOnly {
			if index >= len(ed.Entries) {
				return ErrStaleProductState
			}
			ed.EditIndex = index
			ed.Draft = ed.Entries[index].Normalize()
		}
		ws.Editor = ed
		ws.Message = ""
		return u.save(ctx, &ws)
	})
	if err != nil {
		return WorkspaceView{}, err
	}
	return u.view(ctx, sess, ws), nil
}

func (u *CompositionUseCase) UpdateDraft(ctx context.Context, sess entities.Session, rfqID int64, patch DraftPatch) (WorkspaceView, error) {
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return WorkspaceView{}, err
	}
	ed := &ws.Editor
	if !ed.IsOpen() {
		return WorkspaceView{}, ErrEditorNotOpen
	}
	if ed.Kind == entities.EditorKindViewOnly {
		return WorkspaceView{}, ErrEditorReadOnly
	}

	if patch.SelectIndex != nil {
		i := *patch.SelectIndex
		switch {
		case i < 0:
			ed.EditIndex = -1
			ed.Draft = newDraft(ed.Kind, ed.SKUID)
		case i < len(ed.Entries):
			ed.EditIndex = i
			ed.Draft = ed.Entries[i].Normalize()
		default:
			return WorkspaceView{}, ErrStaleProductState
		}
	}
	if patch.IsFinalBOM != nil {
		d, err := ToggleFinalBOM(ed.Draft, *patch.IsFinalBOM)
		if err != nil {
			return WorkspaceView{}, err
		}
		ed.Draft = d
	}
	applyPatch(&ed.Draft, patch)
	ed.Draft = ed.Draft.Normalize()
	ed.Errors = nil

	if err := u.save(ctx, &ws); err != nil {
		return WorkspaceView{}, err
	}
	return u.view(ctx, sess, ws), nil
}

func (u *CompositionUseCase) CloseEditor(ctx context.Context, sess entities.Session, rfqID int64) (WorkspaceView, error) {
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return WorkspaceView{}, err
	}
	ws.Editor = entities.ClosedEditor()
	if err := u.save(ctx, &ws); err != nil {
		return WorkspaceView{}, err
	}
	return u.view(ctx, sess, ws), nil
}

func (u *CompositionUseCase) SaveDraft(ctx context.Context, sess entities.Session, rfqID int64) (WorkspaceView, error) {
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return WorkspaceView{}, err
	}
	ed := ws.Editor
	if !ed.IsOpen() {
		return WorkspaceView{}, ErrEditorNotOpen
	}
	if ed.Kind == entities.EditorKindViewOnly {
		return WorkspaceView{}, ErrEditorReadOnly
	}

	if !u.policy.Allows(ws.RFQ.Stage, sess.RoleID, editorAction(ed.Kind)) {
		return WorkspaceView{}, ErrActionNotAllowed
	}

	draft := ed.Draft.Normalize()
	errs := ValidateProduct(draft.Kind, draft)
	if errs.Empty() {
		errs = u.checkRawMaterial(ctx, draft)
	}
	if !errs.Empty() {
		ws.Editor.Errors = errs
		return WorkspaceView{}, u.fail(ctx, &ws, &DraftValidationError{Errors: errs})
	}

	err = u.withBusy(ctx, ws.ID, BusySave, func() error {
		res, err := u.store.Save(ctx, &ws, ed.SKUID, ed.EditIndex, draft)
		if err != nil {
			return u.fail(ctx, &ws, err)
		}
		ws.Editor = entities.ClosedEditor()
		ws.Message = savedMessage(draft)
		if res.RefreshErr != nil {
			ws.Message = fmt.Sprintf("%s, but the SKU list could not be refreshed: %v", ws.Message, res.RefreshErr)
		}
		return u.save(ctx, &ws)
	})
	if err != nil {
		return WorkspaceView{}, err
	}
	return u.view(ctx, sess, ws), nil
}

func (u *CompositionUseCase) RemoveProduct(ctx context.Context, sess entities.Session, rfqID, skuID int64, scope ProductScope, index int) (WorkspaceView, error) {
	if !scope.Valid() {
		return WorkspaceView{}, ErrInvalidScope
	}
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return WorkspaceView{}, err
	}
	if !u.removeAllowed(ws.RFQ.Stage, sess.RoleID, scope) {
		return WorkspaceView{}, ErrActionNotAllowed
	}

	err = u.withBusy(ctx, ws.ID, BusyDelete, func() error {
		removed, err := u.store.Remove(ctx, &ws, skuID, scope, index)
		if err != nil {
			return u.fail(ctx, &ws, err)
		}
		ws.Message = fmt.Sprintf("%q removed", removed.Name)
		return u.save(ctx, &ws)
	})
	if err != nil {
		return WorkspaceView{}, err
	}
	return u.view(ctx, sess, ws), nil
}

func (u *CompositionUseCase) SetOverhead(ctx context.Context, sess entities.Session, rfqID int64, percentage string) (WorkspaceView, error) {
	if strings.TrimSpace(percentage) == "" {
		return WorkspaceView{}, ErrOverheadRequired
	}
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return WorkspaceView{}, err
	}
	if !u.policy.Allows(ws.RFQ.Stage, sess.RoleID, entities.ActionAddOverhead) {
		return WorkspaceView{}, ErrActionNotAllowed
	}

	err = u.withBusy(ctx, ws.ID, BusyOverhead, func() error {
		err := u.overhead.Apply(ctx, &ws, percentage)
		syncEditor(&ws)
		if err != nil {
			return u.fail(ctx, &ws, err)
		}
		ws.Message = "Factory overhead applied to all SKUs"
		return u.save(ctx, &ws)
	})
	if err != nil {
		return WorkspaceView{}, err
	}
	return u.view(ctx, sess, ws), nil
}

// CostSheet renders the SKU table of the RFQ as a spreadsheet, reading the
// SKUs of the requested version.
func (u *CompositionUseCase) CostSheet(ctx context.Context, sess entities.Session, rfqID int64, version int) ([]byte, error) {
	ws, err := u.load(ctx, sess, rfqID)
	if err != nil {
		return nil, err
	}
	if !u.policy.Allows(ws.RFQ.Stage, sess.RoleID, entities.ActionViewCostSheet) {
		return nil, ErrActionNotAllowed
	}

	rfq := ws.RFQ
	if version > 0 {
		rfq.Version = version
	}
	skus, err := fetchSKUs(ctx, u.backend, rfq)
	if err != nil {
		return nil, err
	}
	names, err := u.catalog.Names(ctx)
	if err != nil {
		zap.L().Warn("[composition][usecase] cost sheet without material names", zap.Error(err))
		names = map[int64]string{}
	}

	return u.renderer.Render(entities.CostSheet{
		RFQ:          rfq,
		Columns:      u.policy.ColumnsFor(rfq.Stage),
		SKUs:         skus,
		RawMaterials: names,
	})
}

func (u *CompositionUseCase) load(ctx context.Context, sess entities.Session, rfqID int64) (entities.Workspace, error) {
	if err := validSession(sess); err != nil {
		return entities.Workspace{}, err
	}
	if rfqID <= 0 {
		return entities.Workspace{}, ErrInvalidRFQID
	}
	ws, err := u.repo.GetByID(ctx, entities.WorkspaceID(sess.UserID, rfqID))
	if err != nil {
		return entities.Workspace{}, err
	}
	if ws.ID == "" {
		return entities.Workspace{}, ErrWorkspaceNotFound
	}
	return ws, nil
}

func (u *CompositionUseCase) save(ctx context.Context, ws *entities.Workspace) error {
	ws.UpdatedAt = u.now().UTC()
	saved, err := u.repo.Save(ctx, *ws)
	if err != nil {
		zap.L().Error("[composition][usecase] workspace save failed", zap.String("workspace_id", ws.ID), zap.Error(err))
		return err
	}
	*ws = saved
	return nil
}

// fail records the user-facing message of cause on the workspace and returns
// cause unchanged.
func (u *CompositionUseCase) fail(ctx context.Context, ws *entities.Workspace, cause error) error {
	ws.Message = UserMessage(cause)
	if err := u.save(ctx, ws); err != nil {
		zap.L().Warn("[composition][usecase] failure message not stored", zap.String("workspace_id", ws.ID), zap.Error(err))
	}
	return cause
}

func (u *CompositionUseCase) withBusy(ctx context.Context, wsID string, action BusyAction, fn func() error) error {
	release, ok, err := u.lock.Acquire(ctx, busyKey(wsID, action))
	if err != nil {
		return err
	}
	if !ok {
		zap.L().Info("[composition][usecase] busy", zap.String("workspace_id", wsID), zap.String("action", string(action)))
		return ErrBusy
	}
	defer release()
	return fn()
}

func (u *CompositionUseCase) view(ctx context.Context, sess entities.Session, ws entities.Workspace) WorkspaceView {
	v := WorkspaceView{
		Workspace: ws,
		Columns:   u.policy.ColumnsFor(ws.RFQ.Stage),
		Actions:   u.policy.ActionsFor(ws.RFQ.Stage, sess.RoleID, ws.RFQ.ID, ws.RFQ.Version),
		Busy:      make(map[BusyAction]bool, len(busyActions)),
	}

	names, err := u.catalog.Names(ctx)
	if err != nil {
		zap.L().Warn("[composition][usecase] raw material names unavailable", zap.Error(err))
		names = map[int64]string{}
	}
	v.MaterialNames = names

	for _, a := range busyActions {
		held, err := u.lock.Held(ctx, busyKey(ws.ID, a))
		if err != nil {
			zap.L().Warn("[composition][usecase] busy flag lookup failed", zap.String("action", string(a)), zap.Error(err))
			continue
		}
		v.Busy[a] = held
	}
	return v
}

func busyKey(wsID string, action BusyAction) string {
	return "busy:" + wsID + ":" + string(action)
}

func validSession(sess entities.Session) error {
	if strings.TrimSpace(sess.UserID) == "" {
		return ErrInvalidSession
	}
	return nil
}

// checkRawMaterial rejects a component whose raw material type is not in the
// catalog. An unavailable catalog leaves the decision to the backend.
func (u *CompositionUseCase) checkRawMaterial(ctx context.Context, draft entities.Product) entities.FieldErrors {
	errs := entities.FieldErrors{}
	if draft.Kind != entities.ProductKindNonBOM {
		return errs
	}
	_, err := u.catalog.Name(ctx, draft.RawMaterialTypeID)
	switch {
	case errors.Is(err, ErrRawMaterialMissing):
		errs[FieldRawMaterialType] = "Unknown raw material type"
	case err != nil:
		zap.L().Warn("[composition][usecase] raw material check skipped", zap.Error(err))
	}
	return errs
}

// removeAllowed gates deletes by the edit action of the list they address:
// add_component for components, add_bom for BOM entries, either for all.
func (u *CompositionUseCase) removeAllowed(stage entities.Stage, role entities.Role, scope ProductScope) bool {
	component := u.policy.Allows(stage, role, entities.ActionAddComponent)
	bom := u.policy.Allows(stage, role, entities.ActionAddBOM)
	switch scope {
	case ProductScopeComponent:
		return component
	case ProductScopeBOM:
		return bom
	default:
		return component || bom
	}
}

// syncEditor rebuilds the open editor's entries from the current SKU list and
// re-points EditIndex at the draft's product. The editor closes when its SKU
// or the edited product is gone.
func syncEditor(ws *entities.Workspace) {
	ed := &ws.Editor
	if !ed.IsOpen() {
		return
	}
	pos, ok := ws.SKUIndex(ed.SKUID)
	if !ok {
		*ed = entities.ClosedEditor()
		return
	}
	ed.Entries = editorEntries(ed.Kind, ws.SKUs[pos].Products)
	if ed.EditIndex < 0 {
		return
	}
	ed.EditIndex = -1
	if ed.Draft.ID != 0 {
		for i, p := range ed.Entries {
			if p.ID == ed.Draft.ID {
				ed.EditIndex = i
				return
			}
		}
	}
	zap.L().Info("[composition][usecase] edited product gone, closing editor",
		zap.String("workspace_id", ws.ID), zap.Int64("product_id", ed.Draft.ID))
	*ed = entities.ClosedEditor()
}

func editorAction(kind entities.EditorKind) entities.ActionTag {
	switch kind {
	case entities.EditorKindComponent:
		return entities.ActionAddComponent
	case entities.EditorKindBOM:
		return entities.ActionAddBOM
	default:
		return entities.ActionViewComponents
	}
}

func editorEntries(kind entities.EditorKind, products []entities.Product) []entities.Product {
	switch kind {
	case entities.EditorKindComponent:
		return Subset(products, false)
	case entities.EditorKindBOM:
		return Subset(products, true)
	default:
		out := make([]entities.Product, len(products))
		copy(out, products)
		return out
	}
}

func newDraft(kind entities.EditorKind, skuID int64) entities.Product {
	switch kind {
	case entities.EditorKindComponent:
		return entities.Product{SKUID: skuID, Kind: entities.ProductKindNonBOM}
	case entities.EditorKindBOM:
		return entities.Product{SKUID: skuID, Kind: entities.ProductKindItemizedBOM}
	default:
		return entities.Product{}
	}
}

func applyPatch(d *entities.Product, p DraftPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Quantity != nil {
		d.Quantity = *p.Quantity
	}
	if p.RawMaterialTypeID != nil {
		d.RawMaterialTypeID = *p.RawMaterialTypeID
	}
	if p.YieldPerc != nil {
		d.YieldPerc = *p.YieldPerc
	}
	if p.NetWeight != nil {
		d.NetWeight = *p.NetWeight
	}
	if p.BOMCostPerKg != nil {
		d.BOMCostPerKg = *p.BOMCostPerKg
	}
	if p.BOMCostUnit != nil {
		d.BOMCostUnit = *p.BOMCostUnit
	}
	if p.FinalBOMCost != nil {
		d.FinalBOMCost = *p.FinalBOMCost
	}
	if p.FinalBOMCostUnit != nil {
		d.FinalBOMCostUnit = *p.FinalBOMCostUnit
	}
}

func savedMessage(p entities.Product) string {
	if p.IsBOM() {
		return fmt.Sprintf("BOM entry %q saved", p.Name)
	}
	return fmt.Sprintf("Component %q saved", p.Name)
}

// UserMessage converts an action error into the banner text shown to the user.
func UserMessage(err error) string {
	var verr *DraftValidationError
	var serr *OverheadStepError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return "Please fix the highlighted fields"
	case errors.As(err, &serr) && serr.Partial():
		return fmt.Sprintf("Factory overhead was saved, but the %s step failed: %v", serr.Step, serr.Err)
	case errors.As(err, &serr):
		return fmt.Sprintf("Factory overhead could not be saved: %v", serr.Err)
	default:
		return err.Error()
	}
}
