package writeir

import (
	"fmt"

	"github.com/arllen133/writeir/filter"
	"github.com/arllen133/writeir/model"
)

// DeleteRecord deletes at most one row. RecordFilter is optional: a
// DeleteRecord can be constructed before its filter is known, and
// SetFilter/SetSelectors must be able to materialize one from scratch.
type DeleteRecord struct {
	Model        model.Model
	RecordFilter *model.RecordFilter
}

func (*DeleteRecord) isNode() {}

func (d *DeleteRecord) OwnerModel() model.Model { return d.Model }

// Returns implements Returner: true iff selection equals the model's
// primary identifier.
func (d *DeleteRecord) Returns(selection model.FieldSelection) bool {
	return d.Model.PrimaryIdentifier().Equal(selection)
}

// GetFilter implements FilterCapable. The boolean result is false both
// when RecordFilter is absent and when it is present with a nil Filter —
// either way there is nothing to AND against.
func (d *DeleteRecord) GetFilter() (filter.Expression, bool) {
	if d.RecordFilter == nil {
		return nil, false
	}
	return d.RecordFilter.Filter, d.RecordFilter.Filter != nil
}

// SetFilter implements FilterCapable, constructing a fresh RecordFilter
// wrapping f if none existed yet.
func (d *DeleteRecord) SetFilter(f filter.Expression) {
	if d.RecordFilter == nil {
		rf := model.NewRecordFilter(f)
		d.RecordFilter = &rf
		return
	}
	d.RecordFilter.Filter = f
}

// SetSelectors implements SelectorCapable, constructing a RecordFilter
// from the selectors alone if none existed yet — a filter that matches
// exactly those primary identifiers.
func (d *DeleteRecord) SetSelectors(selectors []model.SelectionResult) {
	if d.RecordFilter == nil {
		rf := model.RecordFilterFromSelectors(selectors)
		d.RecordFilter = &rf
		return
	}
	d.RecordFilter.Selectors = selectors
}

func (d *DeleteRecord) String() string {
	if d.RecordFilter == nil {
		return fmt.Sprintf("DeleteRecord(model: %s, filter: <none>)", d.Model.Name())
	}
	return fmt.Sprintf("DeleteRecord(model: %s, filter: %s)", d.Model.Name(), filter.Describe(d.RecordFilter.Combined()))
}

func (d *DeleteRecord) Graphviz() string {
	return fmt.Sprintf("DeleteRecord: %s", d.Model.Name())
}

// DeleteManyRecords deletes every row matching RecordFilter, never
// returning a projection.
type DeleteManyRecords struct {
	Model        model.Model
	RecordFilter model.RecordFilter
}

func (*DeleteManyRecords) isNode() {}

func (d *DeleteManyRecords) OwnerModel() model.Model { return d.Model }

// Returns implements Returner: DeleteManyRecords never returns a
// projection.
func (d *DeleteManyRecords) Returns(model.FieldSelection) bool { return false }

func (d *DeleteManyRecords) GetFilter() (filter.Expression, bool) {
	return d.RecordFilter.Filter, d.RecordFilter.Filter != nil
}

func (d *DeleteManyRecords) SetFilter(f filter.Expression) {
	d.RecordFilter.Filter = f
}

func (d *DeleteManyRecords) String() string {
	return fmt.Sprintf("DeleteManyRecords(model: %s, filter: %s)", d.Model.Name(), filter.Describe(d.RecordFilter.Combined()))
}

func (d *DeleteManyRecords) Graphviz() string {
	return fmt.Sprintf("DeleteManyRecords: %s", d.Model.Name())
}
