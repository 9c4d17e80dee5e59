package writeir

import (
	"fmt"

	"github.com/arllen133/writeir/filter"
	"github.com/arllen133/writeir/model"
)

// UpdateRecord's three lifecycle-terminal modes are modeled as three
// distinct Node-implementing types rather than one struct with a mode
// flag, since returns() and the projection each mode reports diverge —
// collapsing them into a nullable projection field would make an invalid
// state (e.g. "implicit but with custom fields") representable.

// UpdateRecordWithExplicitSelection updates rows matching RecordFilter and
// projects exactly SelectedFields back out, as the caller requested.
type UpdateRecordWithExplicitSelection struct {
	Name           string
	Model          model.Model
	RecordFilter   model.RecordFilter
	Args           model.WriteArgs
	SelectedFields model.FieldSelection
	SelectionOrder []string
}

func (*UpdateRecordWithExplicitSelection) isNode() {}

func (u *UpdateRecordWithExplicitSelection) OwnerModel() model.Model { return u.Model }

// Returns implements Returner: true iff SelectedFields is a superset of
// selection.
func (u *UpdateRecordWithExplicitSelection) Returns(selection model.FieldSelection) bool {
	return u.SelectedFields.IsSupersetOf(selection)
}

func (u *UpdateRecordWithExplicitSelection) GetFilter() (filter.Expression, bool) {
	return u.RecordFilter.Filter, u.RecordFilter.Filter != nil
}

func (u *UpdateRecordWithExplicitSelection) SetFilter(f filter.Expression) {
	u.RecordFilter.Filter = f
}

func (u *UpdateRecordWithExplicitSelection) SetSelectors(selectors []model.SelectionResult) {
	u.RecordFilter.Selectors = selectors
}

func (u *UpdateRecordWithExplicitSelection) InjectResultIntoArgs(result model.SelectionResult) {
	for _, item := range result {
		u.Args.Insert(item.Field, item.Value)
	}
	u.Args.UpdateDatetimes(u.Model)
}

func (u *UpdateRecordWithExplicitSelection) String() string {
	return fmt.Sprintf("UpdateRecord(model: %s, explicit selection: %d field(s), filter: %s)",
		u.Model.Name(), len(u.SelectedFields), filter.Describe(u.RecordFilter.Combined()))
}

func (u *UpdateRecordWithExplicitSelection) Graphviz() string {
	return fmt.Sprintf("UpdateRecord(model: %s)", u.Model.Name())
}

// UpdateRecordWithImplicitSelection updates rows matching RecordFilter;
// its projection is always the model's primary identifier, used only for
// inter-node plumbing and never exposed to the original caller.
type UpdateRecordWithImplicitSelection struct {
	Model        model.Model
	RecordFilter model.RecordFilter
	Args         model.WriteArgs
}

func (*UpdateRecordWithImplicitSelection) isNode() {}

func (u *UpdateRecordWithImplicitSelection) OwnerModel() model.Model { return u.Model }

// SelectedFields is always the model's primary identifier in this mode.
func (u *UpdateRecordWithImplicitSelection) SelectedFields() model.FieldSelection {
	return u.Model.PrimaryIdentifier()
}

// Returns implements Returner: true iff the primary identifier is a
// superset of selection.
func (u *UpdateRecordWithImplicitSelection) Returns(selection model.FieldSelection) bool {
	return u.Model.PrimaryIdentifier().IsSupersetOf(selection)
}

func (u *UpdateRecordWithImplicitSelection) GetFilter() (filter.Expression, bool) {
	return u.RecordFilter.Filter, u.RecordFilter.Filter != nil
}

func (u *UpdateRecordWithImplicitSelection) SetFilter(f filter.Expression) {
	u.RecordFilter.Filter = f
}

func (u *UpdateRecordWithImplicitSelection) SetSelectors(selectors []model.SelectionResult) {
	u.RecordFilter.Selectors = selectors
}

func (u *UpdateRecordWithImplicitSelection) InjectResultIntoArgs(result model.SelectionResult) {
	for _, item := range result {
		u.Args.Insert(item.Field, item.Value)
	}
	u.Args.UpdateDatetimes(u.Model)
}

func (u *UpdateRecordWithImplicitSelection) String() string {
	return fmt.Sprintf("UpdateRecord(model: %s, implicit selection, filter: %s)",
		u.Model.Name(), filter.Describe(u.RecordFilter.Combined()))
}

func (u *UpdateRecordWithImplicitSelection) Graphviz() string {
	return fmt.Sprintf("UpdateRecord(model: %s)", u.Model.Name())
}

// UpdateRecordWithoutSelection updates rows matching RecordFilter with no
// projection at all; a follow-up read is required to learn anything about
// the affected rows.
type UpdateRecordWithoutSelection struct {
	Model        model.Model
	RecordFilter model.RecordFilter
	Args         model.WriteArgs
}

func (*UpdateRecordWithoutSelection) isNode() {}

func (u *UpdateRecordWithoutSelection) OwnerModel() model.Model { return u.Model }

// Returns implements Returner: true iff selection equals the model's
// primary identifier.
func (u *UpdateRecordWithoutSelection) Returns(selection model.FieldSelection) bool {
	return u.Model.PrimaryIdentifier().Equal(selection)
}

func (u *UpdateRecordWithoutSelection) GetFilter() (filter.Expression, bool) {
	return u.RecordFilter.Filter, u.RecordFilter.Filter != nil
}

func (u *UpdateRecordWithoutSelection) SetFilter(f filter.Expression) {
	u.RecordFilter.Filter = f
}

func (u *UpdateRecordWithoutSelection) SetSelectors(selectors []model.SelectionResult) {
	u.RecordFilter.Selectors = selectors
}

func (u *UpdateRecordWithoutSelection) InjectResultIntoArgs(result model.SelectionResult) {
	for _, item := range result {
		u.Args.Insert(item.Field, item.Value)
	}
	u.Args.UpdateDatetimes(u.Model)
}

func (u *UpdateRecordWithoutSelection) String() string {
	return fmt.Sprintf("UpdateRecord(model: %s, without selection, filter: %s)",
		u.Model.Name(), filter.Describe(u.RecordFilter.Combined()))
}

func (u *UpdateRecordWithoutSelection) Graphviz() string {
	return fmt.Sprintf("UpdateRecord(model: %s)", u.Model.Name())
}

// UpdateManyRecords updates every row matching RecordFilter with Args.
type UpdateManyRecords struct {
	Model        model.Model
	RecordFilter model.RecordFilter
	Args         model.WriteArgs
}

func (*UpdateManyRecords) isNode() {}

func (u *UpdateManyRecords) OwnerModel() model.Model { return u.Model }

// Returns implements Returner: true iff selection equals the model's
// primary identifier.
func (u *UpdateManyRecords) Returns(selection model.FieldSelection) bool {
	return u.Model.PrimaryIdentifier().Equal(selection)
}

func (u *UpdateManyRecords) GetFilter() (filter.Expression, bool) {
	return u.RecordFilter.Filter, u.RecordFilter.Filter != nil
}

func (u *UpdateManyRecords) SetFilter(f filter.Expression) {
	u.RecordFilter.Filter = f
}

func (u *UpdateManyRecords) SetSelectors(selectors []model.SelectionResult) {
	u.RecordFilter.Selectors = selectors
}

func (u *UpdateManyRecords) InjectResultIntoArgs(result model.SelectionResult) {
	for _, item := range result {
		u.Args.Insert(item.Field, item.Value)
	}
	u.Args.UpdateDatetimes(u.Model)
}

func (u *UpdateManyRecords) String() string {
	return fmt.Sprintf("UpdateManyRecords(model: %s, args: %d field(s), filter: %s)",
		u.Model.Name(), u.Args.Len(), filter.Describe(u.RecordFilter.Combined()))
}

func (u *UpdateManyRecords) Graphviz() string {
	return fmt.Sprintf("UpdateManyRecords(model: %s)", u.Model.Name())
}
