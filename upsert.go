package writeir

import (
	"fmt"

	"github.com/arllen133/writeir/model"
)

// NativeUpsert fuses a filter, a create payload, an update payload, and a
// read projection into a single atom: on databases supporting
// `INSERT ... ON CONFLICT ... RETURNING`, the planner emits this instead
// of an emulated read-then-write graph.
type NativeUpsert struct {
	Name           string
	Model          model.Model
	RecordFilter   model.RecordFilter
	Create         model.WriteArgs
	Update         model.WriteArgs
	SelectedFields model.FieldSelection
	SelectionOrder []string
}

func (*NativeUpsert) isNode() {}

func (u *NativeUpsert) OwnerModel() model.Model { return u.Model }

// Returns implements Returner: true iff selection equals the model's
// primary identifier.
func (u *NativeUpsert) Returns(selection model.FieldSelection) bool {
	return u.Model.PrimaryIdentifier().Equal(selection)
}

func (u *NativeUpsert) String() string {
	return fmt.Sprintf("Upsert(model: %s, create: %d field(s), update: %d field(s))",
		u.Model.Name(), u.Create.Len(), u.Update.Len())
}

func (u *NativeUpsert) Graphviz() string {
	return fmt.Sprintf("Upsert(model: %s)", u.Model.Name())
}

// NewNativeUpsert constructs the Upsert variant of the Write-IR, mirroring
// WriteQuery::native_upsert.
func NewNativeUpsert(
	name string,
	m model.Model,
	recordFilter model.RecordFilter,
	create model.WriteArgs,
	update model.WriteArgs,
	selectedFields model.FieldSelection,
	selectionOrder []string,
) *NativeUpsert {
	return &NativeUpsert{
		Name:           name,
		Model:          m,
		RecordFilter:   recordFilter,
		Create:         create,
		Update:         update,
		SelectedFields: selectedFields,
		SelectionOrder: selectionOrder,
	}
}
