package writeir

import (
	"fmt"

	"github.com/arllen133/writeir/model"
)

// CreateRecord inserts a single row and projects selected_fields back out
// of it (commonly just the primary identifier, to feed a dependent node).
type CreateRecord struct {
	Name           string
	Model          model.Model
	Args           model.WriteArgs
	SelectedFields model.FieldSelection
	SelectionOrder []string
}

func (*CreateRecord) isNode() {}

// OwnerModel implements ModelOwner.
func (c *CreateRecord) OwnerModel() model.Model { return c.Model }

// Returns implements Returner: true iff selection equals the model's
// primary identifier.
func (c *CreateRecord) Returns(selection model.FieldSelection) bool {
	return c.Model.PrimaryIdentifier().Equal(selection)
}

// InjectResultIntoArgs implements ResultInjectable.
func (c *CreateRecord) InjectResultIntoArgs(result model.SelectionResult) {
	for _, item := range result {
		c.Args.Insert(item.Field, item.Value)
	}
	c.Args.UpdateDatetimes(c.Model)
}

func (c *CreateRecord) String() string {
	return fmt.Sprintf("CreateRecord(model: %s, args: %d field(s))", c.Model.Name(), c.Args.Len())
}

func (c *CreateRecord) Graphviz() string {
	return fmt.Sprintf("CreateRecord(model: %s)", c.Model.Name())
}

// CreateManyRecords inserts a batch of rows in one statement; it never
// returns a projection (spec.md §4.1), only a row count.
type CreateManyRecords struct {
	Model          model.Model
	Args           []model.WriteArgs
	SkipDuplicates bool
}

func (*CreateManyRecords) isNode() {}

// OwnerModel implements ModelOwner.
func (c *CreateManyRecords) OwnerModel() model.Model { return c.Model }

// Returns implements Returner: CreateManyRecords never returns a
// projection.
func (c *CreateManyRecords) Returns(model.FieldSelection) bool { return false }

// InjectResultIntoAll implements BatchInjectable: applies the same
// injection independently to every element of Args. This is only
// meaningful when result is a parent identifier shared by all children;
// the planner guarantees this usage, the node does not validate it.
func (c *CreateManyRecords) InjectResultIntoAll(result model.SelectionResult) {
	for i := range c.Args {
		for _, item := range result {
			c.Args[i].Insert(item.Field, item.Value)
		}
		c.Args[i].UpdateDatetimes(c.Model)
	}
}

func (c *CreateManyRecords) String() string {
	return fmt.Sprintf("CreateManyRecords(model: %s, rows: %d)", c.Model.Name(), len(c.Args))
}

func (c *CreateManyRecords) Graphviz() string {
	return fmt.Sprintf("CreateManyRecord(model: %s)", c.Model.Name())
}
