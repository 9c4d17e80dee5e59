package writeir

import (
	"fmt"

	"github.com/arllen133/writeir/model"
)

// ConnectRecords links ChildIDs to ParentID across RelationField. Neither
// connect nor disconnect ever returns a projection or accepts a filter —
// the rows to touch are already fully resolved by the time these nodes
// run.
type ConnectRecords struct {
	ParentID      *model.SelectionResult
	ChildIDs      []model.SelectionResult
	RelationField model.RelationField
}

func (*ConnectRecords) isNode() {}

// OwnerModel implements ModelOwner: the relation's home model.
func (c *ConnectRecords) OwnerModel() model.Model { return c.RelationField.Model() }

// Returns implements Returner: ConnectRecords never returns a projection.
func (c *ConnectRecords) Returns(model.FieldSelection) bool { return false }

func (c *ConnectRecords) String() string {
	return fmt.Sprintf("ConnectRecords(relation: %s, children: %d)", c.RelationField.Name(), len(c.ChildIDs))
}

func (c *ConnectRecords) Graphviz() string { return "ConnectRecords" }

// DisconnectRecords unlinks ChildIDs from ParentID across RelationField.
type DisconnectRecords struct {
	ParentID      *model.SelectionResult
	ChildIDs      []model.SelectionResult
	RelationField model.RelationField
}

func (*DisconnectRecords) isNode() {}

// OwnerModel implements ModelOwner: the relation's home model.
func (d *DisconnectRecords) OwnerModel() model.Model { return d.RelationField.Model() }

// Returns implements Returner: DisconnectRecords never returns a
// projection.
func (d *DisconnectRecords) Returns(model.FieldSelection) bool { return false }

func (d *DisconnectRecords) String() string {
	return fmt.Sprintf("DisconnectRecords(relation: %s, children: %d)", d.RelationField.Name(), len(d.ChildIDs))
}

func (d *DisconnectRecords) Graphviz() string { return "DisconnectRecords" }
