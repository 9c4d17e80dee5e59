// Package writeir implements the write-query intermediate representation:
// a closed, variant-based algebra describing every mutation a planner can
// express against a declared data model, together with the filter/selector
// manipulation protocol the planner uses to fuse parent and child
// mutations into a single execution DAG.
package writeir

import (
	"github.com/arllen133/writeir/filter"
	"github.com/arllen133/writeir/model"
)

// Node is the sealed tagged union of every Write-IR variant. The
// unexported marker method closes the set: no type outside this package
// can satisfy Node, which is what makes the capability interfaces below
// exhaustive by construction rather than by a runtime type switch with a
// panicking default arm.
type Node interface {
	isNode()
}

// ModelOwner is satisfied by every Node with exactly one owning Model.
// ExecuteRaw and QueryRaw do not implement it: their model is optional,
// per spec, and attempting to read it through the uniform ModelOf helper
// fails with ErrNotApplicable instead.
type ModelOwner interface {
	Node
	OwnerModel() model.Model
}

// FilterCapable is satisfied by nodes exposing the get-filter/set-filter
// protocol (C3): UpdateRecord, UpdateManyRecords, DeleteRecord,
// DeleteManyRecords.
type FilterCapable interface {
	Node
	GetFilter() (filter.Expression, bool)
	SetFilter(f filter.Expression)
}

// SelectorCapable is satisfied by nodes exposing set_selectors:
// UpdateRecord, UpdateManyRecords, DeleteRecord.
type SelectorCapable interface {
	Node
	SetSelectors(selectors []model.SelectionResult)
}

// ResultInjectable is satisfied by nodes exposing
// inject_result_into_args: CreateRecord, any UpdateRecord mode, and
// UpdateManyRecords.
type ResultInjectable interface {
	Node
	InjectResultIntoArgs(result model.SelectionResult)
}

// BatchInjectable is satisfied by CreateManyRecords alone:
// inject_result_into_all broadcasts one result across every element of
// the args batch.
type BatchInjectable interface {
	Node
	InjectResultIntoAll(result model.SelectionResult)
}

// Returner is satisfied by every Node; Returns never fails.
type Returner interface {
	Node
	Returns(selection model.FieldSelection) bool
}

// Renderable is satisfied by every Node; it supplies the human-readable
// renderings used for planner debugging and DAG dumps.
type Renderable interface {
	Node
	String() string
	Graphviz() string
}

// ModelOf returns the owning model of n, or fails with ErrNotApplicable
// if n does not implement ModelOwner (ExecuteRaw, QueryRaw without a
// model).
func ModelOf(n Node) (model.Model, error) {
	mo, ok := n.(ModelOwner)
	if !ok {
		return model.Model{}, ErrNotApplicable
	}
	return mo.OwnerModel(), nil
}

// GetFilter returns the current filter of n, or fails with
// ErrNotApplicable if n is not FilterCapable. The boolean result mirrors
// the Rust `Option<&mut Filter>`: false means no filter expression is
// currently set (for DeleteRecord, this includes an absent RecordFilter).
func GetFilter(n Node) (filter.Expression, bool, error) {
	fc, ok := n.(FilterCapable)
	if !ok {
		return nil, false, ErrNotApplicable
	}
	f, present := fc.GetFilter()
	return f, present, nil
}

// SetFilter installs f as the filter of n, or fails with
// ErrNotApplicable if n is not FilterCapable.
func SetFilter(n Node, f filter.Expression) error {
	fc, ok := n.(FilterCapable)
	if !ok {
		return ErrNotApplicable
	}
	fc.SetFilter(f)
	return nil
}

// SetSelectors installs selectors on n if it is SelectorCapable; a no-op
// on every other variant, per spec.md §4.1.
func SetSelectors(n Node, selectors []model.SelectionResult) {
	if sc, ok := n.(SelectorCapable); ok {
		sc.SetSelectors(selectors)
	}
}

// InjectResultIntoArgs injects result into n's args if n is
// ResultInjectable; a no-op on every other variant, per spec.md §4.1.
func InjectResultIntoArgs(n Node, result model.SelectionResult) {
	if ri, ok := n.(ResultInjectable); ok {
		ri.InjectResultIntoArgs(result)
	}
}

// Returns reports whether n's post-execution output can satisfy
// selection. Every Node implements Returner, so this never fails.
func Returns(n Node, selection model.FieldSelection) bool {
	return n.(Returner).Returns(selection)
}
