// Package model describes the data-model entities the write-IR operates
// over: models, their field selections, and the typed edges between them.
// A Model is supplied by an external schema registry (C1 in the design) —
// this package only carries the shape the core needs, not a parser.
package model

// FieldDescriptor identifies a single scalar field of a Model.
type FieldDescriptor struct {
	// Name is the model-level field name, as the planner refers to it.
	Name string
	// DBName is the datasource-facing column/property name. It may differ
	// from Name when the schema declares an explicit @map.
	DBName string
	// IsAutoUpdatedAt marks a field the datasource refreshes automatically
	// on every write (e.g. an `updatedAt` timestamp).
	IsAutoUpdatedAt bool
}

// FieldSelection is an ordered, non-empty set of fields of one model.
type FieldSelection []FieldDescriptor

// Contains reports whether the selection already includes a field with
// the given name.
func (fs FieldSelection) Contains(name string) bool {
	for _, f := range fs {
		if f.Name == name {
			return true
		}
	}
	return false
}

// IsSupersetOf reports whether fs contains every field of other, by field
// identity (name), ignoring order.
func (fs FieldSelection) IsSupersetOf(other FieldSelection) bool {
	for _, f := range other {
		if !fs.Contains(f.Name) {
			return false
		}
	}
	return true
}

// Equal reports whether fs and other describe the same set of fields,
// ignoring order.
func (fs FieldSelection) Equal(other FieldSelection) bool {
	return fs.IsSupersetOf(other) && other.IsSupersetOf(fs)
}

// Model is a named record type with a declared primary identifier: an
// ordered, non-empty field selection uniquely identifying its rows.
type Model struct {
	name              string
	primaryIdentifier FieldSelection
	fields            FieldSelection
}

// NewModel constructs a Model. primaryIdentifier must be non-empty; fields
// should include every scalar field the model declares, including the
// primary identifier's own fields.
func NewModel(name string, primaryIdentifier FieldSelection, fields FieldSelection) Model {
	return Model{name: name, primaryIdentifier: primaryIdentifier, fields: fields}
}

// Name returns the model's name.
func (m Model) Name() string { return m.name }

// PrimaryIdentifier returns the model's primary identifier selection.
func (m Model) PrimaryIdentifier() FieldSelection { return m.primaryIdentifier }

// Fields returns every scalar field declared on the model.
func (m Model) Fields() FieldSelection { return m.fields }

// AutoUpdatedAtFields returns the subset of Fields marked IsAutoUpdatedAt.
func (m Model) AutoUpdatedAtFields() FieldSelection {
	var out FieldSelection
	for _, f := range m.fields {
		if f.IsAutoUpdatedAt {
			out = append(out, f)
		}
	}
	return out
}

// RelationField is a typed edge between two models: the model on which it
// is declared, and the model it points to.
type RelationField struct {
	name        string
	model       Model
	relatedName string
}

// NewRelationField constructs a RelationField declared on model, pointing
// at the model named relatedName.
func NewRelationField(name string, model Model, relatedName string) RelationField {
	return RelationField{name: name, model: model, relatedName: relatedName}
}

// Name returns the relation field's name.
func (r RelationField) Name() string { return r.name }

// Model returns the model the relation field is declared on — the "home"
// model used when a Write-IR node only carries a RelationField.
func (r RelationField) Model() Model { return r.model }

// RelatedModelName returns the name of the model on the other side of the
// relation.
func (r RelationField) RelatedModelName() string { return r.relatedName }
