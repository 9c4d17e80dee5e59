package model_test

import (
	"testing"

	"github.com/arllen133/writeir/model"
	"github.com/stretchr/testify/assert"
)

func userModel() model.Model {
	id := model.FieldDescriptor{Name: "id", DBName: "id"}
	name := model.FieldDescriptor{Name: "name", DBName: "name"}
	updatedAt := model.FieldDescriptor{Name: "updatedAt", DBName: "updated_at", IsAutoUpdatedAt: true}
	return model.NewModel("User", model.FieldSelection{id}, model.FieldSelection{id, name, updatedAt})
}

func TestFieldSelectionIsSupersetOf(t *testing.T) {
	id := model.FieldDescriptor{Name: "id"}
	email := model.FieldDescriptor{Name: "email"}
	name := model.FieldDescriptor{Name: "name"}

	wide := model.FieldSelection{id, email, name}
	narrow := model.FieldSelection{id, email}

	assert.True(t, wide.IsSupersetOf(narrow))
	assert.False(t, narrow.IsSupersetOf(wide))
}

func TestModelAutoUpdatedAtFields(t *testing.T) {
	m := userModel()
	auto := m.AutoUpdatedAtFields()
	assert.Len(t, auto, 1)
	assert.Equal(t, "updated_at", auto[0].DBName)
}

func TestRegistry(t *testing.T) {
	m := userModel()
	model.Register(m)

	loaded := model.Load("User")
	assert.Equal(t, "User", loaded.Name())

	_, ok := model.Lookup("DoesNotExist")
	assert.False(t, ok)
}

func TestRegistryLoadPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		model.Load("NeverRegistered")
	})
}
