package model_test

import (
	"testing"
	"time"

	"github.com/arllen133/writeir/model"
	"github.com/stretchr/testify/assert"
)

func TestWriteArgsInsertAndGet(t *testing.T) {
	args := model.NewWriteArgs()
	name := model.FieldDescriptor{Name: "name", DBName: "name"}
	args.Insert(name, "Ada")

	v, ok := args.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Ada", v.Value)
	assert.Equal(t, 1, args.Len())
}

func TestWriteArgsInsertOverwrites(t *testing.T) {
	args := model.NewWriteArgs()
	name := model.FieldDescriptor{Name: "name", DBName: "name"}
	args.Insert(name, "Ada")
	args.Insert(name, "Grace")

	v, _ := args.Get("name")
	assert.Equal(t, "Grace", v.Value)
	assert.Equal(t, 1, args.Len())
}

func TestWriteArgsUpdateDatetimes(t *testing.T) {
	id := model.FieldDescriptor{Name: "id", DBName: "id"}
	updatedAt := model.FieldDescriptor{Name: "updatedAt", DBName: "updated_at", IsAutoUpdatedAt: true}
	m := model.NewModel("User", model.FieldSelection{id}, model.FieldSelection{id, updatedAt})

	args := model.NewWriteArgs()
	args.Insert(id, 42)

	before := time.Now()
	args.UpdateDatetimes(m)

	v, ok := args.Get("updated_at")
	assert.True(t, ok)
	refreshed, ok := v.Value.(time.Time)
	assert.True(t, ok)
	assert.False(t, refreshed.Before(before))
}

func TestWriteArgsRangePreservesOrder(t *testing.T) {
	args := model.NewWriteArgs()
	args.Insert(model.FieldDescriptor{Name: "a", DBName: "a"}, 1)
	args.Insert(model.FieldDescriptor{Name: "b", DBName: "b"}, 2)
	args.Insert(model.FieldDescriptor{Name: "c", DBName: "c"}, 3)

	var seen []string
	args.Range(func(dbName string, _ model.WriteArgsValue) bool {
		seen = append(seen, dbName)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}
