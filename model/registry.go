package model

import (
	"fmt"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Model)
)

// Register adds m to the process-wide model registry, keyed by its name.
// Registering the same name twice overwrites the earlier definition.
func Register(m Model) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[m.Name()] = m
}

// Load returns the model registered under name, panicking if none was
// registered. The planner is expected to register every model the schema
// declares at boot, so a missing entry here is a programmer error, not a
// recoverable condition.
func Load(name string) Model {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[name]
	if !ok {
		panic(fmt.Sprintf("model: no model registered for %q", name))
	}
	return m
}

// Lookup is the non-panicking form of Load.
func Lookup(name string) (Model, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	m, ok := registry[name]
	return m, ok
}
