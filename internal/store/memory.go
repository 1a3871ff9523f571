package store

import "sync"

// Memory is an in-process Store with no persistence. Primarily for tests
// and one-shot CLI invocations that opt out of writing settings.
type Memory struct {
	mu     sync.Mutex
	values map[string]any
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]any)}
}

func (m *Memory) GetString(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key].(string)
	return v, ok
}

func (m *Memory) SetString(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *Memory) GetBool(key string) (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key].(bool)
	return v, ok
}

func (m *Memory) SetBool(key string, value bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *Memory) GetInt(key string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key].(int)
	return v, ok
}

func (m *Memory) SetInt(key string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}
