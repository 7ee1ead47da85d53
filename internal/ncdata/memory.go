package ncdata

import (
	"fmt"
	"sync"
)

// Memory is an in-memory Opener. Each path maps to groups of named
// variables. It counts opens and closes so callers can verify that every
// dataset they open is released.
type Memory struct {
	mu     sync.Mutex
	files  map[string]map[string]map[string]*Variable
	opened int
	closed int
}

// NewMemory creates an empty in-memory opener.
func NewMemory() *Memory {
	return &Memory{files: make(map[string]map[string]map[string]*Variable)}
}

// Put stores values for group/name in the file at path.
func (m *Memory) Put(path, group, name string, values any) *Memory {
	return m.PutVariable(path, group, name, Variable{Values: values})
}

// PutVariable stores v, including its fill value, for group/name in the
// file at path.
func (m *Memory) PutVariable(path, group, name string, v Variable) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()

	groups, ok := m.files[path]
	if !ok {
		groups = make(map[string]map[string]*Variable)
		m.files[path] = groups
	}
	vars, ok := groups[group]
	if !ok {
		vars = make(map[string]*Variable)
		groups[group] = vars
	}
	vars[name] = &v
	return m
}

// Open implements Opener.
func (m *Memory) Open(path string) (Dataset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	groups, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: failed to open %q: no such file", ErrDataset, path)
	}
	m.opened++
	return &memoryDataset{owner: m, path: path, groups: groups}, nil
}

// Outstanding returns the number of datasets opened and not yet closed.
func (m *Memory) Outstanding() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opened - m.closed
}

type memoryDataset struct {
	owner  *Memory
	path   string
	groups map[string]map[string]*Variable
}

func (d *memoryDataset) Variable(group, name string) (*Variable, error) {
	vars, ok := d.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: group %q not found in %q", ErrDataset, group, d.path)
	}
	v, ok := vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: variable %s/%s not found in %q", ErrDataset, group, name, d.path)
	}
	out := *v
	return &out, nil
}

func (d *memoryDataset) Close() {
	d.owner.mu.Lock()
	defer d.owner.mu.Unlock()
	d.owner.closed++
}
