package vfs

import (
	"hash/crc32"
	"io/fs"
	"maps"
	"slices"
	"strings"
)

// Mem is an in-memory FS. Files added with AddPak behave as packaged files.
// The zero value is not usable; call NewMem.
type Mem struct {
	files  map[string][]byte
	paked  map[string]bool
	system map[string]string
}

// NewMem returns an empty in-memory file system.
func NewMem() *Mem {
	return &Mem{
		files:  make(map[string][]byte),
		paked:  make(map[string]bool),
		system: make(map[string]string),
	}
}

func memKey(name string) (string, error) {
	c, err := clean(name)
	if err != nil {
		return "", err
	}
	return strings.ToLower(c), nil
}

// AddPak stores data as a packaged file.
func (m *Mem) AddPak(name string, data []byte) {
	k, err := memKey(name)
	if err != nil {
		return
	}
	m.files[k] = data
	m.paked[k] = true
}

// AddSystem makes name resolvable through FindSystemFile as hostPath.
func (m *Mem) AddSystem(name, hostPath string) {
	m.system[strings.ToLower(name)] = hostPath
}

// ReadFile implements FS.
func (m *Mem) ReadFile(name string) ([]byte, error) {
	k, err := memKey(name)
	if err != nil {
		return nil, err
	}
	data, ok := m.files[k]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

// WriteFile implements FS.
func (m *Mem) WriteFile(name string, data []byte) error {
	k, err := memKey(name)
	if err != nil {
		return err
	}
	m.files[k] = slices.Clone(data)
	delete(m.paked, k)
	return nil
}

// Exists implements FS.
func (m *Mem) Exists(name string) bool {
	k, err := memKey(name)
	if err != nil {
		return false
	}
	_, ok := m.files[k]
	return ok
}

// InPak implements FS.
func (m *Mem) InPak(name string) (uint32, bool) {
	k, err := memKey(name)
	if err != nil || !m.paked[k] {
		return 0, false
	}
	return crc32.ChecksumIEEE(m.files[k]), true
}

// FindSystemFile implements FS.
func (m *Mem) FindSystemFile(name string) (string, error) {
	p, ok := m.system[strings.ToLower(name)]
	if !ok {
		return "", &fs.PathError{Op: "find", Path: name, Err: fs.ErrNotExist}
	}
	return p, nil
}

// Names returns all file names, sorted.
func (m *Mem) Names() []string {
	return slices.Sorted(maps.Keys(m.files))
}

var (
	_ FS = (*Dir)(nil)
	_ FS = (*Mem)(nil)
)
