package vfs

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/flopp/go-findfont"
)

// Dir serves files from pak archives first, then from a write directory,
// then from a base directory.
type Dir struct {
	base   string
	write  string
	system bool
	paks   []*pak
}

type pak struct {
	path  string
	zr    *zip.ReadCloser
	files map[string]*zip.File
}

// DirOption configures a Dir.
type DirOption func(*Dir)

// WithWriteDir sets the directory that receives written files. By default
// files are written below the base directory.
func WithWriteDir(dir string) DirOption {
	return func(d *Dir) { d.write = dir }
}

// WithSystemFonts enables lookups in the platform font directories.
func WithSystemFonts(enabled bool) DirOption {
	return func(d *Dir) { d.system = enabled }
}

// OpenDir opens base and every *.pk3 and *.zip archive directly inside it.
// Archives are searched in reverse name order, so later archives override
// earlier ones.
func OpenDir(base string, opts ...DirOption) (*Dir, error) {
	d := &Dir{base: base}
	for _, opt := range opts {
		opt(d)
	}
	if d.write == "" {
		d.write = base
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("vfs: %w", err)
	}
	var names []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !e.IsDir() && (ext == ".pk3" || ext == ".zip") {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	slices.Reverse(names)
	for _, n := range names {
		if err := d.AddPak(filepath.Join(base, n)); err != nil {
			_ = d.Close()
			return nil, err
		}
	}
	return d, nil
}

// AddPak adds an archive with the lowest search priority.
func (d *Dir) AddPak(file string) error {
	zr, err := zip.OpenReader(file)
	if err != nil {
		return fmt.Errorf("vfs: open pak %s: %w", file, err)
	}
	p := &pak{path: file, zr: zr, files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		p.files[strings.ToLower(f.Name)] = f
	}
	d.paks = append(d.paks, p)
	return nil
}

// Paks returns the archive paths in search order.
func (d *Dir) Paks() []string {
	out := make([]string, len(d.paks))
	for i, p := range d.paks {
		out[i] = p.path
	}
	return out
}

func (d *Dir) pakFile(name string) *zip.File {
	key := strings.ToLower(name)
	for _, p := range d.paks {
		if f, ok := p.files[key]; ok {
			return f
		}
	}
	return nil
}

// ReadFile implements FS.
func (d *Dir) ReadFile(name string) ([]byte, error) {
	c, err := clean(name)
	if err != nil {
		return nil, err
	}
	if f := d.pakFile(c); f != nil {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("vfs: %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	for _, root := range d.roots() {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(c)))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("vfs: %w", err)
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func (d *Dir) roots() []string {
	if d.write == d.base {
		return []string{d.base}
	}
	return []string{d.write, d.base}
}

// WriteFile implements FS. Parent directories are created as needed.
func (d *Dir) WriteFile(name string, data []byte) error {
	c, err := clean(name)
	if err != nil {
		return err
	}
	p := filepath.Join(d.write, filepath.FromSlash(c))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("vfs: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("vfs: %w", err)
	}
	return nil
}

// Exists implements FS.
func (d *Dir) Exists(name string) bool {
	c, err := clean(name)
	if err != nil {
		return false
	}
	if d.pakFile(c) != nil {
		return true
	}
	for _, root := range d.roots() {
		if st, err := os.Stat(filepath.Join(root, filepath.FromSlash(c))); err == nil && !st.IsDir() {
			return true
		}
	}
	return false
}

// InPak implements FS.
func (d *Dir) InPak(name string) (uint32, bool) {
	c, err := clean(name)
	if err != nil {
		return 0, false
	}
	if f := d.pakFile(c); f != nil {
		return f.CRC32, true
	}
	return 0, false
}

// FindSystemFile implements FS.
func (d *Dir) FindSystemFile(name string) (string, error) {
	if !d.system {
		return "", ErrSystemLookupDisabled
	}
	p, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("vfs: %w", err)
	}
	return p, nil
}

// SystemFonts lists the font files in the platform font directories.
func (d *Dir) SystemFonts() []string {
	if !d.system {
		return nil
	}
	return findfont.List()
}

// Close closes all archives.
func (d *Dir) Close() error {
	var errs []error
	for _, p := range d.paks {
		errs = append(errs, p.zr.Close())
	}
	d.paks = nil
	return errors.Join(errs...)
}
