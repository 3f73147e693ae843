package fontcache

import (
	"errors"

	"golang.org/x/text/cases"
)

// registry is the bounded set of registered fonts, keyed by case-folded
// cache key. Fonts are never evicted.
type registry struct {
	fonts []*Font
	byKey map[string]*Font
	limit int
	fold  cases.Caser
}

func newRegistry(limit int) *registry {
	return &registry{
		byKey: make(map[string]*Font),
		limit: limit,
		fold:  cases.Fold(),
	}
}

func (r *registry) key(name string) string {
	return r.fold.String(name)
}

func (r *registry) lookup(name string) (*Font, bool) {
	f, ok := r.byKey[r.key(name)]
	return f, ok
}

func (r *registry) full() bool {
	return len(r.fonts) >= r.limit
}

// add appends f and assigns its ID.
func (r *registry) add(f *Font) error {
	if r.full() {
		return ErrResourceExhausted
	}
	f.ID = len(r.fonts)
	r.fonts = append(r.fonts, f)
	r.byKey[r.key(f.Name)] = f
	return nil
}

func (r *registry) get(id int) (*Font, bool) {
	if id < 0 || id >= len(r.fonts) {
		return nil, false
	}
	return r.fonts[id], true
}

func (r *registry) len() int { return len(r.fonts) }

func (r *registry) all() []*Font {
	return append([]*Font(nil), r.fonts...)
}

func (r *registry) close() error {
	var errs []error
	for _, f := range r.fonts {
		if err := f.close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.fonts = nil
	clear(r.byKey)
	return errors.Join(errs...)
}
