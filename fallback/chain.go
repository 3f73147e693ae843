// Package fallback keeps the ordered list of secondary faces consulted when
// a font's own face has no glyph for a code point.
package fallback

import (
	"errors"

	"github.com/emirpasic/gods/lists/singlylinkedlist"

	"github.com/gogpu/fontcache/raster"
)

// Entry is one fallback face.
type Entry struct {
	Name string
	Face raster.Face
}

// Chain is an append-only list of fallback faces. Lookup walks the chain in
// the order faces were added. A Chain is not safe for concurrent use.
type Chain struct {
	list *singlylinkedlist.List
}

// New returns an empty chain.
func New() *Chain {
	return &Chain{list: singlylinkedlist.New()}
}

// Add appends face under name and returns its entry. The chain takes
// ownership of the face.
func (c *Chain) Add(name string, face raster.Face) *Entry {
	e := &Entry{Name: name, Face: face}
	c.list.Add(e)
	return e
}

// Len returns the number of faces in the chain.
func (c *Chain) Len() int { return c.list.Size() }

// First returns the first entry of the chain.
func (c *Chain) First() (*Entry, bool) {
	v, ok := c.list.Get(0)
	if !ok {
		return nil, false
	}
	return v.(*Entry), true
}

// Lookup returns the first entry whose face has a glyph for r.
func (c *Chain) Lookup(r rune) (*Entry, bool) {
	_, v := c.list.Find(func(_ int, v interface{}) bool {
		return v.(*Entry).Face.GlyphIndex(r) != 0
	})
	if v == nil {
		return nil, false
	}
	return v.(*Entry), true
}

// Names returns the entry names in lookup order.
func (c *Chain) Names() []string {
	names := make([]string, 0, c.list.Size())
	c.list.Each(func(_ int, v interface{}) {
		names = append(names, v.(*Entry).Name)
	})
	return names
}

// Close closes every face and empties the chain.
func (c *Chain) Close() error {
	var errs []error
	it := c.list.Iterator()
	for it.Next() {
		if err := it.Value().(*Entry).Face.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.list.Clear()
	return errors.Join(errs...)
}
