// Package fontcache registers fonts for text rendering: it rasterizes a
// face's base glyph table into atlas pages, uploads the pages as textures,
// persists and reloads the result, and renders glyphs outside the base range
// on demand through a chain of fallback faces.
//
// # Quick Start
//
//	fsys, _ := vfs.OpenDir("baseq3")
//	m, err := fontcache.NewManager(fontcache.DefaultConfig(), fontcache.WithFS(fsys))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	f, err := m.Register("fonts/notosans-regular.ttf", 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, _ := m.Glyph(f, 'ж')
//
// # Resolution
//
// Register resolves a name in this order: the built-in bitmap fonts
// (q3tiny, q3small, q3big, q3giant), fonts already registered under the same
// cache key, a persisted glyph table, and finally live rasterization. Fonts
// are never evicted; Close releases all of them.
//
// # Concurrency
//
// A Manager is not safe for concurrent use. The package logger is.
//
// # Logging
//
// fontcache is silent by default. Use SetLogger to enable output.
package fontcache
