// Command fontbake pre-renders fonts into glyph tables and atlas pages that
// the font cache loads without rasterizing.
//
// Usage:
//
//	fontbake [flags] font...
//
// Each font is registered at -size points. Glyph tables are written to
// <fonts dir>/<name>_<size>.dat and pages to <fonts dir>/<name>_<n>_<size>.tga
// below the write directory.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/fontcache"
	"github.com/gogpu/fontcache/raster"
	"github.com/gogpu/fontcache/texture"
	"github.com/gogpu/fontcache/vfs"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		base      = flag.String("base", ".", "base directory holding fonts and pk3 archives")
		writeDir  = flag.String("write", "", "directory receiving generated files (default: base)")
		size      = flag.Int("size", 12, "point size")
		engine    = flag.String("engine", "", "rasterizer: "+strings.Join(raster.Engines(), ", "))
		fallbacks = flag.String("fallback", "", "comma separated fallback font files")
		system    = flag.Bool("system", true, "search the platform font directories")
		noDefault = flag.Bool("no-default-fallbacks", false, "skip the built-in fallback font groups")
		glyphs    = flag.String("glyphs", "", "text whose glyphs are rendered for every font")
		list      = flag.Bool("list", false, "print registered fonts and fallbacks")
		listSys   = flag.Bool("list-system", false, "print the fonts found in the platform font directories")
		spirv     = flag.String("spirv", "", "write the compiled glyph shader to this file")
		debug     = flag.Int("debug", 0, "font debug level (0-3)")
		useGPU    = flag.Bool("gpu", false, "upload pages to a GPU device when one is available")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug > 0 {
		level = slog.LevelDebug
	}
	fontcache.SetLogger(newLogger(level))

	if *spirv != "" {
		if err := writeShader(*spirv); err != nil {
			log.Printf("fontbake: %v", err)
			return 1
		}
	}
	if flag.NArg() == 0 && !*list && !*listSys {
		if *spirv == "" {
			flag.Usage()
			return 2
		}
		return 0
	}

	fsys, err := vfs.OpenDir(*base, vfs.WithWriteDir(*writeDir), vfs.WithSystemFonts(*system))
	if err != nil {
		log.Printf("fontbake: %v", err)
		return 1
	}
	defer fsys.Close()

	opts := []fontcache.Option{fontcache.WithFS(fsys)}
	if *useGPU {
		backend, release, err := openGPUBackend()
		if err != nil {
			fontcache.Logger().Warn("fontbake: using memory textures", "err", err)
		} else {
			defer release()
			opts = append(opts, fontcache.WithBackend(backend))
		}
	}

	if *listSys {
		for _, file := range fsys.SystemFonts() {
			fmt.Println(file)
		}
	}

	cfg := fontcache.DefaultConfig()
	cfg.SaveFontData = true
	cfg.Engine = *engine
	cfg.DebugLevel = *debug
	if *noDefault {
		cfg.EngineFallbacks = false
		cfg.PlatformFallbacks = false
		cfg.UnicodeFallbacks = false
	}
	if *fallbacks != "" {
		cfg.FallbackFonts = strings.Split(*fallbacks, ",")
	}

	m, err := fontcache.NewManager(cfg, opts...)
	if err != nil {
		log.Printf("fontbake: %v", err)
		return 1
	}
	defer m.Close()

	failed := false
	for _, name := range flag.Args() {
		f, err := m.Register(name, *size)
		if err != nil {
			log.Printf("fontbake: %v", err)
			failed = true
			continue
		}
		for _, r := range *glyphs {
			if _, err := m.Glyph(f, r); err != nil {
				log.Printf("fontbake: %s %U: %v", name, r, err)
			}
		}
		fmt.Printf("%s -> %s (scale %.3f)\n", name, f.Name, f.GlyphScale)
	}

	if *list {
		printList(m)
	}
	if failed {
		return 1
	}
	return 0
}

// newLogger returns a text logger on terminals and a JSON logger otherwise.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func printList(m *fontcache.Manager) {
	for _, f := range m.FontList() {
		fmt.Printf("%d  %s  %s  %d  extra glyphs: %d\n",
			f.Index+1, f.Name, f.RegisterName, f.PointSize, f.ExtraGlyphs)
	}
	for _, name := range m.Fallbacks() {
		fmt.Printf("fallback: %s\n", name)
	}
	s := m.Stats()
	fmt.Printf("%d glyphs rasterized, %d pages\n", s.Rasterized, s.Pages)
}

func writeShader(file string) error {
	words, err := texture.CompileGlyphShader()
	if err != nil {
		return err
	}
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return os.WriteFile(file, buf, 0o644)
}
