// Copyright 2018 The Gimli Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gallery builds the documentation sidebar gallery: it scans example
// and tutorial sources, extracts their first section title and writes an
// HTML carousel with one random active slide
package gallery

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// Config holds the gallery builder options
type Config struct {
	SrcDir   string // directory containing examples/ and tutorials/
	OutDir   string // output directory; the carousel goes to OutDir/_templates/gallery.html
	BuildDir string // base url for published builds; empty for local builds
	Seed     int    // seed for the random active slide; 0 uses the clock
}

// Item is one gallery entry
type Item struct {
	Path   string // source file path
	URL    string // html link target
	Img    string // thumbnail image path
	Title  string // extracted section title
	Warned bool   // title came from the line-scan fallback
}

// titles look like "Introduction\n============\n"
var rstTitle = regexp.MustCompile(`(?m)^(.+)\n[-=]+\n`)

// ExtractTitle returns the first RST section title of text. When the heading
// pattern does not match anywhere, a line-scan fallback returns the line
// preceding the first underline-ish line (or "unknown") and warned is true so
// the caller can report the degraded lookup
func ExtractTitle(text string) (title string, warned bool) {
	if g := rstTitle.FindStringSubmatch(text); g != nil {
		return strings.TrimRight(g[1], " \t\r"), false
	}
	title = "unknown"
	prev := "unknown"
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "---") || strings.Contains(line, "===") {
			title = strings.TrimRight(prev, " \t\r")
			break
		}
		prev = line
	}
	return title, true
}

// Scan collects example and tutorial files matching */*plot*.go under
// SrcDir/examples and SrcDir/tutorials, skipping "dev" entries, and extracts
// their titles. Unreadable directories yield an empty list, not an error
func Scan(cfg Config) (items []Item) {
	imgDir := filepath.Join(cfg.BuildDir, "_images")
	scan := func(sub, outSub string) {
		pattern := filepath.Join(cfg.SrcDir, sub, "*", "*plot*.go")
		matches, _ := filepath.Glob(pattern)
		for _, fn := range matches {
			if strings.Contains(fn, "dev") {
				continue
			}
			title, warned := "unknown", true
			if b, err := os.ReadFile(fn); err == nil {
				title, warned = ExtractTitle(stripComments(string(b)))
			}
			name := filepath.Base(fn)
			page := strings.Replace(name, ".go", ".html", 1)
			thumb := "sphx_glr_" + strings.Replace(name, ".go", "_thumb.png", 1)
			items = append(items, Item{
				Path:   fn,
				URL:    filepath.Join(cfg.BuildDir, outSub, filepath.Base(filepath.Dir(fn)), page),
				Img:    filepath.Join(imgDir, thumb),
				Title:  title,
				Warned: warned,
			})
		}
	}
	scan("examples", "_examples_auto")
	scan("tutorials", "_tutorials_auto")
	return
}

// stripComments removes leading line-comment markers so titles inside Go doc
// comments match the RST heading pattern
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		t := strings.TrimPrefix(strings.TrimLeft(line, " \t"), "//")
		lines[i] = strings.TrimPrefix(t, " ")
	}
	return strings.Join(lines, "\n")
}

// carousel templates
const (
	htmlTop = `<!-- This file is automatically generated by mkgallery -->
<div id="sidebar_example_gallery" class="carousel slide">
<div class="carousel-inner">`

	htmlBottom = `</div>
<a class="carousel-control left" href="#sidebar_example_gallery" data-slide="prev">&lsaquo;</a>
<a class="carousel-control right" href="#sidebar_example_gallery" data-slide="next">&rsaquo;</a>
</div>`

	htmlItem = `<div class="%s">
<a href="%s">
<img src="%s">
<div class="carousel-caption">
%s
</div>
</a>
</div>`
)

// Build renders the carousel with the slide at activeIdx marked active.
// An empty item list yields an empty carousel
func Build(items []Item, activeIdx int) string {
	parts := []string{htmlTop}
	for i, it := range items {
		class := "item"
		if i == activeIdx {
			class = "active item"
		}
		parts = append(parts, io.Sf(htmlItem, class, it.URL, it.Img, it.Title))
	}
	parts = append(parts, htmlBottom)
	return strings.Join(parts, "\n")
}

// BuildRandom renders the carousel with a randomly chosen active slide
func BuildRandom(items []Item, seed int) string {
	if len(items) == 0 {
		return Build(items, -1)
	}
	rnd.Init(seed)
	return Build(items, rnd.Int(0, len(items)-1))
}

// Write saves the carousel to OutDir/_templates/gallery.html, creating the
// directory if absent
func Write(cfg Config, html string) {
	io.WriteStringToFileD(filepath.Join(cfg.OutDir, "_templates"), "gallery.html", html)
}

// Make scans, builds and writes the gallery, reporting fallback titles with
// a warning. It returns the items for logging
func Make(cfg Config) (items []Item) {
	items = Scan(cfg)
	for _, it := range items {
		if it.Warned {
			io.Pfyel("problem reading section title in %s\n", it.Path)
		}
	}
	Write(cfg, BuildRandom(items, cfg.Seed))
	return
}
