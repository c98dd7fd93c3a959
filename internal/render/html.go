// Package render turns a sorted Markdown document into HTML for previewing.
//
// It uses github.com/yuin/goldmark. The sorting itself never parses
// Markdown; rendering is an output option only.
package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options controls HTML rendering.
type Options struct {
	// Extensions names the goldmark extensions to enable. Empty means gfm,
	// which includes task lists.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// HardWraps renders single newlines as <br>.
	HardWraps bool `yaml:"hardWraps" json:"hardWraps"`
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// KnownExtension reports whether name is a supported extension name.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[normalize(name)]
	return ok
}

// ExtensionNames returns the supported extension names, sorted.
func ExtensionNames() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HTML renders markdown to HTML.
func HTML(markdown []byte, opts Options) ([]byte, error) {
	engine := newEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

func newEngine(opts Options) goldmark.Markdown {
	engineOptions := []goldmark.Option{
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
	}
	if opts.HardWraps {
		engineOptions = append(engineOptions,
			goldmark.WithRendererOptions([]renderer.Option{html.WithHardWraps()}...))
	}
	return goldmark.New(engineOptions...)
}

// collectExtensions maps names to extenders, skipping unknown names and
// duplicates.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := normalize(name)
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
