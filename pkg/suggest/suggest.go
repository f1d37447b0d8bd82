// Package suggest generates ready-to-paste annotation templates for
// undocumented modules.
package suggest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
)

// CommentStyle is the doc-comment convention of a source language.
type CommentStyle string

const (
	StyleGo         CommentStyle = "go"
	StyleRust       CommentStyle = "rust"
	StyleTypeScript CommentStyle = "typescript"
)

// DetectStyle picks a comment style from a project root's build files.
func DetectStyle(root string) (CommentStyle, bool) {
	switch {
	case exists(filepath.Join(root, "go.mod")):
		return StyleGo, true
	case exists(filepath.Join(root, "Cargo.toml")):
		return StyleRust, true
	case exists(filepath.Join(root, "package.json")):
		return StyleTypeScript, true
	}
	return "", false
}

// ParseStyle parses a language name into a comment style.
func ParseStyle(lang string) (CommentStyle, bool) {
	switch strings.ToLower(lang) {
	case "go", "golang":
		return StyleGo, true
	case "rust", "rs":
		return StyleRust, true
	case "typescript", "ts", "javascript", "js":
		return StyleTypeScript, true
	}
	return "", false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var entryFiles = map[string]bool{
	"doc.go": true, "main.go": true,
	"mod.rs": true, "lib.rs": true, "main.rs": true,
	"index.ts": true, "index.js": true,
	"__init__.py": true,
}

var sourceExts = []string{".go", ".rs", ".ts", ".js", ".py"}

// sourceRoots are directory names treated as the boundary between the
// project prefix and the module hierarchy when inferring levels.
var sourceRoots = map[string]bool{
	"src": true, "internal": true, "pkg": true, "lib": true,
}

// Annotation produces an annotation block for the given directory,
// with the level inferred from directory depth and a file table row
// for each source file found, holding TODO placeholders for the
// author to fill in.
func Annotation(dir string, style CommentStyle) string {
	level := InferLevel(dir)
	files := ScanSourceFiles(dir)
	name := moduleTitle(dir)

	var lines []string
	lines = append(lines,
		fmt.Sprintf("@c4 %s", level),
		"",
		fmt.Sprintf("# %s", name),
		"",
		"[TODO: describe this module's responsibility]",
	)

	if len(files) > 0 {
		lines = append(lines,
			"",
			"| File | Pattern | Purpose | Health |",
			"|------|---------|---------|--------|",
		)
		for _, f := range files {
			lines = append(lines, fmt.Sprintf("| `%s` | -- | [TODO] | active |", f))
		}
	}

	return renderComment(style, lines)
}

// InferLevel infers a C4 level from directory depth below the source
// root. One level down is a container, deeper is a component. Without
// a recognizable source root the directory defaults to container.
func InferLevel(dir string) ir.Level {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(dir)), "/")
	for i, part := range parts {
		if sourceRoots[part] {
			if len(parts)-i-1 <= 1 {
				return ir.LevelContainer
			}
			return ir.LevelComponent
		}
	}
	return ir.LevelContainer
}

// ScanSourceFiles lists the source files directly inside dir, sorted,
// excluding structural entry files.
func ScanSourceFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || entryFiles[entry.Name()] {
			continue
		}
		for _, ext := range sourceExts {
			if strings.HasSuffix(entry.Name(), ext) {
				files = append(files, entry.Name())
				break
			}
		}
	}
	sort.Strings(files)
	return files
}

func moduleTitle(dir string) string {
	name := filepath.Base(filepath.Clean(dir))
	if name == "." || name == "/" {
		name = "Module"
	}
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func renderComment(style CommentStyle, lines []string) string {
	var sb strings.Builder

	if style == StyleTypeScript {
		sb.WriteString("/**\n")
	}
	for _, line := range lines {
		sb.WriteString(commentLine(style, line))
		sb.WriteByte('\n')
	}
	if style == StyleTypeScript {
		sb.WriteString(" */\n")
	}
	return sb.String()
}

func commentLine(style CommentStyle, text string) string {
	switch style {
	case StyleRust:
		if text == "" {
			return "//!"
		}
		return "//! " + text
	case StyleTypeScript:
		if text == "" {
			return " *"
		}
		return " * " + text
	default:
		if text == "" {
			return "//"
		}
		return "// " + text
	}
}
