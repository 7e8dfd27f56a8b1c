package source

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Rule classifies the source files of one language.
type Rule struct {
	// Name identifies the rule in logs and errors.
	Name string
	// Extensions lists the file extensions handled, including the dot.
	Extensions []string
	// Boundary is a file name marking the root of a nested module.
	// Directories containing it are not scanned. Empty disables the check.
	Boundary string
	// Skip reports whether a matching file is ignored entirely.
	Skip func(name string) bool
	// IsAbstract reports whether src declares an abstract type.
	IsAbstract func(path string, src []byte) (bool, error)
}

// Matches reports whether the rule handles the file name.
func (r Rule) Matches(name string) bool {
	if !slices.Contains(r.Extensions, filepath.Ext(name)) {
		return false
	}
	return r.Skip == nil || !r.Skip(name)
}

const (
	javaAnnotations = `(?:@\w+(?:\([^)]*\))?\s+)*`
	javaModifiers   = `(?:(?:public|protected|private|static|final|sealed|non-sealed|strictfp)\s+)*`
)

var javaAbstractDecl = regexp.MustCompile(`(?m)^\s*` + javaAnnotations + javaModifiers +
	`(?:abstract\s+` + javaModifiers + `class|@?interface)\s+\w`)

// Java classifies .java files. A file is abstract when a line declares an
// abstract class, an interface or an annotation type.
var Java = Rule{
	Name:       "java",
	Extensions: []string{".java"},
	IsAbstract: func(_ string, src []byte) (bool, error) {
		return javaAbstractDecl.Match(src), nil
	},
}

// Go classifies non-test .go files. A file is abstract when it declares an
// interface type at package level.
var Go = Rule{
	Name:       "go",
	Extensions: []string{".go"},
	Boundary:   "go.mod",
	Skip: func(name string) bool {
		return strings.HasSuffix(name, "_test.go")
	},
	IsAbstract: declaresInterface,
}

func declaresInterface(path string, src []byte) (bool, error) {
	f, err := parser.ParseFile(token.NewFileSet(), path, src, parser.SkipObjectResolution)
	if err != nil {
		return false, err
	}
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok {
				if _, ok := ts.Type.(*ast.InterfaceType); ok {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

// DefaultRules returns the built-in rules.
func DefaultRules() []Rule {
	return []Rule{Java, Go}
}
