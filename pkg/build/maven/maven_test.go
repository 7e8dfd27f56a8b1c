package maven

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mainseq/pkg/errors"
)

const group = "com.example"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func aggregatorPOM(artifact string, modules ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<project>\n  <groupId>%s</groupId>\n  <artifactId>%s</artifactId>\n  <packaging>pom</packaging>\n  <modules>\n", group, artifact)
	for _, m := range modules {
		fmt.Fprintf(&b, "    <module>%s</module>\n", m)
	}
	b.WriteString("  </modules>\n</project>\n")
	return b.String()
}

// leafPOM inherits its groupId from the parent and depends on siblings.
func leafPOM(artifact string, siblings ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<project>\n  <parent>\n    <groupId>%s</groupId>\n    <artifactId>parent</artifactId>\n  </parent>\n  <artifactId>%s</artifactId>\n  <dependencies>\n", group, artifact)
	for _, s := range siblings {
		fmt.Fprintf(&b, "    <dependency>\n      <groupId>${project.groupId}</groupId>\n      <artifactId>%s</artifactId>\n    </dependency>\n", s)
	}
	b.WriteString("    <dependency>\n      <groupId>org.slf4j</groupId>\n      <artifactId>slf4j-api</artifactId>\n    </dependency>\n")
	b.WriteString("  </dependencies>\n</project>\n")
	return b.String()
}

// writeEightModuleReactor lays out module1..module8 where 1-3 depend on 4,
// 4 depends on 5, and 5 depends on 6-8.
func writeEightModuleReactor(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent",
		"module1", "module2", "module3", "module4", "module5", "module6", "module7", "module8"))

	deps := map[string][]string{
		"module1": {"module4"},
		"module2": {"module4"},
		"module3": {"module4"},
		"module4": {"module5"},
		"module5": {"module6", "module7", "module8"},
	}
	for i := 1; i <= 8; i++ {
		m := fmt.Sprintf("module%d", i)
		writeFile(t, filepath.Join(dir, m, "pom.xml"), leafPOM(m, deps[m]...))
	}
	return dir
}

func TestBuilderSupports(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Builder{}.Supports(dir))

	writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent"))
	assert.True(t, Builder{}.Supports(dir))
	assert.Equal(t, "maven", Builder{}.Name())
}

func TestBuildEightModuleReactor(t *testing.T) {
	dir := writeEightModuleReactor(t)

	g, err := Builder{}.Build(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"module1", "module2", "module3", "module4",
		"module5", "module6", "module7", "module8",
	}, g.IDs())
	assert.Equal(t, []string{"module4"}, g.Dependencies("module1"))
	assert.Equal(t, []string{"module6", "module7", "module8"}, g.Dependencies("module5"))
	assert.Empty(t, g.Dependencies("module8"))

	c, ok := g.Component("module4")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "module4"), c.Dir)
	assert.Equal(t, []string{filepath.Join(dir, "module4", "src", "main", "java")}, c.SourceRoots)
}

func TestBuildNestedAggregators(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent", "services", "core"))
	writeFile(t, filepath.Join(dir, "services", "pom.xml"), aggregatorPOM("services", "api", "worker"))
	writeFile(t, filepath.Join(dir, "services", "api", "pom.xml"), leafPOM("api", "core"))
	writeFile(t, filepath.Join(dir, "services", "worker", "pom.xml"), leafPOM("worker", "core", "api"))
	writeFile(t, filepath.Join(dir, "core", "pom.xml"), leafPOM("core"))

	g, err := Builder{}.Build(context.Background(), dir)
	require.NoError(t, err)

	// The services aggregator is walked but is not a component.
	assert.Equal(t, []string{"api", "worker", "core"}, g.IDs())
	assert.False(t, g.Resolve("services"))
	assert.Equal(t, []string{"core", "api"}, g.Dependencies("worker"))
}

func TestBuildKeepsUndeclaredSiblingDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent", "app"))
	writeFile(t, filepath.Join(dir, "app", "pom.xml"), leafPOM("app", "legacy-client"))

	g, err := Builder{}.Build(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"legacy-client"}, g.Dependencies("app"))
	assert.False(t, g.Resolve("legacy-client"))
}

func TestBuildSourceDirectoryAndName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent", "lib"))
	writeFile(t, filepath.Join(dir, "lib", "pom.xml"), `<project>
  <groupId>com.example</groupId>
  <artifactId>lib</artifactId>
  <name>Shared Library</name>
  <build>
    <sourceDirectory>${project.basedir}/src/java</sourceDirectory>
  </build>
</project>`)

	g, err := Builder{}.Build(context.Background(), dir)
	require.NoError(t, err)

	c, ok := g.Component("lib")
	require.True(t, ok)
	assert.Equal(t, "Shared Library", c.DisplayName())
	assert.Equal(t, []string{filepath.Join(dir, "lib", "src", "java")}, c.SourceRoots)
}

func TestBuildModuleListedTwice(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent", "core", "./core"))
	writeFile(t, filepath.Join(dir, "core", "pom.xml"), leafPOM("core"))

	g, err := Builder{}.Build(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
}

func TestBuildSingleModuleProjectIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pom.xml"), leafPOM("standalone"))

	g, err := Builder{}.Build(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
		code  errors.Code
	}{
		{
			name:  "no root pom",
			setup: func(*testing.T, string) {},
			code:  errors.ErrCodeFileNotFound,
		},
		{
			name: "missing module pom",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent", "ghost"))
			},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "malformed module pom",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent", "bad"))
				writeFile(t, filepath.Join(dir, "bad", "pom.xml"), "<project><artifactId>bad</artifactId>")
			},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "absolute module path",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent", "/etc/module"))
			},
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name: "missing artifactId",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "pom.xml"), aggregatorPOM("parent", "anon"))
				writeFile(t, filepath.Join(dir, "anon", "pom.xml"), "<project><groupId>com.example</groupId></project>")
			},
			code: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			_, err := Builder{}.Build(context.Background(), dir)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "error: %v", err)
		})
	}
}

func TestInternalDependencies(t *testing.T) {
	pom := &pomProject{
		GroupID: "com.example",
		Parent:  &pomParent{GroupID: "com.example"},
		Dependencies: []pomDependency{
			{GroupID: "com.example", ArtifactID: "a"},
			{GroupID: "org.other", ArtifactID: "b"},
			{GroupID: "${project.parent.groupId}", ArtifactID: "c", Scope: "test"},
			{GroupID: " com.example ", ArtifactID: " d "},
			{GroupID: "com.example"},
		},
	}

	assert.Equal(t, []string{"a", "c", "d"}, pom.internalDependencies())
}
