package maven

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mainseq/pkg/errors"
)

const (
	pomFile           = "pom.xml"
	defaultSourceRoot = "src/main/java"
)

type pomProject struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Name         string          `xml:"name"`
	Packaging    string          `xml:"packaging"`
	Parent       *pomParent      `xml:"parent"`
	Modules      []string        `xml:"modules>module"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Build        pomBuild        `xml:"build"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Scope      string `xml:"scope"`
}

type pomBuild struct {
	SourceDirectory string `xml:"sourceDirectory"`
}

// readPOM parses dir/pom.xml and fills in the inherited groupId.
func readPOM(dir string) (*pomProject, error) {
	path := filepath.Join(dir, pomFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "module %s has no %s", dir, pomFile)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}

	var pom pomProject
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}

	pom.GroupID = strings.TrimSpace(pom.GroupID)
	pom.ArtifactID = strings.TrimSpace(pom.ArtifactID)
	pom.Name = strings.TrimSpace(pom.Name)
	if pom.GroupID == "" && pom.Parent != nil {
		pom.GroupID = strings.TrimSpace(pom.Parent.GroupID)
	}
	if pom.ArtifactID == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s has no artifactId", path)
	}
	return &pom, nil
}

// isAggregator reports whether the pom declares child modules.
func (p *pomProject) isAggregator() bool { return len(p.Modules) > 0 }

// internalDependencies returns the artifactIds of dependencies sharing the
// project's groupId, in declaration order.
func (p *pomProject) internalDependencies() []string {
	var deps []string
	for _, d := range p.Dependencies {
		group := p.interpolate(strings.TrimSpace(d.GroupID))
		if group != p.GroupID {
			continue
		}
		if id := strings.TrimSpace(d.ArtifactID); id != "" {
			deps = append(deps, id)
		}
	}
	return deps
}

// interpolate resolves the groupId properties commonly used for sibling
// modules.
func (p *pomProject) interpolate(s string) string {
	switch s {
	case "${project.groupId}", "${pom.groupId}", "${groupId}":
		return p.GroupID
	case "${project.parent.groupId}":
		if p.Parent != nil {
			return strings.TrimSpace(p.Parent.GroupID)
		}
	}
	return s
}

// sourceRoot returns the compile source directory for a module in dir.
func (p *pomProject) sourceRoot(dir string) string {
	src := strings.TrimSpace(p.Build.SourceDirectory)
	for _, prefix := range []string{"${project.basedir}/", "${basedir}/"} {
		src = strings.TrimPrefix(src, prefix)
	}
	if src == "" {
		src = defaultSourceRoot
	}
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(dir, filepath.FromSlash(src))
}
