package java

import (
	"encoding/xml"
	"path"
	"regexp"
	"strings"

	"github.com/matzehuels/depcheck/pkg/deps"
)

// POM extracts declarations from a Maven pom.xml.
type POM struct{}

func (POM) Type() string { return "pom.xml" }

func (POM) Supports(name string) bool {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return base == "pom.xml" || strings.HasSuffix(base, ".pom")
}

// Extract returns every dependency that declares a version. Managed
// dependencies follow the regular ones.
func (POM) Extract(text string) []deps.Library {
	var pom pomProject
	if err := xml.Unmarshal([]byte(text), &pom); err != nil {
		return nil
	}

	props := pom.propertyMap()
	all := append(pom.Dependencies, pom.Management...)

	var libs []deps.Library
	for _, d := range all {
		group := expand(strings.TrimSpace(d.GroupID), props)
		artifact := expand(strings.TrimSpace(d.ArtifactID), props)
		version := expand(strings.TrimSpace(d.Version), props)
		if group == "" || artifact == "" || version == "" {
			continue
		}
		libs = append(libs, deps.Library{GroupID: group, ArtifactID: artifact, Version: version})
	}
	return libs
}

var propertyRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expand substitutes ${name} references. Unknown names stay literal.
func expand(s string, props map[string]string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
		if v, ok := props[ref[2:len(ref)-1]]; ok {
			return v
		}
		return ref
	})
}

type pomProject struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Parent       *pomParent      `xml:"parent"`
	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Management   []pomDependency `xml:"dependencyManagement>dependencies>dependency"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Scope      string `xml:"scope"`
}

// pomProperties collects the free-form children of <properties>.
type pomProperties struct {
	Entries []pomProperty `xml:",any"`
}

type pomProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

func (p *pomProject) propertyMap() map[string]string {
	props := make(map[string]string, len(p.Properties.Entries)+6)

	version, group := p.Version, p.GroupID
	if p.Parent != nil {
		if version == "" {
			version = p.Parent.Version
		}
		if group == "" {
			group = p.Parent.GroupID
		}
		props["project.parent.version"] = strings.TrimSpace(p.Parent.Version)
		props["project.parent.groupId"] = strings.TrimSpace(p.Parent.GroupID)
	}
	for _, k := range []string{"project.version", "pom.version", "version"} {
		props[k] = strings.TrimSpace(version)
	}
	props["project.groupId"] = strings.TrimSpace(group)

	for _, e := range p.Properties.Entries {
		props[e.XMLName.Local] = strings.TrimSpace(e.Value)
	}
	for k, v := range props {
		if v == "" {
			delete(props, k)
		}
	}
	return props
}
