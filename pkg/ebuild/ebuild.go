package ebuild

import (
	"bytes"
	"path"
	"regexp"
	"strings"
	"text/template"
)

const (
	// Category is the Gentoo category every generated recipe belongs to.
	Category = "dev-nodejs"

	// DefaultRuntime is the runtime atom placed first in RDEPEND.
	DefaultRuntime = ">=net-libs/nodejs-0.8.10"

	// DefaultKeywords is the KEYWORDS value of generated recipes.
	DefaultKeywords = "~amd64 ~x86"

	// Unbounded is the npm constraint that accepts any version.
	Unbounded = "*"

	depIndent = "       "
)

var revisionRe = regexp.MustCompile(`-[0-9]+$`)

// StripRevision removes a trailing "-<digits>" from v.
func StripRevision(v string) string {
	return revisionRe.ReplaceAllString(v, "")
}

// HasRevision reports whether v ends in "-<digits>".
func HasRevision(v string) bool {
	return revisionRe.MatchString(v)
}

// PackageName maps an npm name to a Gentoo package name. Scoped names lose
// the leading "@" and their "/" becomes "-", so "@types/node" is "types-node".
// Plain names are returned unchanged.
func PackageName(name string) string {
	if scope, pkg, ok := strings.Cut(strings.TrimPrefix(name, "@"), "/"); ok && strings.HasPrefix(name, "@") {
		return scope + "-" + pkg
	}
	return name
}

// Path returns the recipe path for name at version, relative to the tree root.
// Slash separated; callers writing to disk convert with filepath.FromSlash.
// Scoped names are flattened with PackageName.
func Path(name, version string) string {
	pn := PackageName(name)
	return path.Join(Category, pn, pn+"-"+StripRevision(version)+".ebuild")
}

var constraintCleaner = strings.NewReplacer("~", "", "=", "", ">", "", "<", "")

// CleanConstraint deletes every ~ = > and < from raw. Nothing else is
// normalized: "^1.2.0" and "1.x" pass through unchanged.
func CleanConstraint(raw string) string {
	return constraintCleaner.Replace(raw)
}

// DependencyLine renders one RDEPEND entry for dep at an already cleaned
// constraint.
func DependencyLine(dep, constraint string) string {
	pn := PackageName(dep)
	if constraint == Unbounded {
		return depIndent + Category + "/" + pn + "\n"
	}
	return depIndent + ">=" + Category + "/" + pn + "-" + constraint + "\n"
}

// Dependency is one runtime dependency of a recipe.
type Dependency struct {
	Name       string
	Constraint string // cleaned, see CleanConstraint
}

// Line returns the RDEPEND entry for d.
func (d Dependency) Line() string {
	return DependencyLine(d.Name, d.Constraint)
}

// Recipe holds everything needed to render one ebuild.
type Recipe struct {
	Name         string
	Version      string
	Description  string
	Dependencies []Dependency
	Runtime      string // default DefaultRuntime
	Keywords     string // default DefaultKeywords
}

// Path returns the recipe path relative to the tree root.
func (r Recipe) Path() string {
	return Path(r.Name, r.Version)
}

var descriptionCleaner = strings.NewReplacer("`", "'", `"`, "'")

var recipeTmpl = template.Must(template.New("ebuild").Parse(`# Copyright 1999-2013 Gentoo Foundation
# Distributed under the terms of the GNU General Public License v2
# $Header: $

EAPI=5

inherit npm

DESCRIPTION="{{.Description}}"
{{- if .Source}}

MY_PV="{{.Version}}"
SRC_URI="http://registry.npmjs.org/${PN}/-/${PN}-${MY_PV}.tgz"
S="${WORKDIR}/${PN}-${MY_PV}"
{{- end}}

LICENSE="MIT"
SLOT="0"
KEYWORDS="{{.Keywords}}"
IUSE=""

DEPEND=""
RDEPEND="{{.Runtime}}
{{.Lines}}${DEPEND}"
`))

type recipeData struct {
	Description string
	Version     string
	Source      bool
	Keywords    string
	Runtime     string
	Lines       string
}

// Render returns the ebuild text.
//
// Backticks and double quotes in the description both become "'". Only
// backticks are unsafe for the shell, but a double quote would end the
// DESCRIPTION="..." assignment early.
func (r Recipe) Render() string {
	var lines strings.Builder
	for _, d := range r.Dependencies {
		lines.WriteString(d.Line())
	}

	data := recipeData{
		Description: descriptionCleaner.Replace(r.Description),
		Version:     r.Version,
		Source:      !HasRevision(r.Version),
		Keywords:    r.Keywords,
		Runtime:     r.Runtime,
		Lines:       lines.String(),
	}
	if data.Keywords == "" {
		data.Keywords = DefaultKeywords
	}
	if data.Runtime == "" {
		data.Runtime = DefaultRuntime
	}

	var buf bytes.Buffer
	// recipeData only holds strings and a bool; Execute cannot fail.
	_ = recipeTmpl.Execute(&buf, data)
	return buf.String()
}
