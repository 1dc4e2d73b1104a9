package resolver

// Package is one node of a resolved dependency tree.
type Package struct {
	Name            string     // Package name
	MinVersion      string     // Cleaned constraint declared by the parent
	Version         string     // Chosen (highest) version, empty for cycles
	Description     string     // Registry description
	Path            string     // Recipe path relative to the tree root
	DependencyLines []string   // Rendered RDEPEND entries, in name order
	Dependencies    []*Package // Children, parallel to DependencyLines
	Written         bool       // A new recipe was written (false if it existed)
	Cycle           bool       // Placeholder for a package already being resolved
}

// Walk visits p and its descendants depth first, parents before children.
// Returning false from fn skips the children of that node.
func (p *Package) Walk(fn func(pkg *Package, depth int) bool) {
	p.walk(fn, 0)
}

func (p *Package) walk(fn func(*Package, int) bool, depth int) {
	if !fn(p, depth) {
		return
	}
	for _, c := range p.Dependencies {
		c.walk(fn, depth+1)
	}
}

// Stats summarizes a resolved tree.
type Stats struct {
	Resolved int // Nodes that were fetched and resolved
	Written  int // Recipes written
	Skipped  int // Recipes that already existed
	Cycles   int // Cycle placeholders
}

// Stats counts the nodes of the tree rooted at p.
func (p *Package) Stats() Stats {
	var s Stats
	p.Walk(func(pkg *Package, _ int) bool {
		switch {
		case pkg.Cycle:
			s.Cycles++
		case pkg.Written:
			s.Resolved++
			s.Written++
		default:
			s.Resolved++
			s.Skipped++
		}
		return true
	})
	return s
}
