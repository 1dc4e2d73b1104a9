package version

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/DimShadoWWW/npm2ebuild/pkg/errors"
)

// Prerelease is a pre-release marker such as "-rc" 2.
type Prerelease struct {
	Tag    string
	Number int
}

// Version is a parsed version string. It is immutable; obtain one with
// [Scheme.Parse].
type Version struct {
	segments []int
	pre      *Prerelease
	scheme   *Scheme
}

// Segments returns a copy of the numeric segments.
func (v Version) Segments() []int { return slices.Clone(v.segments) }

// Prerelease returns the pre-release marker and whether one is present.
func (v Version) Prerelease() (Prerelease, bool) {
	if v.pre == nil {
		return Prerelease{}, false
	}
	return *v.pre, true
}

// Scheme returns the grammar v was parsed under.
func (v Version) Scheme() *Scheme { return v.scheme }

// String formats v in its scheme's grammar.
func (v Version) String() string {
	sep := "."
	if v.scheme != nil {
		sep = v.scheme.sep
	}
	parts := make([]string, len(v.segments))
	for i, n := range v.segments {
		parts[i] = strconv.Itoa(n)
	}
	s := strings.Join(parts, sep)
	if v.pre != nil {
		s += fmt.Sprintf("%s%d", v.pre.Tag, v.pre.Number)
	}
	return s
}

// Compare returns -1, 0 or +1 as a is less than, equal to, or greater than b.
//
// Versions parsed under different grammars (separator or tag vocabulary)
// fail with INCOMPARABLE_VERSIONS.
//
// With equal segments a version without pre-release is greater than one with
// a pre-release; two pre-releases order by tag rank and then tag number.
// Otherwise segments compare as integer tuples. Missing trailing segments are
// not treated as zero: "1.2" < "1.2.0".
func Compare(a, b Version) (int, error) {
	if !sameGrammar(a.scheme, b.scheme) {
		return 0, errors.New(errors.ErrCodeIncomparableVersions,
			"unable to compare %q and %q: versions have different structures", a, b)
	}

	if !slices.Equal(a.segments, b.segments) {
		return slices.Compare(a.segments, b.segments), nil
	}

	switch {
	case a.pre != nil && b.pre != nil:
		if c := cmp.Compare(a.scheme.rank[a.pre.Tag], b.scheme.rank[b.pre.Tag]); c != 0 {
			return c, nil
		}
		return cmp.Compare(a.pre.Number, b.pre.Number), nil
	case a.pre != nil:
		return -1, nil
	case b.pre != nil:
		return 1, nil
	}
	return 0, nil
}

// Equal reports whether v and o compare equal. Versions from different
// grammars are never equal.
func (v Version) Equal(o Version) bool {
	c, err := Compare(v, o)
	return err == nil && c == 0
}

// Less reports whether v sorts before o. Versions from different grammars
// are never less than each other.
func (v Version) Less(o Version) bool {
	c, err := Compare(v, o)
	return err == nil && c < 0
}
