package version

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/DimShadoWWW/npm2ebuild/pkg/errors"
)

const (
	groupTag    = "tag"
	groupTagNum = "tagnum"
)

// NPM is the grammar used to pick the latest release from an npm registry
// document: dot-separated segments and the tags "-rc", "-beta", "-alpha"
// and "-". "-rc" ranks closest to a final release and a bare trailing "-"
// (package revisions such as "2.1.0-4") ranks lowest, so the vocabulary is
// listed here in ascending rank.
var NPM = MustScheme(".", "-", "-alpha", "-beta", "-rc")

// Scheme is a version grammar: a numeric segment separator plus an ordered
// vocabulary of pre-release tags. A tag's position in the vocabulary is its
// rank; earlier tags sort before later ones.
//
// A Scheme is immutable and safe for concurrent use.
type Scheme struct {
	sep  string
	tags []string
	rank map[string]int
	re   *regexp.Regexp
}

// NewScheme compiles a grammar for the given separator and pre-release tags.
// An empty tag list produces a grammar without a pre-release group.
func NewScheme(sep string, tags ...string) (*Scheme, error) {
	if sep == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "version separator cannot be empty")
	}

	rank := make(map[string]int, len(tags))
	for i, tag := range tags {
		if tag == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pre-release tag cannot be empty")
		}
		if _, dup := rank[tag]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate pre-release tag %q", tag)
		}
		rank[tag] = i
	}

	return &Scheme{
		sep:  sep,
		tags: slices.Clone(tags),
		rank: rank,
		re:   compilePattern(sep, tags),
	}, nil
}

// MustScheme is like [NewScheme] but panics on an invalid grammar.
func MustScheme(sep string, tags ...string) *Scheme {
	s, err := NewScheme(sep, tags...)
	if err != nil {
		panic(err)
	}
	return s
}

// compilePattern builds ^\d+(?:SEP\d+)*(?:(?P<tag>T1|T2)(?P<tagnum>\d*))?$.
// Longer tags are tried first so the chosen alternative does not depend on
// vocabulary order.
func compilePattern(sep string, tags []string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`^\d+(?:`)
	b.WriteString(regexp.QuoteMeta(sep))
	b.WriteString(`\d+)*`)

	if len(tags) > 0 {
		alts := slices.Clone(tags)
		slices.SortStableFunc(alts, func(a, b string) int { return cmp.Compare(len(b), len(a)) })
		for i, t := range alts {
			alts[i] = regexp.QuoteMeta(t)
		}
		b.WriteString(`(?:(?P<` + groupTag + `>`)
		b.WriteString(strings.Join(alts, "|"))
		b.WriteString(`)(?P<` + groupTagNum + `>\d*))?`)
	}

	b.WriteString(`$`)
	return regexp.MustCompile(b.String())
}

// Separator returns the numeric segment separator.
func (s *Scheme) Separator() string { return s.sep }

// Tags returns the pre-release vocabulary in rank order.
func (s *Scheme) Tags() []string { return slices.Clone(s.tags) }

// Pattern returns the anchored regular expression the scheme parses with.
func (s *Scheme) Pattern() string { return s.re.String() }

// Parse parses raw under the scheme's grammar.
//
// A string that does not match the grammar fails with MALFORMED_VERSION.
// A string whose pre-release tag is present but whose tag number does not
// parse as an integer (including an empty number, as in "1.0.0-rc") does not
// fail: it parses as the lowest version "0" with no pre-release.
func (s *Scheme) Parse(raw string) (Version, error) {
	m := s.re.FindStringSubmatchIndex(raw)
	if m == nil {
		return Version{}, errors.New(errors.ErrCodeMalformedVersion, "invalid version number %q", raw)
	}

	numeric := raw
	var pre *Prerelease
	if ti := s.re.SubexpIndex(groupTag); ti > 0 && m[2*ti] >= 0 {
		ni := s.re.SubexpIndex(groupTagNum)
		tag := raw[m[2*ti]:m[2*ti+1]]
		n, err := strconv.Atoi(raw[m[2*ni]:m[2*ni+1]])
		if err != nil {
			numeric = "0"
		} else {
			pre = &Prerelease{Tag: tag, Number: n}
			numeric = raw[:m[2*ti]]
		}
	}

	parts := strings.Split(numeric, s.sep)
	segments := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, errors.Wrap(errors.ErrCodeMalformedVersion, err, "invalid version number %q", raw)
		}
		segments[i] = n
	}

	return Version{segments: segments, pre: pre, scheme: s}, nil
}

// Sort parses every raw string and returns them in ascending order.
// Ties keep lexicographic order of the raw strings, so the result does not
// depend on the order of the input.
func (s *Scheme) Sort(raws []string) ([]string, error) {
	type entry struct {
		raw string
		v   Version
	}

	sorted := slices.Clone(raws)
	slices.Sort(sorted)

	entries := make([]entry, len(sorted))
	for i, raw := range sorted {
		v, err := s.Parse(raw)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{raw: raw, v: v}
	}

	var cmpErr error
	slices.SortStableFunc(entries, func(a, b entry) int {
		c, err := Compare(a.v, b.v)
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		return c
	})
	if cmpErr != nil {
		return nil, cmpErr
	}

	for i, e := range entries {
		sorted[i] = e.raw
	}
	return sorted, nil
}

// Max returns the greatest of raws under the scheme.
func (s *Scheme) Max(raws []string) (string, error) {
	if len(raws) == 0 {
		return "", errors.New(errors.ErrCodeInvalidPackage, "no versions to choose from")
	}
	sorted, err := s.Sort(raws)
	if err != nil {
		return "", err
	}
	return sorted[len(sorted)-1], nil
}

// SelectMaximum returns the latest of raws under the [NPM] scheme.
func SelectMaximum(raws []string) (string, error) {
	return NPM.Max(raws)
}

func sameGrammar(a, b *Scheme) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.sep == b.sep && slices.Equal(a.tags, b.tags)
}
