package versions

import (
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// Compare compares a and b, returning:
//
//	-1 if a < b
//	 0 if a == b
//	 1 if a > b
//
// Plain MAJOR.MINOR.PATCH releases are compared as semver. Anything with a
// qualifier (1.0.0-SNAPSHOT, 2.0-RC1, 31.1-jre) uses Maven ordering, so
// pre-releases rank the same way whichever notation they are written in.
func Compare(a, b string) int {
	if va, vb := release(a), release(b); va != nil && vb != nil {
		return va.Compare(vb)
	}
	return compareTokens(tokenize(a), tokenize(b))
}

// release parses v as a strict semver release without pre-release or build
// metadata. It returns nil for anything else.
func release(v string) *semver.Version {
	sv, err := semver.StrictNewVersion(strings.TrimSpace(v))
	if err != nil || sv.Prerelease() != "" || sv.Metadata() != "" {
		return nil
	}
	return sv
}

// Highest returns the highest of vs, ignoring empty strings.
// It returns "" when vs holds no version.
func Highest(vs []string) string {
	var best string
	for _, v := range vs {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if best == "" || Compare(v, best) > 0 {
			best = v
		}
	}
	return best
}

// Comparable reports whether v is a concrete version that can be ordered.
// Dynamic versions ("1.+", "[1.0,2.0)", "latest.release"), interpolations
// ("$kotlinVersion", "${spring.version}") and markers like "unknown" are not.
func Comparable(v string) bool {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" || !unicode.IsDigit(rune(v[0])) {
		return false
	}
	return !strings.ContainsAny(v, "$+[](),")
}

// IsOutdated reports whether latest is strictly newer than declared.
// Non-comparable versions are never reported as outdated.
func IsOutdated(declared, latest string) bool {
	if !Comparable(declared) || !Comparable(latest) {
		return false
	}
	return Compare(declared, latest) < 0
}

type token struct {
	numeric bool
	value   string
}

// tokenize splits v on '.', '-', '_' and digit/letter transitions.
func tokenize(v string) []token {
	v = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(v), "v"))
	var tokens []token
	var cur strings.Builder
	curNumeric := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, token{numeric: curNumeric, value: cur.String()})
			cur.Reset()
		}
	}

	for _, r := range v {
		switch {
		case r == '.' || r == '-' || r == '_':
			flush()
		case unicode.IsDigit(r):
			if cur.Len() > 0 && !curNumeric {
				flush()
			}
			curNumeric = true
			cur.WriteRune(r)
		default:
			if cur.Len() > 0 && curNumeric {
				flush()
			}
			curNumeric = false
			cur.WriteRune(r)
		}
	}
	flush()

	// Zeros in front of a qualifier carry no weight: 1.0.0-alpha == 1-alpha.
	kept := tokens[:0]
	for i, t := range tokens {
		if i > 0 && isZero(t) && qualifierFollows(tokens, i) {
			continue
		}
		kept = append(kept, t)
	}
	tokens = kept

	// Trailing zeros and release qualifiers carry no ordering weight: 1.0.0 == 1 == 1.0.Final.
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if isZero(last) || (!last.numeric && qualifierRank(last.value) == rankRelease) {
			tokens = tokens[:len(tokens)-1]
			continue
		}
		break
	}
	return tokens
}

func isZero(t token) bool {
	return t.numeric && strings.Trim(t.value, "0") == ""
}

// qualifierFollows reports whether the zeros starting at tokens[i] are
// followed by a qualifier.
func qualifierFollows(tokens []token, i int) bool {
	for ; i < len(tokens); i++ {
		if !isZero(tokens[i]) {
			return !tokens[i].numeric
		}
	}
	return false
}

const rankRelease = 6

var qualifierRanks = map[string]int{
	"alpha":     1,
	"a":         1,
	"beta":      2,
	"b":         2,
	"milestone": 3,
	"m":         3,
	"rc":        4,
	"cr":        4,
	"snapshot":  5,
	"":          rankRelease,
	"ga":        rankRelease,
	"final":     rankRelease,
	"release":   rankRelease,
	"sp":        8,
}

// qualifierRank returns the rank of q. Unknown qualifiers sit between a
// release and a service pack.
func qualifierRank(q string) int {
	if r, ok := qualifierRanks[q]; ok {
		return r
	}
	return 7
}

func compareTokens(a, b []token) int {
	for i := 0; i < max(len(a), len(b)); i++ {
		var ta, tb *token
		if i < len(a) {
			ta = &a[i]
		}
		if i < len(b) {
			tb = &b[i]
		}
		if c := compareToken(ta, tb); c != 0 {
			return c
		}
	}
	return 0
}

// compareToken compares two tokens; a nil token stands for an absent one.
func compareToken(a, b *token) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -compareToken(b, nil)
	case b == nil:
		if a.numeric {
			return sign(compareNumeric(a.value, "0"))
		}
		return sign(qualifierRank(a.value) - rankRelease)
	case a.numeric && b.numeric:
		return compareNumeric(a.value, b.value)
	case a.numeric:
		return 1
	case b.numeric:
		return -1
	}

	ra, rb := qualifierRank(a.value), qualifierRank(b.value)
	if ra != rb {
		return sign(ra - rb)
	}
	return strings.Compare(a.value, b.value)
}

// compareNumeric compares digit strings of arbitrary length.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return sign(len(a) - len(b))
	}
	return strings.Compare(a, b)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
