package gradle

import "strings"

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokString
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokComma
	tokColon
	tokEquals
	tokOther
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits build-script text into tokens, dropping whitespace and
// comments. Unterminated strings and comments run to the end of input.
func tokenize(src string) []token {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ';':
			i++
		case strings.HasPrefix(src[i:], "//"):
			i = skipLine(src, i)
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return toks
			}
			i += end + 4
		case c == '\'' || c == '"':
			s, next := readString(src, i)
			toks = append(toks, token{tokString, s})
			i = next
		case isIdentStart(c):
			j := i + 1
			for j < len(src) && isIdentPart(src[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j]})
			i = j
		default:
			toks = append(toks, token{punct(c), string(c)})
			i++
		}
	}
	return toks
}

func skipLine(src string, i int) int {
	if end := strings.IndexByte(src[i:], '\n'); end >= 0 {
		return i + end + 1
	}
	return len(src)
}

// readString reads a quoted literal starting at src[i]. Triple-quoted
// literals are read as a single string.
func readString(src string, i int) (string, int) {
	quote := src[i]
	delim := string(quote)
	if strings.HasPrefix(src[i:], strings.Repeat(delim, 3)) {
		delim = strings.Repeat(delim, 3)
	}
	i += len(delim)

	var b strings.Builder
	for i < len(src) {
		if strings.HasPrefix(src[i:], delim) {
			return b.String(), i + len(delim)
		}
		c := src[i]
		if c == '\\' && i+1 < len(src) {
			b.WriteByte(src[i+1])
			i += 2
			continue
		}
		if c == '\n' && len(delim) == 1 {
			return b.String(), i
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), i
}

func punct(c byte) tokenKind {
	switch c {
	case '{':
		return tokLBrace
	case '}':
		return tokRBrace
	case '(':
		return tokLParen
	case ')':
		return tokRParen
	case ',':
		return tokComma
	case ':':
		return tokColon
	case '=':
		return tokEquals
	}
	return tokOther
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c == '.' || (c >= '0' && c <= '9')
}
