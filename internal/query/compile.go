// Package query compiles search text into a byte-oriented regular
// expression. It is one of the external collaborators the core engine
// treats as out of scope: the core only depends on the Automaton
// interface, never on regexp or the hex expansion rules directly.
package query

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Kind is one of the three query types a search can be compiled as.
type Kind int

const (
	Plain Kind = iota
	Regex
	HexRegex
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Regex:
		return "regex"
	case HexRegex:
		return "hex"
	default:
		return "unknown"
	}
}

// Automaton matches byte ranges in an arbitrary byte slice.
type Automaton interface {
	FindAllIndex(b []byte, n int) [][]int
}

// Compile builds an Automaton for text under the given Kind. Plain
// text is escaped and matched Unicode-aware (a user typing literal
// text expects letters to mean letters); Regex and HexRegex operate
// directly on raw bytes with Unicode matching disabled, since a hex
// diff viewer's regex searches are almost always over non-UTF-8 data.
func Compile(text string, kind Kind) (Automaton, error) {
	switch kind {
	case Plain:
		re, err := regexp.Compile(`(?s)` + regexp.QuoteMeta(text))
		if err != nil {
			return nil, errors.Wrap(err, "compiling plain query")
		}
		return re, nil
	case Regex:
		re, err := regexp.Compile(`(?s)` + text)
		if err != nil {
			return nil, errors.Wrap(err, "compiling regex query")
		}
		return re, nil
	case HexRegex:
		pattern, err := hexToBytePattern(text)
		if err != nil {
			return nil, err
		}
		re, err := regexp.Compile(`(?s)` + pattern)
		if err != nil {
			return nil, errors.Wrap(err, "compiling hex query")
		}
		return re, nil
	default:
		return nil, errors.Errorf("unknown query kind %d", int(kind))
	}
}

// hexToBytePattern turns a whitespace-separated sequence of hex-byte
// tokens and '?' wildcards into a byte-regexp pattern, e.g.
// "AA ?? 00" -> `\xaa.\x00`. Ranges like "00-0F" are not supported;
// the token-level hex/wildcard case covers the common "find this byte
// sequence, with some bytes unknown" query.
func hexToBytePattern(text string) (string, error) {
	fields := strings.Fields(text)
	var b strings.Builder
	for _, f := range fields {
		if f == "?" || f == "??" || f == "." {
			b.WriteString(".")
			continue
		}
		if len(f)%2 != 0 {
			return "", errors.Errorf("hex query token %q has an odd number of digits", f)
		}
		for i := 0; i < len(f); i += 2 {
			var v int
			if _, err := fmt.Sscanf(f[i:i+2], "%02x", &v); err != nil {
				return "", errors.Wrapf(err, "invalid hex token %q", f)
			}
			fmt.Fprintf(&b, `\x%02x`, v)
		}
	}
	return b.String(), nil
}
