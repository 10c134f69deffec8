package align

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is the ordered step list of one alignment.
type Path []Step

// ParsePath reads the compact path notation used throughout this tool:
//
//	4=     four identity steps (1 ref / 1 query each)
//	2X     two mismatch steps (1/1)
//	3I     three insertion steps (0/1, query only)
//	2D     two deletion steps (1/0, reference only)
//	3r     one rotation step spanning 3/3
//	2i     one isobaric step spanning 2/2
//	2:1i   one isobaric step spanning 2 ref / 1 query
//	1=[1]  identity with a mass shift on the single step that follows the '='
//
// '=' with a trailing '[n]' marks the next n steps of the run as
// identity-mass-mismatch instead of full identity.
func ParsePath(s string) (Path, error) {
	var path Path
	i := 0
	for i < len(s) {
		n, j, err := parseCount(s, i)
		if err != nil {
			return nil, err
		}
		i = j
		m := -1
		if i < len(s) && s[i] == ':' {
			m, j, err = parseCount(s, i+1)
			if err != nil {
				return nil, err
			}
			i = j
		}
		if i >= len(s) {
			return nil, fmt.Errorf("path %q: trailing count without step kind", s)
		}
		kind := s[i]
		i++
		if m >= 0 && kind != 'i' && kind != 'r' {
			return nil, fmt.Errorf("path %q: unequal span %d:%d only valid for i/r steps", s, n, m)
		}
		switch kind {
		case '=':
			shifted := 0
			if i < len(s) && s[i] == '[' {
				end := strings.IndexByte(s[i:], ']')
				if end < 0 {
					return nil, fmt.Errorf("path %q: unbalanced '[' at %d", s, i)
				}
				shifted, _ = strconv.Atoi(s[i+1 : i+end])
				if shifted < 0 || shifted > n {
					return nil, fmt.Errorf("path %q: mass-shift count %d out of range", s, shifted)
				}
				i += end + 1
			}
			for k := 0; k < n; k++ {
				t := FullIdentity
				if k >= n-shifted {
					t = IdentityMassMismatch
				}
				path = append(path, Step{A: 1, B: 1, Type: t})
			}
		case 'X':
			for k := 0; k < n; k++ {
				path = append(path, Step{A: 1, B: 1, Type: Mismatch})
			}
		case 'I':
			for k := 0; k < n; k++ {
				path = append(path, Step{A: 0, B: 1, Type: Gap})
			}
		case 'D':
			for k := 0; k < n; k++ {
				path = append(path, Step{A: 1, B: 0, Type: Gap})
			}
		case 'i', 'r':
			a, b := n, n
			if m >= 0 {
				b = m
			}
			if a > 255 || b > 255 {
				return nil, fmt.Errorf("path %q: step span %d:%d too large", s, a, b)
			}
			t := Isobaric
			if kind == 'r' {
				t = Rotation
			}
			path = append(path, Step{A: uint8(a), B: uint8(b), Type: t})
		default:
			return nil, fmt.Errorf("path %q: unknown step kind %q at %d", s, kind, i-1)
		}
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	return path, nil
}

// MustPath is ParsePath for compiled-in data and tests.
func MustPath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseCount(s string, i int) (int, int, error) {
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, 0, fmt.Errorf("path %q: expected count at %d", s, i)
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil || n == 0 {
		return 0, 0, fmt.Errorf("path %q: bad count %q", s, s[i:j])
	}
	return n, j, nil
}

// String renders the path back into compact notation.
func (p Path) String() string {
	var b strings.Builder
	i := 0
	for i < len(p) {
		s := p[i]
		switch {
		case s.Type == Isobaric || s.Type == Rotation:
			kind := byte('i')
			if s.Type == Rotation {
				kind = 'r'
			}
			if s.A == s.B {
				fmt.Fprintf(&b, "%d%c", s.A, kind)
			} else {
				fmt.Fprintf(&b, "%d:%d%c", s.A, s.B, kind)
			}
			i++
		default:
			j := i
			for j < len(p) && p[j].Type == s.Type && p[j].A == s.A && p[j].B == s.B {
				j++
			}
			n := j - i
			switch {
			case s.Type == FullIdentity:
				fmt.Fprintf(&b, "%d=", n)
			case s.Type == IdentityMassMismatch:
				fmt.Fprintf(&b, "%d=[%d]", n, n)
			case s.Type == Mismatch:
				fmt.Fprintf(&b, "%dX", n)
			case s.A == 0:
				fmt.Fprintf(&b, "%dI", n)
			default:
				fmt.Fprintf(&b, "%dD", n)
			}
			i = j
		}
	}
	return b.String()
}

// LenA is the total reference span of the path.
func (p Path) LenA() int {
	n := 0
	for _, s := range p {
		n += int(s.A)
	}
	return n
}

// LenB is the total query span of the path.
func (p Path) LenB() int {
	n := 0
	for _, s := range p {
		n += int(s.B)
	}
	return n
}
