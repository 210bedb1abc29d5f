package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/evobio-go/parnas/rawtree"
)

// Parse reads a single Newick tree from r and converts it into a
// *rawtree.Tree. It does not validate the result (connectivity, duplicate
// labels, negative weights) — callers run rawtree.Tree.Validate, or let
// prep.Prepare do so as part of its own pipeline.
func Parse(r io.Reader) (*rawtree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("newick: read: %w", err)
	}

	return ParseString(string(data))
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*rawtree.Tree, error) {
	sc := &scanner{src: s}
	sc.skipSpace()
	if sc.eof() {
		return nil, ErrEmptyInput
	}

	root, err := sc.parseSubtree()
	if err != nil {
		return nil, err
	}

	// A root-level ":length" (e.g. an explicit pendant edge to an implicit
	// outgroup) has nowhere to attach in rawtree.Tree's rooted model, so it
	// is consumed and discarded rather than rejected.
	if _, _, err := sc.maybeLength(); err != nil {
		return nil, err
	}

	sc.skipSpace()
	if !sc.eof() && sc.peek() == ';' {
		sc.pos++
	}

	return rawtree.NewTree(root), nil
}

// scanner walks a Newick string byte by byte; comments ("[...]") and plain
// whitespace are treated identically and skipped wherever either is legal.
type scanner struct {
	src string
	pos int
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.src) }

func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.src[sc.pos]
}

func (sc *scanner) skipSpace() {
	for !sc.eof() {
		switch sc.src[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		case '[':
			end := strings.IndexByte(sc.src[sc.pos:], ']')
			if end < 0 {
				sc.pos = len(sc.src)
				return
			}
			sc.pos += end + 1
		default:
			return
		}
	}
}

// parseSubtree parses one (possibly leaf) node: an optional parenthesised
// child list, followed by an optional name and an optional ":length".
func (sc *scanner) parseSubtree() (*rawtree.Node, error) {
	n := &rawtree.Node{}

	sc.skipSpace()
	if sc.eof() {
		return nil, ErrUnexpectedEOF
	}

	if sc.peek() == '(' {
		sc.pos++
		for {
			child, err := sc.parseSubtree()
			if err != nil {
				return nil, err
			}

			sc.skipSpace()
			if sc.eof() {
				return nil, ErrUnexpectedEOF
			}

			weight, hasWeight, err := sc.maybeLength()
			if err != nil {
				return nil, err
			}
			if !hasWeight {
				weight = 0
			}
			n.Children = append(n.Children, rawtree.Edge{Weight: weight, Node: child})

			sc.skipSpace()
			if sc.eof() {
				return nil, ErrUnexpectedEOF
			}
			switch sc.peek() {
			case ',':
				sc.pos++
				continue
			case ')':
				sc.pos++
			default:
				return nil, fmt.Errorf("%w: expected ',' or ')' at offset %d", ErrSyntax, sc.pos)
			}
			break
		}
	}

	sc.skipSpace()
	n.Label = sc.maybeName()

	return n, nil
}

// maybeLength consumes a leading ':' plus the number that follows it, if
// present; it is called after a child subtree has already consumed its own
// optional name, so a length here always belongs to the edge leading to
// that child.
func (sc *scanner) maybeLength() (float64, bool, error) {
	sc.skipSpace()
	if sc.eof() || sc.peek() != ':' {
		return 0, false, nil
	}
	sc.pos++
	sc.skipSpace()

	start := sc.pos
	for !sc.eof() && isNumberByte(sc.src[sc.pos]) {
		sc.pos++
	}
	if sc.pos == start {
		return 0, false, fmt.Errorf("%w: expected branch length at offset %d", ErrSyntax, start)
	}

	w, err := strconv.ParseFloat(sc.src[start:sc.pos], 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: invalid branch length %q", ErrSyntax, sc.src[start:sc.pos])
	}

	return w, true, nil
}

// maybeName consumes a label: either a single-quoted run (where '' escapes
// a literal quote) or a bare token up to the next structural character.
func (sc *scanner) maybeName() string {
	if sc.eof() {
		return ""
	}

	if sc.peek() == '\'' {
		sc.pos++
		var b strings.Builder
		for !sc.eof() {
			if sc.src[sc.pos] == '\'' {
				if sc.pos+1 < len(sc.src) && sc.src[sc.pos+1] == '\'' {
					b.WriteByte('\'')
					sc.pos += 2
					continue
				}
				sc.pos++
				break
			}
			b.WriteByte(sc.src[sc.pos])
			sc.pos++
		}
		return b.String()
	}

	start := sc.pos
	for !sc.eof() && !isStructural(sc.src[sc.pos]) {
		sc.pos++
	}
	name := sc.src[start:sc.pos]
	// Newick uses '_' in place of spaces inside bare (unquoted) labels.
	return strings.ReplaceAll(name, "_", " ")
}

func isStructural(b byte) bool {
	switch b {
	case '(', ')', ',', ':', ';', '[':
		return true
	}
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isNumberByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == '-' || b == '+' || b == 'e' || b == 'E'
}
