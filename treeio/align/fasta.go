package align

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ReadFASTA is a minimal whole-file FASTA reader: it allows blank lines,
// trims surrounding whitespace from each line, and accepts both LF and
// CRLF endings. The first non-blank line must be a header ('>' prefixed);
// every subsequent header starts a new sequence, and all other lines are
// concatenated onto the current one.
func ReadFASTA(r io.Reader) (*Alignment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("align: read: %w", err)
	}

	sequences := make(map[string]string)
	var current string
	haveHeader := false

	for _, rawLine := range bytes.Split(data, []byte{'\n'}) {
		line := strings.TrimSpace(string(rawLine))
		switch {
		case len(line) == 0:
			continue
		case line[0] == '>':
			current = headerLabel(line)
			if _, exists := sequences[current]; !exists {
				sequences[current] = ""
			}
			haveHeader = true
		case !haveHeader:
			return nil, ErrNoHeader
		default:
			sequences[current] += line
		}
	}

	return NewAlignment(sequences)
}

// headerLabel extracts the identifier token from a FASTA header line: the
// text up to (not including) the first space, with the leading '>' removed.
func headerLabel(header string) string {
	id := header[1:]
	if sp := strings.IndexByte(id, ' '); sp >= 0 {
		return id[:sp]
	}
	return id
}
