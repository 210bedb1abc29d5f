package align

import "errors"

// ErrNoHeader indicates FASTA data was found before any ">header" line.
var ErrNoHeader = errors.New("align: sequence data before first header")

// ErrEmptyAlignment indicates an Alignment with no sequences.
var ErrEmptyAlignment = errors.New("align: alignment has no sequences")

// ErrLengthMismatch indicates the sequences in an Alignment are not all
// the same length (i.e. not actually aligned).
var ErrLengthMismatch = errors.New("align: sequences have differing lengths")

// ErrMissingLeaf indicates AncestralWeights was given a tree with a leaf
// label absent from the alignment.
var ErrMissingLeaf = errors.New("align: tree leaf has no aligned sequence")

// Alignment is a set of equal-length sequences keyed by leaf label, as
// produced by ReadFASTA.
type Alignment struct {
	bylabel map[string]string
	length  int
}

// NewAlignment validates and wraps sequences (label -> residues) into an
// Alignment. All sequences must share the same length.
func NewAlignment(sequences map[string]string) (*Alignment, error) {
	if len(sequences) == 0 {
		return nil, ErrEmptyAlignment
	}

	length := -1
	for _, seq := range sequences {
		if length < 0 {
			length = len(seq)
		} else if len(seq) != length {
			return nil, ErrLengthMismatch
		}
	}

	bylabel := make(map[string]string, len(sequences))
	for label, seq := range sequences {
		bylabel[label] = seq
	}

	return &Alignment{bylabel: bylabel, length: length}, nil
}

// Length returns the (shared) sequence length, i.e. the alignment's column
// count.
func (a *Alignment) Length() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Sequence returns the aligned sequence for label and whether it exists.
func (a *Alignment) Sequence(label string) (string, bool) {
	if a == nil {
		return "", false
	}
	seq, ok := a.bylabel[label]
	return seq, ok
}
