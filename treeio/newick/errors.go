package newick

import "errors"

// ErrUnexpectedEOF indicates the input ended before a complete tree was read
// (for example, a missing closing parenthesis). A missing trailing semicolon
// is accepted and does not produce this error.
var ErrUnexpectedEOF = errors.New("newick: unexpected end of input")

// ErrSyntax indicates a malformed token stream: an unexpected character
// where a label, length, or structural token was expected.
var ErrSyntax = errors.New("newick: syntax error")

// ErrEmptyInput indicates the input contained no tree at all.
var ErrEmptyInput = errors.New("newick: empty input")
