package console

import (
	"bufio"
	"io"
	"strings"
)

// Input reads trimmed lines from the user.
type Input struct {
	sc *bufio.Scanner
}

// NewInput returns an Input reading from r.
func NewInput(r io.Reader) *Input {
	return &Input{sc: bufio.NewScanner(r)}
}

// ReadLine returns the next line with surrounding whitespace removed.
// It returns io.EOF once the input is exhausted.
func (in *Input) ReadLine() (string, error) {
	if !in.sc.Scan() {
		if err := in.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.sc.Text()), nil
}
