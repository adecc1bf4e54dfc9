package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnexpectedChar is returned by Parse when a non-comment line
// contains a byte that is neither '.' nor 'O'.
var ErrUnexpectedChar = errors.New("grid: unexpected character in pattern")

// ErrEmptyPattern is returned by Parse when the input has no non-comment
// lines to decode.
var ErrEmptyPattern = errors.New("grid: pattern has no rows")

// Parse decodes the plain-text Life pattern format: '.' is dead, 'O' is
// alive, and lines starting with '!' are comments and are skipped. Rows
// shorter than the widest row are padded with dead cells, matching the
// original source's `cols = max row length` behavior.
//
// Unlike the HashLife core (whose invariant violations are programming
// bugs that panic, per spec 7), Parse returns an error: it sits at the
// boundary with untrusted external input, where Go idiom favors an
// explicit error return over a panic.
func Parse(text string) (*Buffer, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "!") {
			continue
		}
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyPattern
	}

	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}

	state := make([]bool, len(lines)*cols)
	for i, line := range lines {
		for j := 0; j < cols; j++ {
			if j >= len(line) {
				continue // short row, implicitly dead
			}
			switch line[j] {
			case '.':
				// dead, already the zero value
			case 'O':
				state[i*cols+j] = true
			default:
				return nil, fmt.Errorf("%w: %q at line %d, col %d", ErrUnexpectedChar, line[j], i, j)
			}
		}
	}

	return NewBuffer(state, len(lines), cols), nil
}

// Render encodes a rows x cols boolean grid back into the plain-text
// format, the inverse of Parse for the specific case of a fully square,
// un-commented pattern (used by the demo CLI to print an evolved grid).
func Render(b *Buffer) string {
	var sb strings.Builder
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			if b.state[i*b.cols+j] {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
