package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Pos is a position in the source text. Line and Column are 1-based;
// Offset is the byte offset.
type Pos struct {
	Line   int
	Column int
	Offset int
}

// String returns the position as "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// errTooDeep marks the nesting-bound failure. Unlike an ordinary
// mismatch it is not recoverable: alternatives and operand folds must
// propagate it instead of backtracking over it, or the bound would be
// silently converted into an unrelated mismatch elsewhere.
var errTooDeep = errors.New("expression nesting too deep")

// SyntaxError reports the position at which no grammar alternative
// matched. Failures inside the parser are recovered by backtracking;
// only the final, outermost failure surfaces as a SyntaxError.
type SyntaxError struct {
	Pos     Pos
	Message string

	err error // optional underlying cause, e.g. errTooDeep
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.err
}

// Render formats err together with the offending source line and a
// caret marking the failure column.
func Render(src string, err *SyntaxError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", err.Pos, err.Message)

	lines := strings.Split(src, "\n")
	if err.Pos.Line >= 1 && err.Pos.Line <= len(lines) {
		line := strings.TrimRight(lines[err.Pos.Line-1], "\r")
		col := err.Pos.Column
		if col > len(line)+1 {
			col = len(line) + 1
		}
		fmt.Fprintf(&b, "\n  %s\n  %s^", line, strings.Repeat(" ", col-1))
	}
	return b.String()
}
