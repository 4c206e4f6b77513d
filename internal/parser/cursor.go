package parser

import "strings"

// cursor is an immutable position in the source text. Grammar functions
// take a cursor and return an advanced one; abandoning a failed
// alternative is simply reusing the cursor it started from, so
// backtracking never needs to undo anything.
type cursor struct {
	src  string
	off  int
	line int
	col  int
}

func newCursor(src string) cursor {
	return cursor{src: src, line: 1, col: 1}
}

// rest returns the unconsumed remainder of the input.
func (c cursor) rest() string {
	return c.src[c.off:]
}

// eof reports whether the cursor is at end of input.
func (c cursor) eof() bool {
	return c.off >= len(c.src)
}

// peek returns the byte under the cursor, 0 at end of input. The
// grammar is ASCII; bytes of multi-byte runes match no rule and fail
// the surrounding alternative cleanly.
func (c cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// advance moves the cursor n bytes forward, maintaining the line and
// column counters.
func (c cursor) advance(n int) cursor {
	for i := 0; i < n && c.off < len(c.src); i++ {
		if c.src[c.off] == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
		c.off++
	}
	return c
}

// pos captures the cursor's position for error reporting.
func (c cursor) pos() Pos {
	return Pos{Line: c.line, Column: c.col, Offset: c.off}
}

// lit consumes the literal s if the input starts with it.
func (c cursor) lit(s string) (cursor, bool) {
	if strings.HasPrefix(c.rest(), s) {
		return c.advance(len(s)), true
	}
	return c, false
}

// skipWS consumes spaces, tabs, carriage returns and newlines.
func (c cursor) skipWS() cursor {
	for {
		switch c.peek() {
		case ' ', '\t', '\r', '\n':
			c = c.advance(1)
		default:
			return c
		}
	}
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
