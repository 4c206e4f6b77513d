package parser

import "testing"

func TestCursorAdvanceTracksPosition(t *testing.T) {
	c := newCursor("ab\ncd")

	c = c.advance(2)
	if c.line != 1 || c.col != 3 {
		t.Fatalf("after 'ab': line %d col %d, want 1:3", c.line, c.col)
	}

	c = c.advance(1) // newline
	if c.line != 2 || c.col != 1 {
		t.Fatalf("after newline: line %d col %d, want 2:1", c.line, c.col)
	}

	c = c.advance(5) // clamps at end of input
	if !c.eof() || c.off != 5 {
		t.Fatalf("expected cursor at end of input, got offset %d", c.off)
	}
}

func TestCursorLit(t *testing.T) {
	c := newCursor("==3")

	c2, ok := c.lit("==")
	if !ok || c2.rest() != "3" {
		t.Fatalf("lit(\"==\") = %q, %v", c2.rest(), ok)
	}

	if _, ok := c.lit("!="); ok {
		t.Fatal("lit(\"!=\") matched unexpectedly")
	}
}

func TestRenderCaret(t *testing.T) {
	err := &SyntaxError{
		Pos:     Pos{Line: 1, Column: 2, Offset: 1},
		Message: "unexpected trailing input",
	}

	got := Render("1+", err)
	want := "1:2: unexpected trailing input\n  1+\n   ^"
	if got != want {
		t.Fatalf("Render:\n got %q\nwant %q", got, want)
	}
}

func TestRenderClampsColumn(t *testing.T) {
	err := &SyntaxError{
		Pos:     Pos{Line: 1, Column: 99, Offset: 2},
		Message: "expected expression",
	}

	got := Render("1+", err)
	want := "1:99: expected expression\n  1+\n    ^"
	if got != want {
		t.Fatalf("Render:\n got %q\nwant %q", got, want)
	}
}
