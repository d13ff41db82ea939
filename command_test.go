package vpath

import (
	"errors"
	"testing"
)

func mustCommand(t *testing.T, verb Verb, pts ...Point) Command {
	t.Helper()
	c, err := NewCommand(verb, pts...)
	if err != nil {
		t.Fatalf("NewCommand(%s): %v", verb, err)
	}
	return c
}

func TestNewCommand_Errors(t *testing.T) {
	if _, err := NewCommand(Line, Pt(0, 0)); !errors.Is(err, ErrPointCount) {
		t.Errorf("line with one point: err = %v, want ErrPointCount", err)
	}
	if _, err := NewCommand(Cubic, Pt(0, 0), Pt(1, 1), Pt(2, 2)); !errors.Is(err, ErrPointCount) {
		t.Errorf("cubic with three points: err = %v, want ErrPointCount", err)
	}
	if _, err := NewCommand(Verb(9), Pt(0, 0), Pt(1, 1)); !errors.Is(err, ErrUnknownVerb) {
		t.Errorf("unknown verb: err = %v, want ErrUnknownVerb", err)
	}
}

func TestNewCommand_UniqueIDs(t *testing.T) {
	seen := make(map[ID]bool)
	var prev ID
	for i := 0; i < 100; i++ {
		c := mustCommand(t, Line, Pt(0, 0), Pt(1, 1))
		if c.ID() == 0 {
			t.Fatal("zero ID issued")
		}
		if seen[c.ID()] {
			t.Fatalf("duplicate ID %v", c.ID())
		}
		if c.ID() <= prev {
			t.Fatalf("ID %v not greater than previous %v", c.ID(), prev)
		}
		seen[c.ID()] = true
		prev = c.ID()
	}
}

func TestVerb_String(t *testing.T) {
	tests := []struct {
		verb Verb
		want string
	}{
		{Move, "M"},
		{Line, "L"},
		{Quad, "Q"},
		{Cubic, "C"},
		{Close, "Z"},
		{Verb(7), "Verb(7)"},
	}
	for _, tt := range tests {
		if got := tt.verb.String(); got != tt.want {
			t.Errorf("Verb(%d).String() = %q, want %q", tt.verb, got, tt.want)
		}
	}
}

func TestParseVerb(t *testing.T) {
	for _, c := range []byte("MLQCZ") {
		v, err := ParseVerb(c)
		if err != nil {
			t.Fatalf("ParseVerb(%q): %v", c, err)
		}
		if v.String() != string(c) {
			t.Errorf("ParseVerb(%q) = %s", c, v)
		}
	}
	if _, err := ParseVerb('A'); !errors.Is(err, ErrUnknownVerb) {
		t.Errorf("ParseVerb('A') err = %v, want ErrUnknownVerb", err)
	}
}

func TestCommand_CanConvertTo(t *testing.T) {
	line := mustCommand(t, Line, Pt(0, 0), Pt(10, 0))
	closeCmd := mustCommand(t, Close, Pt(10, 0), Pt(0, 0))
	move := mustCommand(t, Move, Pt(0, 0), Pt(10, 0))
	quad := mustCommand(t, Quad, Pt(0, 0), Pt(5, 5), Pt(10, 0))
	flatQuad := mustCommand(t, Quad, Pt(0, 0), Pt(0, 0), Pt(10, 0))
	cubic := mustCommand(t, Cubic, Pt(0, 0), Pt(0, 5), Pt(10, 5), Pt(10, 0))
	flatCubic := mustCommand(t, Cubic, Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0))

	tests := []struct {
		name   string
		cmd    Command
		target Verb
		want   bool
	}{
		{"line to quad", line, Quad, true},
		{"line to cubic", line, Cubic, true},
		{"line to line", line, Line, false},
		{"line to move", line, Move, false},
		{"line to close", line, Close, false},
		{"close to line", closeCmd, Line, true},
		{"close to cubic", closeCmd, Cubic, true},
		{"move to line", move, Line, false},
		{"quad to cubic", quad, Cubic, true},
		{"curved quad to line", quad, Line, false},
		{"flat quad to line", flatQuad, Line, true},
		{"cubic to quad", cubic, Quad, false},
		{"curved cubic to line", cubic, Line, false},
		{"flat cubic to line", flatCubic, Line, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.CanConvertTo(tt.target); got != tt.want {
				t.Errorf("CanConvertTo(%s) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestCommand_Reversed(t *testing.T) {
	c := mustCommand(t, Cubic, Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 6))
	r := c.Reversed()

	want := []Point{Pt(5, 6), Pt(3, 4), Pt(1, 2), Pt(0, 0)}
	for i, p := range r.Points() {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
	if r.ID() != c.ID() {
		t.Errorf("Reversed changed the ID")
	}
}

func TestCommand_PointsIsCopy(t *testing.T) {
	c := mustCommand(t, Line, Pt(0, 0), Pt(10, 0))
	pts := c.Points()
	pts[1] = Pt(99, 99)
	if c.End() != Pt(10, 0) {
		t.Errorf("modifying Points() changed the command: End = %v", c.End())
	}
}

func TestCommand_Transform(t *testing.T) {
	c := mustCommand(t, Quad, Pt(0, 0), Pt(1, 1), Pt(2, 0))
	got := c.Transform(Translate(10, 20))

	want := []Point{Pt(10, 20), Pt(11, 21), Pt(12, 20)}
	for i, p := range got.Points() {
		if !pointsEqual(p, want[i], epsilon) {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestCommand_Interpolate(t *testing.T) {
	a := mustCommand(t, Line, Pt(0, 0), Pt(10, 0))
	b := mustCommand(t, Line, Pt(0, 10), Pt(20, 10))

	mid := a.Interpolate(b, 0.5)
	if mid.Start() != Pt(0, 5) || mid.End() != Pt(15, 5) {
		t.Errorf("Interpolate = %v..%v, want (0,5)..(15,5)", mid.Start(), mid.End())
	}

	q := mustCommand(t, Quad, Pt(0, 0), Pt(1, 1), Pt(2, 0))
	if got := a.Interpolate(q, 0.5); got.Verb() != Line || got.End() != a.End() {
		t.Errorf("mismatched verbs should return the receiver, got %v", got)
	}
}

func TestCommand_String(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{mustCommand(t, Move, Pt(0, 0), Pt(1.5, 2)), "M 1.5 2"},
		{mustCommand(t, Line, Pt(0, 0), Pt(-3, 4)), "L -3 4"},
		{mustCommand(t, Cubic, Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 6)), "C 1 2 3 4 5 6"},
		{mustCommand(t, Close, Pt(5, 6), Pt(0, 0)), "Z"},
		{mustCommand(t, Quad, Pt(0, 0), Pt(0.33333, 1), Pt(2, 0)), "Q 0.333 1 2 0"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
