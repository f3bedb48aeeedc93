package life

import "testing"

func TestCreateCallsInitializerPerCell(t *testing.T) {
	calls := 0
	g := Create(4, 6, func() bool {
		calls++
		return calls%2 == 0
	})
	if calls != 24 {
		t.Fatalf("initializer called %d times, expected 24", calls)
	}
	if g.Rows() != 4 || g.Cols() != 6 {
		t.Fatalf("unexpected size %dx%d", g.Rows(), g.Cols())
	}
	if g.Alive(0, 0) || !g.Alive(0, 1) {
		t.Fatal("initializer results not stored in row-major order")
	}
	if g.Population() != 12 {
		t.Fatalf("population %d, expected 12", g.Population())
	}
}

func TestCreateSharesNoStorage(t *testing.T) {
	a := Create(3, 3, func() bool { return false })
	b := Create(3, 3, func() bool { return false })
	a.Set(1, 1, true)
	if b.Alive(1, 1) {
		t.Fatal("grids share storage")
	}

	c := a.Clone()
	c.Toggle(1, 1)
	if !a.Alive(1, 1) || c.Alive(1, 1) {
		t.Fatal("Clone shares storage with the original")
	}
}

func TestParseRoundTrip(t *testing.T) {
	text := "O..\n.O.\n..O\n"
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := g.String(); got != text {
		t.Fatalf("String() = %q, expected %q", got, text)
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	if _, err := Parse("OO\nO\n"); err == nil {
		t.Fatal("expected error for ragged rows")
	}
	if _, err := Parse("O?\n"); err == nil {
		t.Fatal("expected error for unknown cell glyph")
	}
}

func TestWrapAndContains(t *testing.T) {
	g := New(4, 5)
	if i, k := g.Wrap(-1, 5); i != 3 || k != 0 {
		t.Fatalf("Wrap(-1,5) = (%d,%d)", i, k)
	}
	if i, k := g.Wrap(9, -11); i != 1 || k != 4 {
		t.Fatalf("Wrap(9,-11) = (%d,%d)", i, k)
	}
	if !g.Contains(3, 4) || g.Contains(4, 0) || g.Contains(0, -1) {
		t.Fatal("Contains reports wrong bounds")
	}
}

func TestEqualComparesDimensions(t *testing.T) {
	if New(2, 3).Equal(New(3, 2)) {
		t.Fatal("grids with different shapes must not be equal")
	}
}
