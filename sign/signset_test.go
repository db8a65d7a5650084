package sign

import "testing"

func TestSetNegate(t *testing.T) {
	cases := []struct {
		in, want Set
	}{
		{Empty, Empty},
		{Neg, Pos},
		{Pos, Neg},
		{Zero, Zero},
		{NaN, NaN},
		{Neg | Zero, Zero | Pos},
		{Full, Full},
	}
	for _, c := range cases {
		if got := c.in.Negate(); got != c.want {
			t.Errorf("%s.Negate() = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestSetCertainly(t *testing.T) {
	if !Zero.CertainlyZero() {
		t.Error("Zero.CertainlyZero() = false, want true")
	}
	if (Neg | Zero).CertainlyZero() {
		t.Error("{Neg,Zero}.CertainlyZero() = true, want false")
	}
	if !(Neg | Pos).CertainlyNonzero() {
		t.Error("{Neg,Pos}.CertainlyNonzero() = false, want true")
	}
	if (Neg | Zero).CertainlyNonzero() {
		t.Error("{Neg,Zero}.CertainlyNonzero() = true, want false")
	}
	if Empty.CertainlyNonzero() {
		t.Error("Empty.CertainlyNonzero() = true, want false")
	}
}

func TestSetString(t *testing.T) {
	if got := (Neg | Zero | Pos).String(); got != "{-,0,+}" {
		t.Errorf("String() = %q", got)
	}
	if got := Empty.String(); got != "{}" {
		t.Errorf("String() = %q", got)
	}
}
