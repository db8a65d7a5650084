package sign

import "testing"

func TestCertainlyTrueRequiresDef(t *testing.T) {
	weak := DecSignSet{S: Zero, D: Trv}
	if weak.CertainlyTrue() {
		t.Error("Trv-decorated zero should not be certainly true")
	}
	strong := DecSignSet{S: Zero, D: Def}
	if !strong.CertainlyTrue() {
		t.Error("Def-decorated exact zero should be certainly true")
	}
}

func TestAndOrWeakenDecoration(t *testing.T) {
	a := DecSignSet{S: Neg, D: Com}
	b := DecSignSet{S: Pos, D: Def}
	got := And(a, b)
	if got.D != Def {
		t.Errorf("And() decoration = %s, want %s", got.D, Def)
	}
	if got.S != (Neg | Pos) {
		t.Errorf("And() sign set = %s, want %s", got.S, Neg|Pos)
	}
}

func TestNotPreservesDecoration(t *testing.T) {
	a := DecSignSet{S: Neg | Zero, D: Dac}
	got := Not(a)
	if got.D != Dac {
		t.Errorf("Not() decoration = %s, want %s", got.D, Dac)
	}
	if got.S != (Pos | Zero) {
		t.Errorf("Not() sign set = %s, want %s", got.S, Pos|Zero)
	}
}

func TestLocallyZeroNeedsDac(t *testing.T) {
	if (DecSignSet{S: Zero, D: Def}).LocallyZero() {
		t.Error("Def should not satisfy LocallyZero (requires Dac)")
	}
	if !(DecSignSet{S: Zero, D: Com}).LocallyZero() {
		t.Error("Com should satisfy LocallyZero")
	}
}
