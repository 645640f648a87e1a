package ir

import "testing"

func TestOperationNegateInvolution(t *testing.T) {
	subset := []Operation{OpNot, OpTrue, OpLt, OpLte, OpGt, OpGte, OpEq, OpNeq}
	for _, op := range subset {
		got := op.Negate().Negate()
		if got != op {
			t.Errorf("Negate(Negate(%v)) = %v, want %v", op, got, op)
		}
	}
}

func TestOperationNegatePairs(t *testing.T) {
	cases := []struct {
		op, want Operation
	}{
		{OpNot, OpTrue},
		{OpTrue, OpNot},
		{OpLt, OpGte},
		{OpGte, OpLt},
		{OpLte, OpGt},
		{OpGt, OpLte},
		{OpEq, OpNeq},
		{OpNeq, OpEq},
	}
	for _, c := range cases {
		if got := c.op.Negate(); got != c.want {
			t.Errorf("Negate(%v) = %v, want %v", c.op, got, c.want)
		}
	}
}

func TestOperationNegateIgnoresNonComparison(t *testing.T) {
	nonComparison := []Operation{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpBitAnd, OpAnd, OpOr}
	for _, op := range nonComparison {
		if got := op.Negate(); got != op {
			t.Errorf("Negate(%v) = %v, want unchanged %v", op, got, op)
		}
	}
}

func TestOperationStringRoundTrips(t *testing.T) {
	if OpAdd.String() != "+" {
		t.Errorf("OpAdd.String() = %q, want %q", OpAdd.String(), "+")
	}
	if OpPow.String() != "**" {
		t.Errorf("OpPow.String() = %q, want %q", OpPow.String(), "**")
	}
}
