package dice

import (
	"context"
	"testing"
)

func evalExprString(t *testing.T, s string, src RandSource) (int, Faces) {
	t.Helper()
	expr, err := ParseDiceExpr(s)
	if err != nil {
		t.Fatalf("ParseDiceExpr(%q): %v", s, err)
	}
	ctx := NewEvalContext(context.Background())
	sum, faces, err := evalExpr(ctx, expr, src)
	if err != nil {
		t.Fatalf("evalExpr(%q): %v", s, err)
	}
	return sum, faces
}

func TestEvalExprModuloIsAddition(t *testing.T) {
	// Per spec.md §9.2, evalExpr's "%" is preserved as addition, not modulo —
	// unlike evalMath's "%", which is true floored modulo.
	sum, _ := evalExprString(t, "(5%3)", MaxFaceSource{})
	if sum != 8 {
		t.Errorf("evalExpr((5%%3)) = %d, want 8 (addition, not modulo)", sum)
	}
}

func TestEvalExprDivisionByZero(t *testing.T) {
	sum, _ := evalExprString(t, "(7/0)", MaxFaceSource{})
	if sum != 7 {
		t.Errorf("evalExpr((7/0)) = %d, want 7", sum)
	}
}

func TestEvalExprZeroToPower(t *testing.T) {
	sum, _ := evalExprString(t, "(0^9)", MaxFaceSource{})
	if sum != 1 {
		t.Errorf("evalExpr((0^9)) = %d, want 1", sum)
	}
}

func TestEvalExprCombinesTwoDiceFaces(t *testing.T) {
	sum, faces := evalExprString(t, "(1d4+1d6)", FixedSource{Value: 3})
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
	if got := faces.String(); got != "[[3], [3]]" {
		t.Errorf("faces = %q, want %q", got, "[[3], [3]]")
	}
}
