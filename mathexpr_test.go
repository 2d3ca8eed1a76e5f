package dice

import "testing"

func mustParseMath(t *testing.T, s string) *MathNode {
	t.Helper()
	sc := newScanner(s)
	n, ok := parseMath(sc)
	if !ok || !sc.eof() {
		t.Fatalf("parseMath(%q) failed to parse fully", s)
	}
	return n
}

func TestEvalMathBasic(t *testing.T) {
	cases := []struct {
		expr string
		want int
	}{
		{"3", 3},
		{"(2+3)", 5},
		{"(10-4)", 6},
		{"(3*4)", 12},
		{"(10/3)", 3},
		{"((0-10)/3)", -4}, // floored toward -infinity, not truncated toward 0
		{"(2^5)", 32},
		{"(0^5)", 1},
		{"(10%3)", 1},
		{"((0-1)%3)", 2}, // floor-mod takes the divisor's sign
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			got := evalMath(mustParseMath(t, c.expr))
			if got != c.want {
				t.Errorf("evalMath(%q) = %d, want %d", c.expr, got, c.want)
			}
		})
	}
}

func TestEvalMathDegeneracies(t *testing.T) {
	cases := []struct {
		expr string
		want int
	}{
		{"(5/0)", 5},  // a/0 = a
		{"(0^7)", 1},  // 0^b = 1
		{"(9%0)", 0},  // a%0 = 0
		{"(0^0)", 1},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			got := evalMath(mustParseMath(t, c.expr))
			if got != c.want {
				t.Errorf("evalMath(%q) = %d, want %d", c.expr, got, c.want)
			}
		})
	}
}

func TestEvalMathAdditiveLaw(t *testing.T) {
	a := mustParseMath(t, "7")
	b := mustParseMath(t, "12")
	sum := mustParseMath(t, "(7+12)")
	if evalMath(sum) != evalMath(a)+evalMath(b) {
		t.Errorf("evalMath(a+b) != evalMath(a)+evalMath(b)")
	}
}
