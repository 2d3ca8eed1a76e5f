package dice

import "testing"

func TestCompareOpApply(t *testing.T) {
	cases := []struct {
		op        CompareOp
		value     int
		threshold int
		want      bool
	}{
		{EQ, 5, 5, true},
		{EQ, 5, 6, false},
		{NE, 5, 6, true},
		{GE, 5, 5, true},
		{GE, 4, 5, false},
		{LE, 5, 5, true},
		{LE, 6, 5, false},
		{GT, 6, 5, true},
		{LT, 4, 5, true},
	}
	for _, c := range cases {
		if got := c.op.Apply(c.value, c.threshold); got != c.want {
			t.Errorf("%v.Apply(%d, %d) = %v, want %v", c.op, c.value, c.threshold, got, c.want)
		}
	}
}

func TestLookupCompareOpRoundTrips(t *testing.T) {
	for _, s := range []string{"==", "!=", ">=", "<=", ">", "<"} {
		op, ok := LookupCompareOp(s)
		if !ok {
			t.Fatalf("LookupCompareOp(%q) not found", s)
		}
		if op.String() != s {
			t.Errorf("LookupCompareOp(%q).String() = %q", s, op.String())
		}
	}
}

func TestLookupCompareOpUnknown(t *testing.T) {
	if _, ok := LookupCompareOp("<=>"); ok {
		t.Errorf("expected unknown comparator to report not-found")
	}
}
