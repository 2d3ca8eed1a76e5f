package dice

import (
	"context"
	"testing"
)

func TestDoRollClampsCount(t *testing.T) {
	ctx := NewEvalContext(context.Background())
	rolls, err := doRoll(ctx, 1000, 6, MaxFaceSource{})
	if err != nil {
		t.Fatalf("doRoll: %v", err)
	}
	if len(rolls) != maxDiceFaces {
		t.Errorf("len(rolls) = %d, want %d (clamped)", len(rolls), maxDiceFaces)
	}
}

func TestDoRollNegativeCountClampsToZero(t *testing.T) {
	ctx := NewEvalContext(context.Background())
	rolls, err := doRoll(ctx, -5, 6, MaxFaceSource{})
	if err != nil {
		t.Fatalf("doRoll: %v", err)
	}
	if len(rolls) != 0 {
		t.Errorf("len(rolls) = %d, want 0", len(rolls))
	}
}

func TestDoRollNegativeFacesYieldsZeros(t *testing.T) {
	ctx := NewEvalContext(context.Background())
	rolls, err := doRoll(ctx, 5, -1, MaxFaceSource{})
	if err != nil {
		t.Fatalf("doRoll: %v", err)
	}
	if len(rolls) != 5 {
		t.Fatalf("len(rolls) = %d, want 5", len(rolls))
	}
	for _, v := range rolls {
		if v != 0 {
			t.Errorf("roll = %d, want 0 for negative faces", v)
		}
	}
}

func TestDoRollWithinRange(t *testing.T) {
	ctx := NewEvalContext(context.Background())
	rolls, err := doRoll(ctx, 50, 6, &SequenceSource{Values: []int{1, 2, 3, 4, 5, 6}})
	if err != nil {
		t.Fatalf("doRoll: %v", err)
	}
	for _, v := range rolls {
		if v < 1 || v > 6 {
			t.Errorf("roll %d out of [1,6]", v)
		}
	}
}

func TestDoRollBudgetExceeded(t *testing.T) {
	ctx := WithMaxRolls(NewEvalContext(context.Background()), 3)
	rolls, err := doRoll(ctx, 10, 6, MaxFaceSource{})
	if err != ErrRollBudgetExceeded {
		t.Fatalf("err = %v, want ErrRollBudgetExceeded", err)
	}
	if len(rolls) != 3 {
		t.Errorf("len(rolls) = %d, want 3 (stopped at budget)", len(rolls))
	}
}

func TestEvalDiceNilSource(t *testing.T) {
	roll, err := ParseDiceRoll("1d6")
	if err != nil {
		t.Fatalf("ParseDiceRoll: %v", err)
	}
	_, _, err = evalDice(context.Background(), roll, nil)
	if err != ErrNilSource {
		t.Fatalf("err = %v, want ErrNilSource", err)
	}
}
