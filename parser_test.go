package dice

import "testing"

func TestParseChatRoundTripsText(t *testing.T) {
	cases := []string{
		"no equations here",
		"one [[1d6]] equation",
		"[[1d6]] at the start",
		"ending with [[2d20d1]]",
		"[[1d6]] and [[2d6!]] together",
		"unterminated [[ bracket stays literal",
		"mismatched ]] bracket stays literal",
	}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			node := ParseChat(s)
			if got := node.Text(); got != s {
				t.Errorf("ParseChat(%q).Text() = %q, want %q", s, got, s)
			}
		})
	}
}

func TestParseDiceRollOrdering(t *testing.T) {
	cases := []struct {
		in   string
		kind ModifierKind
	}{
		{"1d20!!", ModCompoundExplode},
		{"1d20!p", ModPenetratingExplode},
		{"1d20!", ModExplode},
		{"2d20d1", ModDrop},
		{"2d20k1", ModKeep},
		{"2d10ro<5", ModRerollOnce},
		{"3d4r==2", ModReroll},
		{"2d20b1", ModBottom},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			roll, err := ParseDiceRoll(c.in)
			if err != nil {
				t.Fatalf("ParseDiceRoll(%q): %v", c.in, err)
			}
			if roll.Modifier == nil {
				t.Fatalf("ParseDiceRoll(%q): no modifier parsed", c.in)
			}
			if roll.Modifier.Kind != c.kind {
				t.Errorf("ParseDiceRoll(%q) modifier kind = %v, want %v", c.in, roll.Modifier.Kind, c.kind)
			}
		})
	}
}

func TestParseDiceRollNoModifier(t *testing.T) {
	roll, err := ParseDiceRoll("3d6")
	if err != nil {
		t.Fatalf("ParseDiceRoll: %v", err)
	}
	if roll.Modifier != nil {
		t.Errorf("unexpected modifier parsed: %v", roll.Modifier)
	}
	if roll.Text() != "3d6" {
		t.Errorf("Text() = %q, want %q", roll.Text(), "3d6")
	}
}

func TestParseDiceRollMathCount(t *testing.T) {
	roll, err := ParseDiceRoll("(1+3)d6")
	if err != nil {
		t.Fatalf("ParseDiceRoll: %v", err)
	}
	if roll.NumDice.IsNumber() {
		t.Errorf("NumDice should be a parenthesized expression")
	}
	if evalMath(roll.NumDice) != 4 {
		t.Errorf("evalMath(NumDice) = %d, want 4", evalMath(roll.NumDice))
	}
}

// A parenthesized math count at the TOP of a dice_expression (rather than
// inside a bare dice_roll) is not reachable: the grammar's dice_expression
// tries its own "(" dice_expression op dice_expression ")" alternative
// first, which greedily claims the leading paren as a composite expression
// delimiter before dice_roll ever gets a chance to treat it as a count.
func TestParseDiceExprDoesNotBacktrackIntoParenCount(t *testing.T) {
	_, err := ParseDiceExpr("(1+3)d6")
	if err == nil {
		t.Fatalf("expected ParseDiceExpr(%q) to fail per PEG ordered-choice semantics", "(1+3)d6")
	}
}

func TestParseDiceModOrderingCompoundBeforePenetrating(t *testing.T) {
	roll, err := ParseDiceRoll("3d8!!<=4")
	if err != nil {
		t.Fatalf("ParseDiceRoll: %v", err)
	}
	if roll.Modifier.Kind != ModCompoundExplode {
		t.Fatalf("kind = %v, want ModCompoundExplode", roll.Modifier.Kind)
	}
	if roll.Modifier.Compare == nil || roll.Modifier.Compare.Op != LE {
		t.Fatalf("expected LE comparator")
	}
	if evalMath(roll.Modifier.Compare.Threshold) != 4 {
		t.Fatalf("threshold = %d, want 4", evalMath(roll.Modifier.Compare.Threshold))
	}
}
