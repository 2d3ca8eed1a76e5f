package dice

import "context"

// applyModifier transforms a dice_roll's raw rolls according to its
// modifier, following §4.4's eight variants. faces is the die size the roll
// was made against, used by the explode and reroll variants for their
// default predicates and new draws; drop, keep and bottom ignore it.
func applyModifier(ctx context.Context, rolls []int, faces int, mod *ModifierNode, src RandSource) ([]int, error) {
	switch mod.Kind {
	case ModCompoundExplode:
		return compoundExplode(ctx, rolls, faces, mod, src)
	case ModPenetratingExplode:
		return penetratingExplode(ctx, rolls, faces, mod, src)
	case ModExplode:
		return explode(ctx, rolls, faces, mod, src)
	case ModDrop:
		return dropLowest(rolls, evalMath(mod.Count)), nil
	case ModKeep:
		return keepLowest(rolls, evalMath(mod.Count)), nil
	case ModBottom:
		return bottom(rolls, evalMath(mod.Count)), nil
	case ModRerollOnce:
		return rerollOnce(ctx, rolls, faces, mod, src)
	case ModReroll:
		return reroll(ctx, rolls, faces, mod, src)
	default:
		return rolls, nil
	}
}

// explodePredicate resolves a modifier's optional "comparator threshold"
// group to a concrete operator and value, defaulting to "==faces" (the
// modifier matched the die's max face) when the group was omitted.
func explodePredicate(mod *ModifierNode, faces int) (CompareOp, int) {
	if mod.Compare == nil {
		return EQ, faces
	}
	return mod.Compare.Op, evalMath(mod.Compare.Threshold)
}

func countMatching(vals []int, op CompareOp, val int) int {
	n := 0
	for _, v := range vals {
		if op.Apply(v, val) {
			n++
		}
	}
	return n
}

// compoundExplode implements "!!": every die matching the predicate is
// rolled again, and the new dice are checked against the same predicate in
// turn, until no new dice match or the roll's total dice count reaches 100.
func compoundExplode(ctx context.Context, rolls []int, faces int, mod *ModifierNode, src RandSource) ([]int, error) {
	op, val := explodePredicate(mod, faces)
	if op == EQ && val <= 1 {
		return rolls, nil
	}
	last := rolls
	for len(rolls) < 100 {
		n := countMatching(last, op, val)
		if n == 0 {
			break
		}
		next, err := doRoll(ctx, n, faces, src)
		rolls = append(rolls, next...)
		if err != nil {
			return rolls, err
		}
		last = next
	}
	return rolls, nil
}

// penetratingExplode implements "!p": like compound explode, but the face
// count shrinks by one on every explosion (1d20 exploding on 20 explodes
// into a d19, then a d18, and so on). When no predicate is given, the
// default "==faces" tracks that shrinking face count rather than staying
// pinned to the original size; an explicit predicate keeps its threshold.
func penetratingExplode(ctx context.Context, rolls []int, faces int, mod *ModifierNode, src RandSource) ([]int, error) {
	op, val := explodePredicate(mod, faces)
	defaulted := mod.Compare == nil
	last := rolls
	for len(rolls) < 100 {
		var n int
		if op == EQ && val > 1 {
			n = countMatching(last, op, val)
		} else if op != EQ {
			n = countMatching(last, op, val)
		}
		faces--
		if n == 0 || faces == 0 {
			break
		}
		next, err := doRoll(ctx, n, faces, src)
		rolls = append(rolls, next...)
		last = next
		if err != nil {
			return rolls, err
		}
		if defaulted {
			val = faces
		}
	}
	return rolls, nil
}

// explode implements "!": every die matching the predicate is rolled again
// exactly once; the new dice are not themselves checked against the
// predicate.
func explode(ctx context.Context, rolls []int, faces int, mod *ModifierNode, src RandSource) ([]int, error) {
	op, val := explodePredicate(mod, faces)
	if op == EQ && val <= 1 {
		return rolls, nil
	}
	n := countMatching(rolls, op, val)
	if n == 0 {
		return rolls, nil
	}
	next, err := doRoll(ctx, n, faces, src)
	rolls = append(rolls, next...)
	return rolls, err
}

func sortedCopy(rolls []int) []int {
	out := make([]int, len(rolls))
	copy(out, rolls)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// dropLowest implements "d": after ascending sort, keep the first len-n
// dice. Despite the name, this removes the n HIGHEST dice and keeps the
// lowest len-n (2d20d1 on [17, 4] keeps [4]); it shares the ascending-sort,
// slice-from-the-front convention of k and b.
func dropLowest(rolls []int, n int) []int {
	sorted := sortedCopy(rolls)
	keep := len(sorted) - n
	if keep > 0 {
		return sorted[:keep]
	}
	return []int{}
}

// keepLowest implements "k": after ascending sort, keep the lowest n dice.
func keepLowest(rolls []int, n int) []int {
	sorted := sortedCopy(rolls)
	if n > 0 {
		if n > len(sorted) {
			n = len(sorted)
		}
		return sorted[:n]
	}
	return []int{}
}

// bottom implements "b": after ascending sort, drop the lowest n dice and
// keep the rest — the complement of keepLowest for the same n.
func bottom(rolls []int, n int) []int {
	sorted := sortedCopy(rolls)
	if n < len(sorted) {
		if n < 0 {
			n = 0
		}
		return sorted[n:]
	}
	return []int{}
}

// rerollPredicate resolves a reroll family's optional "comparator number"
// group, defaulting to "<=1".
func rerollPredicate(mod *ModifierNode) (CompareOp, int) {
	if mod.Compare == nil {
		return LE, 1
	}
	return mod.Compare.Op, evalMath(mod.Compare.Threshold)
}

// rerollOnce implements "ro": every die matching the predicate is rerolled
// exactly once, regardless of what the reroll produces. Each comparator has
// its own guard that turns off rerolling for a degenerate threshold (e.g.
// ">=1", which would reroll every die, or ">" a value above faces).
func rerollOnce(ctx context.Context, rolls []int, faces int, mod *ModifierNode, src RandSource) ([]int, error) {
	op, val := rerollPredicate(mod)
	keep := rolls
	switch op {
	case EQ:
		if faces != 1 {
			keep = filterOut(rolls, func(v int) bool { return v == val })
		}
	case NE:
		if val > 0 && val <= faces {
			keep = filterOut(rolls, func(v int) bool { return v != val })
		}
	case GE:
		if val > 1 {
			keep = filterOut(rolls, func(v int) bool { return v >= val })
		}
	case LE:
		if val < faces {
			keep = filterOut(rolls, func(v int) bool { return v <= val })
		}
	case GT:
		if val <= faces {
			keep = filterOut(rolls, func(v int) bool { return v > val })
		}
	case LT:
		if val >= 1 {
			keep = filterOut(rolls, func(v int) bool { return v < val })
		}
	}
	n := len(rolls) - len(keep)
	if n == 0 {
		return keep, nil
	}
	next, err := doRoll(ctx, n, faces, src)
	return append(keep, next...), err
}

// filterOut returns the dice in rolls that do NOT match the predicate; the
// matched dice are what gets rerolled.
func filterOut(rolls []int, match func(int) bool) []int {
	out := make([]int, 0, len(rolls))
	for _, v := range rolls {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}

// rerollMatch returns the predicate for the dice that get rerolled under op.
// It is used by reroll; rerollOnce builds the same predicates inline next to
// its per-comparator guards.
func rerollMatch(op CompareOp, val int) func(int) bool {
	switch op {
	case EQ:
		return func(v int) bool { return v == val }
	case NE:
		return func(v int) bool { return v != val }
	case GE:
		return func(v int) bool { return v >= val }
	case LE:
		return func(v int) bool { return v <= val }
	case GT:
		return func(v int) bool { return v > val }
	case LT:
		return func(v int) bool { return v < val }
	default:
		return func(int) bool { return false }
	}
}

// reroll implements "r": like rerollOnce, but the resulting new dice are
// also checked against the predicate, repeatedly, until nothing new matches
// or the cumulative number of dice rerolled across every pass reaches 100 —
// note the cap is on dice rerolled, not on loop iterations.
func reroll(ctx context.Context, rolls []int, faces int, mod *ModifierNode, src RandSource) ([]int, error) {
	op, val := rerollPredicate(mod)
	match := rerollMatch(op, val)
	keep := rolls
	total := 0
	for total < 100 {
		survivors := filterOut(keep, match)
		n := len(keep) - len(survivors)
		total += n
		if n == 0 {
			keep = survivors
			break
		}
		rerolled, err := doRoll(ctx, n, faces, src)
		keep = append(survivors, rerolled...)
		if err != nil {
			return keep, err
		}
	}
	return keep, nil
}
