package dice

import "context"

// maxDiceFaces is the clamp doRoll applies to both the number of dice and
// the number of faces per die, guarding against a single roll request
// exhausting memory or the roll budget on its own.
const maxDiceFaces = 300

// doRoll draws n dice of f faces each from src, counting every draw against
// ctx's roll budget. A request for more dice than the remaining budget
// allows returns the dice rolled so far alongside ErrRollBudgetExceeded.
func doRoll(ctx context.Context, n, f int, src RandSource) ([]int, error) {
	if n > maxDiceFaces {
		n = maxDiceFaces
	}
	if n < 0 {
		n = 0
	}
	if f > maxDiceFaces {
		f = maxDiceFaces
	}

	rolls := make([]int, 0, n)
	if f <= 0 {
		for i := 0; i < n; i++ {
			rolls = append(rolls, 0)
		}
		return rolls, nil
	}

	for i := 0; i < n; i++ {
		if addRolls(ctx, 1) {
			return rolls, ErrRollBudgetExceeded
		}
		v, err := src.Uniform(1, f)
		if err != nil {
			return rolls, err
		}
		rolls = append(rolls, v)
	}
	return rolls, nil
}

func sumInts(vals []int) int {
	s := 0
	for _, v := range vals {
		s += v
	}
	return s
}

// evalDice evaluates a dice_roll node: rolls NumDice dice of Faces faces,
// applies the optional modifier, and returns the summed total alongside the
// faces actually used in the sum.
func evalDice(ctx context.Context, n *DiceRollNode, src RandSource) (sum int, faces Faces, err error) {
	if src == nil {
		return 0, Faces{}, ErrNilSource
	}

	numDice := evalMath(n.NumDice)
	numFaces := evalMath(n.Faces)

	rolls, err := doRoll(ctx, numDice, numFaces, src)
	if err != nil {
		return sumInts(rolls), Faces{Ints: rolls}, err
	}

	if n.Modifier != nil {
		rolls, err = applyModifier(ctx, rolls, numFaces, n.Modifier, src)
		if err != nil {
			return sumInts(rolls), Faces{Ints: rolls}, err
		}
	}

	return sumInts(rolls), Faces{Ints: rolls}, nil
}
