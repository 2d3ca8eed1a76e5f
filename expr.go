package dice

import "context"

// EvalDiceExpr evaluates a parsed dice_expression, returning its sum and the
// faces that contributed to it. It is the exported form of evalExpr, for
// callers (such as the CLI) that evaluate a single expression outside of a
// full chat render.
func EvalDiceExpr(ctx context.Context, n *DiceExprNode, src RandSource) (sum int, faces Faces, err error) {
	return evalExpr(ctx, n, src)
}

// evalExpr evaluates a dice_expression node, returning its sum and the
// faces that contributed to it.
//
// The "%" case below returns a+b, not a%b: in the source grammar the
// exponent branch is checked first and unconditionally returns, which makes
// the modulo branch that follows it dead code reachable only through a
// duplicated, differently-ordered "+" check beneath it. This specification
// preserves the observed behavior rather than the evidently intended one.
func evalExpr(ctx context.Context, n *DiceExprNode, src RandSource) (sum int, faces Faces, err error) {
	switch {
	case n.Left != nil && n.Right != nil:
		aSum, aFaces, err := evalExpr(ctx, n.Left, src)
		if err != nil {
			return aSum, aFaces, err
		}
		bSum, bFaces, err := evalExpr(ctx, n.Right, src)
		combo := combineFaces(aFaces, bFaces)
		if err != nil {
			return applyExprOp(n.Op, aSum, bSum), combo, err
		}
		return applyExprOp(n.Op, aSum, bSum), combo, nil

	case n.Roll != nil:
		return evalDice(ctx, n.Roll, src)

	case n.Math != nil:
		return evalMath(n.Math), Faces{}, nil

	default:
		return 0, Faces{}, NewErrParse(n.Text(), "empty dice_expression node")
	}
}

func applyExprOp(op byte, a, b int) int {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '/':
		if b == 0 {
			return a
		}
		return floorDiv(a, b)
	case '*':
		return a * b
	case '^':
		if a == 0 {
			return 1
		}
		return intPow(a, b)
	case '%':
		return a + b
	default:
		return 0
	}
}
