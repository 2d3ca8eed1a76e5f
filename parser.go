package dice

// This file implements the grammar of spec §4.1 as a hand-rolled PEG
// recursive-descent parser: each production tries its alternatives in
// order, fully backtracking (restoring the scanner position) whenever an
// alternative fails partway through. Once an alternative matches in full it
// is never reconsidered, even if an enclosing production goes on to fail —
// that is ordinary PEG ordered-choice behavior, not a bug, and it is why a
// few inputs that "look like" they should parse (e.g. a parenthesized dice
// count at the top of an equation) do not: the leading "(" is greedily
// claimed by dice_expression's own composite alternative before dice_roll
// ever gets a chance to look at it.

// ParseChat parses s against chat_request. Parsing a chat string cannot
// fail: every byte that is not part of a recognized equation_request is
// preserved as a literal chunk.
func ParseChat(s string) *ChatNode {
	sc := newScanner(s)
	node := &ChatNode{}
	for !sc.eof() {
		start := sc.mark()
		if eq, ok := parseEquation(sc); ok {
			node.Chunks = append(node.Chunks, ChatChunk{Equation: eq})
			continue
		}
		sc.reset(start)
		r, ok := sc.nextRune()
		if !ok {
			break
		}
		node.Chunks = append(node.Chunks, ChatChunk{Literal: string(r)})
	}
	return node
}

// ParseDiceRoll parses s as a single, unbracketed dice_roll, e.g. "2d6!".
// Unlike ParseDiceExpr it accepts neither a bare math_expression nor a
// parenthesized combination of expressions.
func ParseDiceRoll(s string) (*DiceRollNode, error) {
	sc := newScanner(s)
	roll, ok := parseDiceRoll(sc)
	if !ok || !sc.eof() {
		return nil, NewErrParse(s, "not a valid dice roll")
	}
	return roll, nil
}

// ParseDiceExpr parses s as a single, unbracketed dice_expression, e.g.
// "(1d20+5)". It is used by the CLI's roll command, the cmd/parser debug
// tool, and the server's /v1/roll/{expression} route.
func ParseDiceExpr(s string) (*DiceExprNode, error) {
	sc := newScanner(s)
	expr, ok := parseDiceExpr(sc)
	if !ok || !sc.eof() {
		return nil, NewErrParse(s, "not a valid dice expression")
	}
	return expr, nil
}

func parseEquation(sc *scanner) (*EquationNode, bool) {
	start := sc.mark()
	if !sc.literal("[[") {
		sc.reset(start)
		return nil, false
	}
	inner, ok := parseDiceExpr(sc)
	if !ok {
		sc.reset(start)
		return nil, false
	}
	if !sc.literal("]]") {
		sc.reset(start)
		return nil, false
	}
	return &EquationNode{text: sc.textRange(start, sc.mark()), Inner: inner}, true
}

func parseDiceExpr(sc *scanner) (*DiceExprNode, bool) {
	start := sc.mark()

	// Alternative 1: "(" dice_expression binary_operator dice_expression ")"
	if sc.literal("(") {
		if left, ok := parseDiceExpr(sc); ok {
			if op, ok := parseBinaryOperator(sc); ok {
				if right, ok := parseDiceExpr(sc); ok && sc.literal(")") {
					return &DiceExprNode{
						text:  sc.textRange(start, sc.mark()),
						Left:  left,
						Op:    op,
						Right: right,
					}, true
				}
			}
		}
	}
	sc.reset(start)

	// Alternative 2: dice_roll
	if roll, ok := parseDiceRoll(sc); ok {
		return &DiceExprNode{text: sc.textRange(start, sc.mark()), Roll: roll}, true
	}
	sc.reset(start)

	// Alternative 3: math_expression
	if m, ok := parseMath(sc); ok {
		return &DiceExprNode{text: sc.textRange(start, sc.mark()), Math: m}, true
	}
	sc.reset(start)

	return nil, false
}

func parseDiceRoll(sc *scanner) (*DiceRollNode, bool) {
	start := sc.mark()

	numDice, ok := parseMath(sc)
	if !ok {
		sc.reset(start)
		return nil, false
	}
	if !sc.literal("d") {
		sc.reset(start)
		return nil, false
	}
	faces, ok := parseMath(sc)
	if !ok {
		sc.reset(start)
		return nil, false
	}

	var mod *ModifierNode
	mstart := sc.mark()
	if m, ok := parseDiceMod(sc); ok {
		mod = m
	} else {
		sc.reset(mstart)
	}

	return &DiceRollNode{
		text:     sc.textRange(start, sc.mark()),
		NumDice:  numDice,
		Faces:    faces,
		Modifier: mod,
	}, true
}

func parseMath(sc *scanner) (*MathNode, bool) {
	start := sc.mark()

	if n, ok := parseNumberNode(sc); ok {
		return n, true
	}
	sc.reset(start)

	if sc.literal("(") {
		if left, ok := parseMath(sc); ok {
			if op, ok := parseBinaryOperator(sc); ok {
				if right, ok := parseMath(sc); ok && sc.literal(")") {
					return &MathNode{
						text:  sc.textRange(start, sc.mark()),
						Left:  left,
						Op:    op,
						Right: right,
					}, true
				}
			}
		}
	}
	sc.reset(start)

	return nil, false
}

func parseBinaryOperator(sc *scanner) (byte, bool) {
	if sc.eof() {
		return 0, false
	}
	start := sc.mark()
	r, _ := sc.nextRune()
	switch r {
	case '+', '-', '/', '*', '^', '%':
		return byte(r), true
	}
	sc.reset(start)
	return 0, false
}

// comparatorLiterals is ordered longest-match-first so "==" is tried before
// "=" would be (there is no bare "=" in the grammar, but ">=" must still be
// tried before ">").
var comparatorLiterals = []string{"==", "!=", ">=", "<=", ">", "<"}

func parseComparator(sc *scanner) (CompareOp, bool) {
	start := sc.mark()
	for _, lit := range comparatorLiterals {
		if sc.literal(lit) {
			op, _ := LookupCompareOp(lit)
			return op, true
		}
	}
	sc.reset(start)
	return 0, false
}

// parsePredicate parses the optional "comparator threshold" suffix shared by
// the explode family (threshold is a math_expression) and reroll family
// (threshold is a bare number). It is a single optional group: if a
// comparator is present but no valid threshold follows, the whole group is
// omitted and the scanner is rewound, per the grammar's Optional semantics.
func parsePredicate(sc *scanner, parseThreshold func(*scanner) (*MathNode, bool)) *CompareNode {
	start := sc.mark()
	op, ok := parseComparator(sc)
	if !ok {
		sc.reset(start)
		return nil
	}
	thr, ok := parseThreshold(sc)
	if !ok {
		sc.reset(start)
		return nil
	}
	return &CompareNode{Op: op, Threshold: thr}
}

func parseDiceMod(sc *scanner) (*ModifierNode, bool) {
	start := sc.mark()

	if n, ok := parseExplodeFamily(sc, "!!", ModCompoundExplode); ok {
		return n, true
	}
	sc.reset(start)
	if n, ok := parseExplodeFamily(sc, "!p", ModPenetratingExplode); ok {
		return n, true
	}
	sc.reset(start)
	if n, ok := parseExplodeFamily(sc, "!", ModExplode); ok {
		return n, true
	}
	sc.reset(start)
	if n, ok := parseCountMod(sc, "d", ModDrop); ok {
		return n, true
	}
	sc.reset(start)
	if n, ok := parseCountMod(sc, "k", ModKeep); ok {
		return n, true
	}
	sc.reset(start)
	if n, ok := parseRerollFamily(sc, "ro", ModRerollOnce); ok {
		return n, true
	}
	sc.reset(start)
	if n, ok := parseRerollFamily(sc, "r", ModReroll); ok {
		return n, true
	}
	sc.reset(start)
	if n, ok := parseCountMod(sc, "b", ModBottom); ok {
		return n, true
	}
	sc.reset(start)

	return nil, false
}

func parseExplodeFamily(sc *scanner, lit string, kind ModifierKind) (*ModifierNode, bool) {
	start := sc.mark()
	if !sc.literal(lit) {
		sc.reset(start)
		return nil, false
	}
	cmp := parsePredicate(sc, parseMath)
	return &ModifierNode{text: sc.textRange(start, sc.mark()), Kind: kind, Compare: cmp}, true
}

func parseRerollFamily(sc *scanner, lit string, kind ModifierKind) (*ModifierNode, bool) {
	start := sc.mark()
	if !sc.literal(lit) {
		sc.reset(start)
		return nil, false
	}
	// reroll's threshold is a bare number, not a parenthesized math_expression.
	cmp := parsePredicate(sc, parseNumberNode)
	return &ModifierNode{text: sc.textRange(start, sc.mark()), Kind: kind, Compare: cmp}, true
}

func parseCountMod(sc *scanner, lit string, kind ModifierKind) (*ModifierNode, bool) {
	start := sc.mark()
	if !sc.literal(lit) {
		sc.reset(start)
		return nil, false
	}
	count, ok := parseMath(sc)
	if !ok {
		sc.reset(start)
		return nil, false
	}
	return &ModifierNode{text: sc.textRange(start, sc.mark()), Kind: kind, Count: count}, true
}

func parseNumberNode(sc *scanner) (*MathNode, bool) {
	start := sc.mark()
	d, ok := sc.digits()
	if !ok {
		sc.reset(start)
		return nil, false
	}
	return &MathNode{text: d, Number: d}, true
}
