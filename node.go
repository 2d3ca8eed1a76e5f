package dice

// Node is implemented by every parse-tree production. Rule reports the
// grammar production name, mirroring the source implementation's
// rule_name-tagged tree (see DESIGN.md), but each production here is its own
// Go type rather than a generic node-with-children so evaluators can
// pattern-match exhaustively with a type switch instead of indexing into a
// children slice.
type Node interface {
	Rule() string
	// Text returns the verbatim source text the node was parsed from.
	Text() string
}

// MathNode is a math_expression: either a bare number or a fully
// parenthesized binary operation of two math_expressions.
type MathNode struct {
	text string

	// Number is set when this node is a bare number literal.
	Number string

	// Left, Right, and Op are set when this node is "(" expr op expr ")".
	Left  *MathNode
	Right *MathNode
	Op    byte
}

func (n *MathNode) Rule() string { return "math_expression" }
func (n *MathNode) Text() string { return n.text }

// IsNumber reports whether this node is a bare number literal rather than a
// parenthesized binary operation.
func (n *MathNode) IsNumber() bool { return n.Left == nil && n.Right == nil }

// CompareNode is a comparator applied to a threshold expression, used by the
// explode and reroll families of modifiers.
type CompareNode struct {
	Op        CompareOp
	Threshold *MathNode
}

// ModifierKind tags the variant a ModifierNode holds, in the grammar's
// ordered-choice order.
type ModifierKind int

const (
	ModCompoundExplode ModifierKind = iota
	ModPenetratingExplode
	ModExplode
	ModDrop
	ModKeep
	ModRerollOnce
	ModReroll
	ModBottom
)

var modifierRuleNames = map[ModifierKind]string{
	ModCompoundExplode:    "dice_compound_explode",
	ModPenetratingExplode: "dice_pen_explode",
	ModExplode:            "dice_explode",
	ModDrop:               "dice_drop",
	ModKeep:               "dice_keep",
	ModRerollOnce:         "dice_reroll_once",
	ModReroll:             "dice_reroll",
	ModBottom:             "dice_bottom",
}

// ModifierNode is a dice_mod: one of the eight modifier variants. Only the
// fields relevant to Kind are populated:
//
//   - ModCompoundExplode, ModPenetratingExplode, ModExplode, ModRerollOnce,
//     ModReroll: Compare (nil if the predicate was omitted, in which case
//     §4.4's default predicate applies).
//   - ModDrop, ModKeep, ModBottom: Count.
type ModifierNode struct {
	text string

	Kind    ModifierKind
	Compare *CompareNode
	Count   *MathNode
}

func (n *ModifierNode) Rule() string { return modifierRuleNames[n.Kind] }
func (n *ModifierNode) Text() string { return n.text }

// DiceRollNode is a dice_roll: NumDice "d" Faces, with an optional modifier.
type DiceRollNode struct {
	text string

	NumDice  *MathNode
	Faces    *MathNode
	Modifier *ModifierNode
}

func (n *DiceRollNode) Rule() string { return "dice_roll" }
func (n *DiceRollNode) Text() string { return n.text }

// DiceExprNode is a dice_expression: a parenthesized binary combination of
// dice expressions, a bare dice_roll, or a bare math_expression.
type DiceExprNode struct {
	text string

	Roll *DiceRollNode // set if this node is a bare dice_roll
	Math *MathNode     // set if this node is a bare math_expression

	// Left, Right, and Op are set for "(" dice_expression op dice_expression ")".
	Left  *DiceExprNode
	Right *DiceExprNode
	Op    byte
}

func (n *DiceExprNode) Rule() string { return "dice_expression" }
func (n *DiceExprNode) Text() string { return n.text }

// EquationNode is an equation_request: "[[" dice_expression "]]".
type EquationNode struct {
	text  string
	Inner *DiceExprNode
}

func (n *EquationNode) Rule() string { return "equation_request" }
func (n *EquationNode) Text() string { return n.text }

// ChatChunk is one element of a chat_request: either a rendered
// equation_request or a single pass-through literal rune.
type ChatChunk struct {
	Equation *EquationNode
	Literal  string
}

// ChatNode is a full chat_request: the ordered sequence of equations and
// single literal runes that make up a chat message.
type ChatNode struct {
	Chunks []ChatChunk
}

func (n *ChatNode) Rule() string { return "chat_request" }
func (n *ChatNode) Text() string {
	var b []byte
	for _, c := range n.Chunks {
		if c.Equation != nil {
			b = append(b, c.Equation.Text()...)
		} else {
			b = append(b, c.Literal...)
		}
	}
	return string(b)
}
