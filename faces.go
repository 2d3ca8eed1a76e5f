package dice

import (
	"strconv"
	"strings"
)

// Faces is the face sequence a dice_expression contributes toward its final
// render: either the flat list of individual die results that fed a single
// roll's sum, or — when two dice expressions are combined by a binary
// operator and both sides rolled dice — the two-element nesting of the two
// sides' own Faces.
type Faces struct {
	Ints   []int
	Nested []Faces
}

// Empty reports whether this Faces carries no dice at all, the case for a
// bare math_expression operand.
func (f Faces) Empty() bool {
	return len(f.Ints) == 0 && len(f.Nested) == 0
}

func (f Faces) String() string {
	var parts []string
	if f.Nested != nil {
		for _, n := range f.Nested {
			parts = append(parts, n.String())
		}
	} else {
		for _, v := range f.Ints {
			parts = append(parts, strconv.Itoa(v))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// combineFaces implements §4.5's face-combination rule for a binary
// dice_expression: the non-dice side drops out entirely, and only when both
// sides rolled dice do the two Faces nest.
func combineFaces(a, b Faces) Faces {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return Faces{Nested: []Faces{a, b}}
}
