package dice

import (
	"context"
	"strconv"
)

// RenderEquation evaluates eq and formats it as "<total> {<source> <faces>}",
// where <source> is the verbatim text between the equation's [[ and ]] and
// <faces> is the faces sequence that fed the total, printed Python-list
// style (e.g. "[6, 6, 6, 6]", or "[]" for a pure math expression).
func RenderEquation(ctx context.Context, eq *EquationNode, src RandSource) (string, error) {
	sum, faces, err := evalExpr(ctx, eq.Inner, src)
	rendered := strconv.Itoa(sum) + " {" + eq.Inner.Text() + " " + faces.String() + "}"
	return rendered, err
}

// RenderChat renders every equation in a chat_request, replacing each with
// its RenderEquation output and passing every other byte through unchanged.
// A render error for one equation does not prevent the rest of the message
// from rendering; the failing equation's partial result (if any) is used.
func RenderChat(ctx context.Context, node *ChatNode, src RandSource) string {
	var out []byte
	for _, chunk := range node.Chunks {
		if chunk.Equation != nil {
			rendered, _ := RenderEquation(ctx, chunk.Equation, src)
			out = append(out, rendered...)
			continue
		}
		out = append(out, chunk.Literal...)
	}
	return string(out)
}
