package command

import (
	"context"
	"fmt"

	"github.com/rollforge/dicechat"
	"github.com/urfave/cli"
)

// RollCommand parses the first argument as a dice expression, evaluates it,
// and prints the resulting sum and the faces that produced it.
func RollCommand(c *cli.Context) error {
	ctx := dice.NewEvalContext(context.Background())

	notation := c.Args().Get(0)
	expr, err := dice.ParseDiceExpr(notation)
	if err != nil {
		return err
	}
	sum, faces, err := dice.EvalDiceExpr(ctx, expr, dice.Source)
	if err != nil {
		return err
	}

	res := map[string]interface{}{
		"notation": notation,
		"sum":      sum,
		"faces":    faces.String(),
	}
	out, err := Output(c, res)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
