package command

import (
	"context"
	"fmt"

	"github.com/rollforge/dicechat"
	"github.com/urfave/cli"
)

// EvalCommand renders the first argument it is provided as a chat message,
// evaluating every [[equation]] it contains and printing the result.
func EvalCommand(c *cli.Context) error {
	ctx := dice.NewEvalContext(context.Background())

	msg := c.Args().Get(0)
	out := dice.Render(ctx, msg, dice.Source)
	rendered, err := Output(c, out)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}
