package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rollforge/dicechat"
	"github.com/urfave/cli"
)

const replPrompt = ">>> "

// REPLCommand is a command that will initiate a dice chat REPL: each line
// read is rendered as a chat message, expanding every [[equation]] it finds.
func REPLCommand(c *cli.Context) error {
	scanner := bufio.NewScanner(os.Stdin)

	// Check if data was piped through Stdin, or if the REPL is interactive
	in, _ := os.Stdin.Stat()
	interactive := (in.Mode() & os.ModeCharDevice) != 0

	for {
		if interactive {
			fmt.Fprint(os.Stderr, replPrompt)
		}
		scanned := scanner.Scan()
		if !scanned {
			return nil
		}

		line := scanner.Text()
		if line == "quit" {
			return nil
		}

		ctx := dice.NewEvalContext(context.Background())
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		out := dice.Render(ctx, line, dice.Source)
		cancel()

		rendered, err := Output(c, out)
		if err != nil {
			return err
		}
		fmt.Println(rendered)
	}
}
