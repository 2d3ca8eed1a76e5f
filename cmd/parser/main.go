/*
Command parser is a debug tool that exercises the package's PEG grammar
directly: it parses its argument as a dice_expression, prints the parse tree
the grammar produced, and then evaluates it.
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rollforge/dicechat"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: parser <dice-expression>")
		os.Exit(1)
	}

	src := os.Args[1]
	expr, err := dice.ParseDiceExpr(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printNode(expr, 0)

	ctx := dice.NewEvalContext(context.Background())
	sum, faces, err := dice.EvalDiceExpr(ctx, expr, dice.Source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("= %d %s\n", sum, faces.String())
}

func printNode(n dice.Node, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
	fmt.Printf("%s: %q\n", n.Rule(), n.Text())

	switch v := n.(type) {
	case *dice.DiceExprNode:
		if v.Left != nil {
			printNode(v.Left, depth+1)
		}
		if v.Right != nil {
			printNode(v.Right, depth+1)
		}
		if v.Roll != nil {
			printNode(v.Roll, depth+1)
		}
		if v.Math != nil {
			printNode(v.Math, depth+1)
		}
	case *dice.DiceRollNode:
		printNode(v.NumDice, depth+1)
		printNode(v.Faces, depth+1)
		if v.Modifier != nil {
			printNode(v.Modifier, depth+1)
		}
	case *dice.MathNode:
		if v.Left != nil {
			printNode(v.Left, depth+1)
		}
		if v.Right != nil {
			printNode(v.Right, depth+1)
		}
	}
}
