/*
Package dice implements a chat-embedded dice and arithmetic expression
language. A chat string may contain bracketed equations of the form
[[ expression ]]; each is parsed against a small, fully-parenthesized grammar
combining integer arithmetic with dice rolls and roll modifiers, evaluated
against an injectable random source, and rendered back into the surrounding
text as "<total> {<source> <faces>}".

# Notation

A dice roll is written AdF, where A is the number of F-sided dice to roll.
Rolls may carry a single modifier: compound explode (!!), penetrating
explode (!p), explode (!), drop (d), keep (k), reroll once (ro), reroll (r),
or bottom (b). Arithmetic is integer-only and does not support operator
precedence: composite expressions must be fully parenthesized, e.g.
(1d20+5) rather than 1d20+5.
*/
package dice
