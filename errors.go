package dice

import "github.com/pkg/errors"

// ErrParse is returned when input cannot be matched by the chat_request
// grammar. Because chat_request's final alternative matches any single
// character, this should only ever surface through an implementation bug.
type ErrParse struct {
	Input   string
	Message string
}

func (e *ErrParse) Error() string {
	return "parsing chat string " + quote(e.Input) + ": " + e.Message
}

// NewErrParse wraps a lower-level parse failure with the offending input.
func NewErrParse(input, message string) error {
	return errors.WithStack(&ErrParse{Input: input, Message: message})
}

// ErrNilSource is returned when a RandSource is required but none was
// provided.
var ErrNilSource = errors.New("dice: nil random source")

// ErrRollBudgetExceeded is returned when an evaluation context's total roll
// budget (MaxRequestRolls, or a ctx-local override set via WithMaxRolls) is
// exhausted partway through evaluating a dice expression.
var ErrRollBudgetExceeded = errors.New("dice: roll budget exceeded")
