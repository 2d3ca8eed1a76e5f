package dice

import "context"

// MaxMessageLength is the longest chat message the renderer will process,
// applied independently to the input and the rendered output.
const MaxMessageLength = 200

// MessageTooLong replaces either the input or the output of Render when it
// exceeds MaxMessageLength.
const MessageTooLong = "Message too long."

// Render is the package's public entry point: it parses s as a chat_request
// and renders every equation it finds, passing all other text through
// unchanged. Parsing cannot fail, so Render cannot fail either; a failure
// while evaluating one equation (e.g. a roll budget exhausted by a
// pathological expression) is reflected in that equation's own rendered
// total rather than aborting the whole message.
//
// Pass a context built with NewEvalContext to get a fresh per-message roll
// budget. A plain context.Background() is also accepted, but then no roll
// budget is enforced: each draw is counted against a fresh throwaway
// counter (see totalRolls).
func Render(ctx context.Context, s string, src RandSource) string {
	if len(s) > MaxMessageLength {
		s = MessageTooLong
	}
	rendered := RenderChat(ctx, ParseChat(s), src)
	if len(rendered) > MaxMessageLength {
		rendered = MessageTooLong
	}
	return rendered
}
