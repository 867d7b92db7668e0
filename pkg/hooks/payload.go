// Package hooks implements skillctl's side of the host runtime's lifecycle
// hook contract. The session-start hook assembles the skill catalog and an
// introductory document into a single JSON payload the host injects into the
// agent's context. The hook never fails visibly: every step degrades to
// fallback text so context injection cannot block session start.
package hooks

// SessionStartEvent is the hook event name the host runtime dispatches on.
const SessionStartEvent = "SessionStart"

// HookSpecificOutput carries the event name and the context text to inject.
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// SessionStartOutput is the single JSON object the hook writes to stdout.
type SessionStartOutput struct {
	HookSpecificOutput HookSpecificOutput `json:"hookSpecificOutput"`
}
