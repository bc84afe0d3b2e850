// Package embed turns a post URL into a rendered preview through an
// external rendering capability. Each URL gets its own Loader: a small
// state machine with a capability poll and a wall-clock timeout, fully
// independent of every other item.
package embed

import "context"

// State is the lifecycle of one embedded item.
type State int

const (
	StateIdle State = iota
	StateAwaitingCapability
	StateRendering
	StateLoaded
	StateFailedToRender
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingCapability:
		return "awaiting_capability"
	case StateRendering:
		return "rendering"
	case StateLoaded:
		return "loaded"
	case StateFailedToRender:
		return "failed_to_render"
	case StateTimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Terminal reports whether the state is settled. A settled item never
// changes again.
func (s State) Terminal() bool {
	return s == StateLoaded || s == StateFailedToRender || s == StateTimedOut
}

// Options is the fixed presentation configuration passed to the renderer.
type Options struct {
	Theme        string
	Conversation string
	Cards        string
	Align        string
}

// DefaultOptions matches the gallery's presentation: dark, no surrounding
// conversation, cards visible, centered.
func DefaultOptions() Options {
	return Options{
		Theme:        "dark",
		Conversation: "none",
		Cards:        "visible",
		Align:        "center",
	}
}

// Handle is a rendered preview.
type Handle struct {
	ID     string
	Author string
	Text   string
}

// Renderer is the external rendering capability. Render resolves with
// either a handle or a nil result; nil means the post is gone or
// restricted. Ready may be false while the capability is still warming up.
type Renderer interface {
	Ready() bool
	Render(ctx context.Context, id string, opts Options) (*Handle, error)
}
