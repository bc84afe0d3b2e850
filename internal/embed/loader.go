package embed

import (
	"context"
	"sync"
	"time"

	"github.com/tweetwall/backend/internal/tweet"
)

const (
	// DefaultPollInterval is how often an idle loader checks whether the
	// rendering capability has become available.
	DefaultPollInterval = 100 * time.Millisecond
	// DefaultTimeout bounds the whole attempt, from start to terminal
	// state.
	DefaultTimeout = 10 * time.Second
)

// Messages shown in place of a preview that never arrived.
const (
	msgCannotPreview = "cannot preview this post"
	msgRenderFailed  = "post failed to load, it may be deleted or restricted"
	msgTimedOut      = "post took too long to load"
)

// Config tunes one loader. Zero values fall back to the defaults.
type Config struct {
	Options      Options
	PollInterval time.Duration
	Timeout      time.Duration
}

// Loader drives one URL to a terminal state. All transitions happen on the
// loader's own goroutine; the accessors are safe from any goroutine.
type Loader struct {
	url      string
	renderer Renderer
	opts     Options
	poll     time.Duration
	timeout  time.Duration

	mu       sync.Mutex
	state    State
	message  string
	handle   *Handle
	done     chan struct{}
	doneOnce sync.Once
}

func NewLoader(url string, renderer Renderer, cfg Config) *Loader {
	if cfg.Options == (Options{}) {
		cfg.Options = DefaultOptions()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Loader{
		url:      url,
		renderer: renderer,
		opts:     cfg.Options,
		poll:     cfg.PollInterval,
		timeout:  cfg.Timeout,
		state:    StateIdle,
		done:     make(chan struct{}),
	}
}

// Start begins the load attempt. It returns immediately; the attempt runs
// on its own goroutine and Done closes when a terminal state is reached or
// the context is cancelled.
func (l *Loader) Start(ctx context.Context) {
	go l.run(ctx)
}

// Done closes when the loader has settled or its context was cancelled.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

func (l *Loader) URL() string {
	return l.url
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Message is the inline text shown for an item that failed or timed out.
func (l *Loader) Message() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.message
}

// Handle returns the rendered preview, or nil before StateLoaded.
func (l *Loader) Handle() *Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handle
}

func (l *Loader) run(ctx context.Context) {
	// One wall-clock limit for the whole attempt, released on the first
	// terminal transition.
	deadline := time.NewTimer(l.timeout)
	defer deadline.Stop()

	id, ok := tweet.ExtractID(l.url)
	if !ok {
		// Nothing to hand to the capability.
		l.settle(StateFailedToRender, msgCannotPreview, nil)
		return
	}

	if !l.renderer.Ready() {
		l.transition(StateAwaitingCapability)

		ticker := time.NewTicker(l.poll)
		defer ticker.Stop()
	waiting:
		for {
			select {
			case <-ticker.C:
				if l.renderer.Ready() {
					break waiting
				}
			case <-deadline.C:
				l.settle(StateTimedOut, msgTimedOut, nil)
				return
			case <-ctx.Done():
				l.abandon()
				return
			}
		}
	}

	l.transition(StateRendering)

	type result struct {
		handle *Handle
		err    error
	}
	resCh := make(chan result, 1)
	go func() {
		h, err := l.renderer.Render(ctx, id, l.opts)
		resCh <- result{handle: h, err: err}
	}()

	select {
	case res := <-resCh:
		if res.err != nil || res.handle == nil {
			l.settle(StateFailedToRender, msgRenderFailed, nil)
			return
		}
		l.settle(StateLoaded, "", res.handle)
	case <-deadline.C:
		// A late render result is discarded: settle wins, the output is
		// never written twice.
		l.settle(StateTimedOut, msgTimedOut, nil)
	case <-ctx.Done():
		l.abandon()
	}
}

func (l *Loader) transition(next State) {
	l.mu.Lock()
	if !l.state.Terminal() {
		l.state = next
	}
	l.mu.Unlock()
}

func (l *Loader) settle(final State, message string, handle *Handle) {
	l.mu.Lock()
	if !l.state.Terminal() {
		l.state = final
		l.message = message
		l.handle = handle
	}
	l.mu.Unlock()
	l.doneOnce.Do(func() { close(l.done) })
}

// abandon releases waiters without writing a terminal state; the containing
// view is being discarded.
func (l *Loader) abandon() {
	l.doneOnce.Do(func() { close(l.done) })
}
