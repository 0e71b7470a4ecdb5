package timer

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"
)

// Target is the company a foreground Session tracks.
type Target interface {
	Label() string
	Seconds() int64
	Running() bool
	// Toggle pauses a running target or resumes a paused one.
	Toggle()
}

// Session redraws a live counter for a Target until quit, reading
// single-key commands from a raw terminal.
type Session struct {
	target  Target
	display *Display
	refresh time.Duration
	input   *os.File

	toggleCh chan struct{}
	quitCh   chan struct{}
}

// NewSession creates a session redrawing every refresh interval.
func NewSession(target Target, refresh time.Duration) *Session {
	if refresh <= 0 {
		refresh = time.Second
	}
	return &Session{
		target:   target,
		display:  NewDisplay(),
		refresh:  refresh,
		input:    os.Stdin,
		toggleCh: make(chan struct{}, 1),
		quitCh:   make(chan struct{}, 1),
	}
}

// SetDisplay sets the counter display.
func (s *Session) SetDisplay(display *Display) {
	s.display = display
}

// Toggle requests a pause or resume.
func (s *Session) Toggle() {
	select {
	case s.toggleCh <- struct{}{}:
	default:
	}
}

// Quit requests the session to end.
func (s *Session) Quit() {
	select {
	case s.quitCh <- struct{}{}:
	default:
	}
}

// Run blocks until the session is quit, interrupted, or ctx is done.
// Keyboard commands are only read when the input is a terminal.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fd := int(s.input.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, oldState)

		go s.listenKeyboard(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	s.render()
	defer s.display.Finish()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			return nil
		case <-s.quitCh:
			return nil
		case <-s.toggleCh:
			s.target.Toggle()
			s.render()
		case <-ticker.C:
			s.render()
		}
	}
}

func (s *Session) render() {
	s.display.Redraw(s.display.Render(s.target.Label(), s.target.Seconds(), s.target.Running()))
}

// listenKeyboard listens for keyboard input.
func (s *Session) listenKeyboard(ctx context.Context) {
	buf := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			s.input.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
			n, err := s.input.Read(buf)
			if err != nil || n == 0 {
				continue
			}

			switch buf[0] {
			case ' ': // Space - pause/resume
				s.Toggle()
			case 'q', 'Q', 3: // Q or Ctrl+C - quit
				s.Quit()
			}
		}
	}
}
