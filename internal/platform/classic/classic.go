// Package classic is the raw-terminal frontend: it puts the terminal in raw
// mode, draws with cursor addressing and reads keys byte by byte.
package classic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/palette"
	"github.com/vovakirdan/term2048/internal/platform/session"
	"github.com/vovakirdan/term2048/internal/storage"
)

// Options configures the classic frontend.
type Options struct {
	Seed   int64
	Config config.Config
	Store  *storage.Store // nil disables the score ledger
	Logger *log.Logger
	In     *os.File // defaults to os.Stdin
	Out    *os.File // defaults to os.Stdout
}

// Run plays until the player quits and returns the last game's state.
// The terminal is restored on every exit path, panics included.
func Run(opts Options) (snap game.Snapshot, err error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	inFd := int(opts.In.Fd())
	outFd := int(opts.Out.Fd())
	if !term.IsTerminal(inFd) {
		return snap, errors.New("classic: stdin is not a terminal")
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return snap, fmt.Errorf("classic: enter raw mode: %w", err)
	}

	if _, werr := io.WriteString(opts.Out, enterSequence); werr != nil {
		return snap, errors.Join(
			fmt.Errorf("classic: enter alt screen: %w", werr),
			term.Restore(inFd, state),
		)
	}
	defer func() {
		_, werr := io.WriteString(opts.Out, leaveSequence)
		rerr := term.Restore(inFd, state)
		switch {
		case err != nil:
		case rerr != nil:
			err = fmt.Errorf("classic: restore terminal: %w", rerr)
		case werr != nil:
			err = fmt.Errorf("classic: leave alt screen: %w", werr)
		}
	}()

	sess := session.New(opts.Seed, opts.Store, opts.Logger)
	l := &Loop{
		Session: sess,
		Palette: palette.New(opts.Config, lipgloss.NewRenderer(opts.Out)),
		Out:     opts.Out,
		Size: func() (int, int) {
			w, h, err := term.GetSize(outFd)
			if err != nil {
				return core.MinScreenW, core.MinScreenH
			}
			return w, h
		},
	}

	err = l.Play(bufio.NewReader(opts.In))
	return sess.Snapshot(), err
}

const (
	enterSequence = ansi.SaveCursor + ansi.SetAltScreenSaveCursorMode + ansi.EraseEntireScreen + ansi.HideCursor
	leaveSequence = ansi.ResetStyle + ansi.ShowCursor + ansi.ResetAltScreenSaveCursorMode + ansi.RestoreCursor
)

// Loop reads keys and redraws after each one. It owns no terminal state,
// so it runs against any reader and writer.
type Loop struct {
	Session *session.Session
	Palette *palette.Palette
	Out     io.Writer
	Size    func() (width, height int)

	screen *core.Screen
}

// Play draws the game, then applies keys until Quit or the end of input.
func (l *Loop) Play(in io.ByteReader) error {
	for {
		if err := l.draw(); err != nil {
			return err
		}

		action, err := DecodeKey(in)
		if err != nil {
			// Lost input abandons the game like a quit.
			l.Session.Apply(core.ActionQuit)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("classic: read key: %w", err)
		}
		if action == core.ActionNone {
			continue
		}

		if ev := l.Session.Apply(action); ev.Quit {
			return nil
		}
	}
}

// draw renders the current game at the current terminal size.
func (l *Loop) draw() error {
	w, h := l.Size()
	if l.screen == nil {
		l.screen = core.NewScreen(w, h)
	}
	l.screen.Resize(w, h)

	l.Session.Game().Render(l.screen)
	if _, err := io.WriteString(l.Out, Frame(l.screen, l.Palette)); err != nil {
		return fmt.Errorf("classic: draw: %w", err)
	}
	return nil
}
