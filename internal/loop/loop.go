// Package loop runs one launcher session in a terminal: Input → Update → Draw
// at a fixed frame rate.
package loop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/springlaunch/internal/draw"
	"github.com/tomz197/springlaunch/internal/game"
	"github.com/tomz197/springlaunch/internal/input"
)

const targetFPS = 60

// FrameTime is both the wall-clock frame budget and the simulation step.
const FrameTime = time.Second / targetFPS

// ErrIdle is returned by Run when no key was pressed for Options.IdleTimeout.
var ErrIdle = errors.New("idle timeout")

// Options configures Run.
type Options struct {
	Config       game.Config
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc

	// Done ends the session when closed, e.g. on server shutdown.
	Done <-chan struct{}

	// IdleTimeout disconnects after this long without input. Zero disables it.
	IdleTimeout time.Duration
}

// Run plays a session until the player quits, input ends, Done closes or
// the idle timeout expires.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	sess, err := game.NewSession(opts.Config, game.WithLogger(logger))
	if err != nil {
		return err
	}

	cols, rows, err := termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	renderer := lipgloss.NewRenderer(w)
	cfg := sess.Config()
	f := &frame{
		canvas: draw.NewCanvas(cols, rows, cfg.WorldWidth, cfg.WorldHeight, palette(renderer, cfg.Targets)),
		hud:    newHUD(renderer),
		out:    draw.NewChunkWriter(w),
	}
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastInput := time.Now()

	for {
		frameStart := time.Now()

		select {
		case <-opts.Done:
			f.notice = "server shutting down"
			_ = f.draw(sess.Snapshot())
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			break
		}
		if in.Any() {
			lastInput = frameStart
		}
		for _, cmd := range Commands(in) {
			if err := sess.Apply(cmd); err != nil {
				logger.Warn("command rejected", "type", cmd.Kind, "err", err)
			}
		}

		// ===== UPDATE PHASE =====
		if ev := sess.Step(FrameTime); ev.Terminal() {
			logger.Debug("round resolved", "event", ev, "launches", sess.LaunchCount(), "hits", sess.HitCount())
		}

		f.notice = ""
		if opts.IdleTimeout > 0 {
			idle := frameStart.Sub(lastInput)
			if idle >= opts.IdleTimeout {
				return ErrIdle
			}
			if left := opts.IdleTimeout - idle; left <= opts.IdleTimeout/4 {
				f.notice = fmt.Sprintf("idle: disconnecting in %ds", int(left.Seconds())+1)
			}
		}

		if cols, rows, err := termSize(); err == nil {
			f.canvas.Resize(cols, rows)
		}

		// ===== DRAW PHASE =====
		if err := f.draw(sess.Snapshot()); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < FrameTime {
			time.Sleep(FrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// frame owns the per-connection drawing state.
type frame struct {
	canvas *draw.Canvas
	hud    hud
	out    *draw.ChunkWriter
	notice string
}

// draw renders one frame and flushes it.
func (f *frame) draw(snap game.Snapshot) error {
	draw.ClearScreen(f.out)
	drawScene(f.canvas, snap)
	f.canvas.Render(f.out)
	f.hud.draw(f.out, snap, f.canvas.Cols(), f.canvas.Rows(), f.notice)
	return f.out.Flush()
}
