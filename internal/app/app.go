// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"go-vector-demo/internal/assets"
	"go-vector-demo/internal/defs"
	"go-vector-demo/internal/entity"
	"go-vector-demo/internal/event"
	"go-vector-demo/internal/state"
	"go-vector-demo/internal/system"
	"go-vector-demo/pkg/render"
)

// ErrNoDevice is reported at startup when the platform produced no device.
var ErrNoDevice = errors.New("no output device")

// Phase names one step of a tick.
type Phase int

const (
	PhaseStartup Phase = iota
	PhaseAnimate
	PhaseRenderOpen
	PhaseDrawCircles
	PhaseDrawTexts
	PhaseRenderClose
)

func (p Phase) String() string {
	switch p {
	case PhaseStartup:
		return "startup"
	case PhaseAnimate:
		return "animate"
	case PhaseRenderOpen:
		return "render-open"
	case PhaseDrawCircles:
		return "draw-circles"
	case PhaseDrawTexts:
		return "draw-texts"
	case PhaseRenderClose:
		return "render-close"
	default:
		return "unknown"
	}
}

// Options wires an App. Only Fonts is required; the rest have defaults.
type Options struct {
	Fonts  assets.FontLoader
	Render render.Options
	// Scene is spawned at startup. Nil selects defs.DefaultScene sized to
	// the device.
	Scene *defs.SceneDefinition
	// Clock returns the time since startup. Nil uses the wall clock.
	Clock       func() time.Duration
	NewRenderer RendererFactory
	// OnPhase, when set, is called as each phase starts.
	OnPhase func(Phase)
	Logger  *slog.Logger
}

// App is the frame scheduler. It owns the entity store, the run state and
// the render context, and runs a fixed list of phases once per Tick.
type App struct {
	ECS    *entity.ECS
	State  *state.AppState
	Events *event.Dispatcher

	log      *slog.Logger
	opts     Options
	renderer Renderer

	movement *system.MovementSystem
	circles  *system.CircleRenderSystem
	texts    *system.TextRenderSystem

	clock      func() time.Duration
	startedAt  time.Time
	started    bool
	shutdown   bool
	ticks      uint64
	lastStatus state.Status
}

// New creates an App over ecs and st. Nothing is acquired until Startup.
func New(ecs *entity.ECS, st *state.AppState, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.NewRenderer == nil {
		opts.NewRenderer = NewContextRenderer
	}
	if opts.Render.Logger == nil {
		opts.Render.Logger = logger
	}

	a := &App{
		ECS:      ecs,
		State:    st,
		Events:   event.NewDispatcher(),
		log:      logger,
		opts:     opts,
		movement: system.NewMovementSystem(ecs),
		circles:  system.NewCircleRenderSystem(ecs),
		texts:    system.NewTextRenderSystem(ecs),
	}
	a.clock = opts.Clock
	if a.clock == nil {
		a.clock = func() time.Duration { return time.Since(a.startedAt) }
	}
	return a
}

// Startup acquires the render resources and spawns the scene. It runs at
// most once; Tick calls it on the first tick if the driver did not.
func (a *App) Startup() {
	if a.started {
		return
	}
	a.started = true
	a.enter(PhaseStartup)

	dev := a.State.Device
	if dev == nil {
		a.startupFailed("window", ErrNoDevice)
		return
	}
	if a.opts.Fonts == nil {
		a.startupFailed("font", errors.New("no font loader configured"))
		return
	}
	fontData, err := a.opts.Fonts.LoadFont()
	if err != nil {
		a.startupFailed("font", err)
		return
	}

	r, err := a.opts.NewRenderer(dev, fontData, a.opts.Render)
	if err != nil {
		resource := "render context"
		var rerr *render.ResourceError
		if errors.As(err, &rerr) {
			resource = rerr.Resource
		}
		a.startupFailed(resource, err)
		return
	}
	a.renderer = r

	scene := a.opts.Scene
	if scene == nil {
		w, h := dev.Size()
		if a.opts.Render.Width > 0 && a.opts.Render.Height > 0 {
			w, h = a.opts.Render.Width, a.opts.Render.Height
		}
		def := defs.DefaultScene(w, h)
		scene = &def
	}
	if err := SpawnScene(a.ECS, *scene); err != nil {
		a.startupFailed("scene", err)
		return
	}

	a.startedAt = time.Now()
	a.log.Info("startup complete", "entities", a.ECS.Shapes.Count())
}

func (a *App) startupFailed(resource string, err error) {
	a.log.Error("startup failed", "resource", resource, "err", err)
	a.State.Finish(state.Failure)
}

// Tick runs one frame and returns the status afterwards. Once the status
// is terminal it does nothing.
func (a *App) Tick() state.Status {
	defer a.publishStatus()

	if st := a.State.Status(); st.Terminal() {
		return st
	}
	if !a.started {
		a.Startup()
		if st := a.State.Status(); st.Terminal() {
			return st
		}
	}

	a.ticks++
	if err := a.runFrame(); err != nil {
		a.log.Error("frame failed", "tick", a.ticks, "err", err)
		a.State.Finish(state.Failure)
	}
	return a.State.Status()
}

func (a *App) runFrame() error {
	a.enter(PhaseAnimate)
	a.movement.Update(a.clock())

	a.enter(PhaseRenderOpen)
	p, err := a.renderer.BeginFrame()
	if err != nil {
		return fmt.Errorf("open frame: %w", err)
	}
	open := true
	defer func() {
		if open {
			if aerr := a.renderer.AbortFrame(); aerr != nil {
				a.log.Warn("abort frame", "err", aerr)
			}
		}
	}()

	a.enter(PhaseDrawCircles)
	if err := a.circles.Draw(p); err != nil {
		return err
	}

	a.enter(PhaseDrawTexts)
	if err := a.texts.Draw(p); err != nil {
		return err
	}

	a.enter(PhaseRenderClose)
	open = false
	if err := a.renderer.EndFrame(); err != nil {
		return fmt.Errorf("close frame: %w", err)
	}
	a.Events.Dispatch(event.Event{Type: event.FramePresented, Data: a.renderer.Frames()})
	return nil
}

func (a *App) enter(p Phase) {
	if a.opts.OnPhase != nil {
		a.opts.OnPhase(p)
	}
}

// publishStatus dispatches StatusChanged on the tick goroutine, so a Quit
// from another goroutine is reported on the next Tick.
func (a *App) publishStatus() {
	st := a.State.Status()
	if st == a.lastStatus {
		return
	}
	a.lastStatus = st
	a.Events.Dispatch(event.Event{Type: event.StatusChanged, Data: st})
}

// Quit ends the run with success. It is safe to call from any goroutine
// and has no effect once the run is over.
func (a *App) Quit() {
	if a.State.Finish(state.Success) {
		a.log.Info("quit requested")
	}
}

func (a *App) Status() state.Status { return a.State.Status() }

// Frames reports how many frames were presented.
func (a *App) Frames() uint64 {
	if a.renderer == nil {
		return 0
	}
	return a.renderer.Frames()
}

// Ticks reports how many ticks ran the phase list.
func (a *App) Ticks() uint64 { return a.ticks }

// Snapshot copies the last rendered frame, or returns nil when the
// renderer cannot.
func (a *App) Snapshot() *image.RGBA {
	if s, ok := a.renderer.(Snapshotter); ok {
		return s.Snapshot()
	}
	return nil
}

// SaveSnapshot writes the last rendered frame as a PNG. It must run
// before Shutdown.
func (a *App) SaveSnapshot(path string) error {
	s, ok := a.renderer.(Snapshotter)
	if !ok {
		return errors.New("renderer cannot snapshot")
	}
	return s.SavePNG(path)
}

// Shutdown releases the render context. Calling it again is a no-op.
func (a *App) Shutdown() {
	if a.shutdown {
		return
	}
	a.shutdown = true
	if a.renderer != nil {
		if err := a.renderer.Close(); err != nil {
			a.log.Error("release render context", "err", err)
		}
	}
	a.log.Info("shutdown", "status", a.State.Status(), "frames", a.Frames(), "ticks", a.ticks)
}
