package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/wheelpicker/wheel"
)

// PickerOptions configures a Picker. Zero values select the defaults.
type PickerOptions struct {
	InitialIndex int
	BufferSize   int
	Curve        wheel.Curve
	Friction     float64
	Frames       wheel.Frames
	OnSelect     func(index int)

	// Styled fades and squashes items with their distance from the center
	// line instead of only dimming them.
	Styled bool
}

type itemStyle struct {
	alpha  float64
	scaleY float64
	color  color.RGBA
}

// Picker is a vertical wheel of text labels. Drag or fling to scroll, tap an
// item to center it, or use the mouse wheel.
type Picker struct {
	Name    string
	Labels  []string
	X, Y    float64
	Focused bool

	State  *wheel.State
	Layout *wheel.Layout

	items  []wheel.Measurable
	window wheel.Measurable
	frame  wheel.Frame
	styles []itemStyle

	drag        DragTracker
	wheelAccum  float64
	pressed     bool
	events      <-chan wheel.Interaction
	unsubscribe func()

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPicker(name string, labels []string, opts PickerOptions) *Picker {
	stateOpts := []wheel.Option{wheel.WithInitialIndex(opts.InitialIndex)}
	if opts.Curve != nil {
		stateOpts = append(stateOpts, wheel.WithCurve(opts.Curve))
	}
	if opts.Friction > 0 {
		stateOpts = append(stateOpts, wheel.WithFriction(opts.Friction))
	}
	if opts.Frames != nil {
		stateOpts = append(stateOpts, wheel.WithFrames(opts.Frames))
	}
	if opts.OnSelect != nil {
		stateOpts = append(stateOpts, wheel.WithOnSelect(opts.OnSelect))
	}
	buffer := opts.BufferSize
	if buffer <= 0 {
		buffer = PickerBuffer
	}

	state := wheel.NewState(stateOpts...)
	ctx, cancel := context.WithCancel(context.Background())
	p := &Picker{
		Name:   name,
		Labels: labels,
		State:  state,
		Layout: wheel.NewLayout(state, buffer),
		ctx:    ctx,
		cancel: cancel,
	}

	p.items = make([]wheel.Measurable, len(labels))
	for i, label := range labels {
		p.items[i] = wheel.MeasurableFunc(func(wheel.Constraints) wheel.Size {
			w, _ := MeasureText(label, FontSizeBody)
			return wheel.Size{Width: int(w) + 2*PickerItemPadX, Height: PickerItemHeight}
		})
	}
	p.window = wheel.MeasurableFunc(func(c wheel.Constraints) wheel.Size {
		return wheel.Size{Width: max(c.MinWidth, PickerMinWidth), Height: c.MinHeight}
	})

	if opts.Styled {
		p.styles = make([]itemStyle, len(labels))
		for i := range labels {
			p.Layout.SetPositionCallback(i, func(sel, view float64) {
				p.styles[i] = styleFor(sel, view)
			})
		}
	}

	p.events, p.unsubscribe = state.Interactions().Subscribe(8)
	return p
}

func styleFor(selectionOffset, viewportOffset float64) itemStyle {
	near := 1 - abs(viewportOffset)
	return itemStyle{
		alpha:  near,
		scaleY: 0.5 + 0.5*near,
		color:  LerpColor(ColorAccent, ColorTextMuted, abs(selectionOffset)),
	}
}

// Measure runs a layout pass and returns the resulting frame.
func (p *Picker) Measure() wheel.Frame {
	p.frame = p.Layout.Measure(p.items, p.window, wheel.Constraints{
		MaxWidth:  ScreenWidth,
		MaxHeight: ScreenHeight,
	})
	return p.frame
}

func (p *Picker) Frame() wheel.Frame {
	return p.frame
}

// Contains reports whether screen point (x, y) is inside the wheel.
func (p *Picker) Contains(x, y int) bool {
	return PointInRect(x, y, p.X, p.Y, float64(p.frame.Width), float64(p.frame.Height))
}

// Selected returns the label of the selected item.
func (p *Picker) Selected() string {
	i := p.State.Index()
	if i < 0 || i >= len(p.Labels) {
		return ""
	}
	return p.Labels[i]
}

// Update feeds this frame's pointer and wheel input into the wheel state.
func (p *Picker) Update(now time.Time) {
	p.drainInteractions()

	for _, ev := range PointerEvents() {
		switch {
		case ev.Pressed && !p.drag.Active() && p.Contains(ev.X, ev.Y):
			p.State.Stop()
			p.drag.Begin(ev.ID, float64(ev.Y), now)
			p.emit(wheel.Press, ev.X, ev.Y)

		case !p.drag.Active() || ev.ID != p.drag.Pointer():
			// another pointer, or a press outside the wheel

		case ev.Released:
			dragged := p.drag.Dragging()
			velocity := p.drag.End(now)
			p.emit(wheel.Release, ev.X, ev.Y)
			if dragged {
				p.State.ReleaseDrag()
				p.run("settle", func(ctx context.Context) error {
					return p.State.Snap(ctx, velocity, wheel.UserInput)
				})
				continue
			}
			target := p.State.IndexAt(float64(ev.Y) - p.Y)
			p.run("select tapped item", func(ctx context.Context) error {
				return p.State.AnimateScrollTo(ctx, target, wheel.UserInput)
			})

		default:
			delta, started := p.drag.Move(float64(ev.Y), now)
			if started {
				p.State.BeginDrag()
			}
			if delta != 0 {
				p.State.Drag(delta)
			}
		}
	}

	if _, wy := MouseWheelDelta(); wy != 0 {
		if mx, my := ebiten.CursorPosition(); p.Contains(mx, my) {
			p.wheelAccum += wy
			if steps := int(p.wheelAccum); steps != 0 {
				p.wheelAccum -= float64(steps)
				p.Step(-steps)
			}
		}
	}
}

func (p *Picker) drainInteractions() {
	for {
		select {
		case ev, ok := <-p.events:
			if !ok {
				return
			}
			p.pressed = ev.Kind == wheel.Press
		default:
			return
		}
	}
}

func (p *Picker) emit(kind wheel.InteractionKind, x, y int) {
	p.State.Interactions().Emit(wheel.Interaction{
		Kind: kind,
		X:    float64(x) - p.X,
		Y:    float64(y) - p.Y,
	})
}

// Step animates n items forward (positive) or back as user input.
func (p *Picker) Step(n int) {
	target := p.State.Index() + n
	p.run("step", func(ctx context.Context) error {
		return p.State.AnimateScrollTo(ctx, target, wheel.UserInput)
	})
}

// Reset animates back to the first item at default priority, so any user
// gesture in progress wins.
func (p *Picker) Reset() {
	p.run("reset", func(ctx context.Context) error {
		return p.State.AnimateScrollTo(ctx, 0, wheel.Default)
	})
}

func (p *Picker) run(what string, op func(ctx context.Context) error) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		err := op(p.ctx)
		if err == nil || errors.Is(err, wheel.ErrRejected) || errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("Failed to %s %s: %v", what, p.Name, err)
	}()
}

// Close stops every running animation and waits for them to return.
func (p *Picker) Close() {
	if p.drag.Active() {
		p.drag.End(time.Now())
		p.State.Interactions().Emit(wheel.Interaction{Kind: wheel.Cancel})
	}
	p.cancel()
	p.wg.Wait()
	p.unsubscribe()
}

// DebugLine summarizes the wheel state for the debug overlay.
func (p *Picker) DebugLine() string {
	s := p.State
	active := "idle"
	if prio, ok := s.ActivePriority(); ok {
		active = prio.String()
	}
	if s.Dragging() {
		active = "dragging"
	}
	return fmt.Sprintf("%-8s index=%-3d scroll=%7.1f offset=%+.2f value=%5.2f %s",
		p.Name, s.Index(), s.Scroll(), s.ItemOffset(), s.Value(), active)
}

func (p *Picker) Draw(dst *ebiten.Image) {
	f := p.frame
	if f.Width == 0 || f.Height == 0 {
		return
	}
	x, y := float32(p.X), float32(p.Y)
	w, h := float32(f.Width), float32(f.Height)

	DrawTextCentered(dst, p.Name, p.X+float64(f.Width)/2, p.Y-22, FontSizeSmall, ColorTextSecondary)
	vector.DrawFilledRect(dst, x, y, w, h, ColorSurface, false)

	win := f.Window
	band := ColorSurfaceHover
	if p.pressed {
		band = ColorPressed
	}
	vector.DrawFilledRect(dst, x+float32(win.X), y+float32(win.Y), float32(win.Width), float32(win.Height), band, false)
	vector.StrokeLine(dst, x, y+float32(win.Y), x+w, y+float32(win.Y), 1, ColorPrimary, false)
	vector.StrokeLine(dst, x, y+float32(win.Y+win.Height), x+w, y+float32(win.Y+win.Height), 1, ColorPrimary, false)

	clip := dst.SubImage(image.Rect(int(p.X), int(p.Y), int(p.X)+f.Width, int(p.Y)+f.Height)).(*ebiten.Image)
	for _, it := range f.Items {
		cx := p.X + float64(it.X) + float64(it.Width)/2
		cy := p.Y + float64(it.Y) + float64(it.Height)/2
		label := p.Labels[it.Index]
		if p.styles != nil {
			st := p.styles[it.Index]
			DrawTextScaled(clip, label, cx, cy, 1, st.scaleY, st.alpha, FontSizeBody, st.color)
			continue
		}
		clr := LerpColor(ColorText, ColorTextMuted, abs(it.SelectionOffset))
		DrawTextCentered(clip, label, cx, cy, FontSizeBody, clr)
	}

	if p.Focused {
		vector.StrokeRect(dst, x-2, y-2, w+4, h+4, 2, ColorFocusBorder, false)
	}
}
