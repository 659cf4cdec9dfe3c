package ui

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PickerKeys are the keys a PickerScreen reacts to besides Left/Right focus.
type PickerKeys struct {
	Next  ebiten.Key
	Prev  ebiten.Key
	Reset ebiten.Key
	Help  ebiten.Key
}

// PickerScreen lays wheels out side by side. Left/Right moves focus, Next and
// Prev step the focused wheel, Reset sends every wheel back to its first item
// and Help pushes the controls screen.
type PickerScreen struct {
	Title   string
	Pickers []*Picker
	Keys    PickerKeys

	focus int
}

func NewPickerScreen(title string, keys PickerKeys, pickers ...*Picker) *PickerScreen {
	return &PickerScreen{
		Title:   title,
		Pickers: pickers,
		Keys:    keys,
	}
}

func (ps *PickerScreen) Name() string { return "Pickers" }

func (ps *PickerScreen) OnEnter() {}

// OnExit stops every wheel's running animation.
func (ps *PickerScreen) OnExit() {
	for _, p := range ps.Pickers {
		p.Close()
	}
}

// Focused returns the index of the focused wheel.
func (ps *PickerScreen) Focused() int {
	return ps.focus
}

func (ps *PickerScreen) Update() (*ScreenTransition, error) {
	if inpututil.IsKeyJustPressed(ps.Keys.Help) {
		return &ScreenTransition{Type: TransitionPush, Screen: ps.helpScreen()}, nil
	}
	if len(ps.Pickers) == 0 {
		return nil, nil
	}
	ps.arrange()

	switch InputState() {
	case DirLeft:
		ps.focus = max(ps.focus-1, 0)
	case DirRight:
		ps.focus = min(ps.focus+1, len(ps.Pickers)-1)
	}
	focused := ps.Pickers[ps.focus]
	if KeyRepeating(ps.Keys.Next) {
		focused.Step(1)
	}
	if KeyRepeating(ps.Keys.Prev) {
		focused.Step(-1)
	}
	if inpututil.IsKeyJustPressed(ps.Keys.Reset) {
		for _, p := range ps.Pickers {
			p.Reset()
		}
	}

	now := time.Now()
	for i, p := range ps.Pickers {
		p.Focused = i == ps.focus
		p.Update(now)
	}
	return nil, nil
}

func (ps *PickerScreen) helpScreen() *HelpScreen {
	return NewHelpScreen(ps.Keys.Help,
		"Left / Right: focus the previous or next wheel",
		ps.Keys.Prev.String()+" / "+ps.Keys.Next.String()+": step the focused wheel",
		"Drag or fling: spin a wheel, tap an item to center it",
		"Mouse wheel: step the wheel under the cursor",
		ps.Keys.Reset.String()+": send every wheel back to its first item",
	)
}

// arrange measures every wheel and centers the row on screen.
func (ps *PickerScreen) arrange() {
	total := PickerGap * (len(ps.Pickers) - 1)
	for _, p := range ps.Pickers {
		total += p.Measure().Width
	}
	x := float64(ScreenWidth-total) / 2
	for _, p := range ps.Pickers {
		f := p.Frame()
		p.X = x
		p.Y = float64(ScreenHeight-f.Height) / 2
		x += float64(f.Width + PickerGap)
	}
}

func (ps *PickerScreen) Draw(dst *ebiten.Image) {
	DrawTextCentered(dst, ps.Title, ScreenWidth/2, 60, FontSizeTitle, ColorText)
	for _, p := range ps.Pickers {
		p.Draw(dst)
	}

	selected := make([]string, len(ps.Pickers))
	for i, p := range ps.Pickers {
		selected[i] = p.Selected()
	}
	DrawTextCentered(dst, "Selected: "+strings.Join(selected, "   "), ScreenWidth/2, ScreenHeight-80, FontSizeHeading, ColorTextSecondary)
	DrawTextCentered(dst, ps.Keys.Help.String()+" for controls", ScreenWidth/2, ScreenHeight-40, FontSizeSmall, ColorTextMuted)
}

func (ps *PickerScreen) DebugLines() []string {
	lines := make([]string, len(ps.Pickers))
	for i, p := range ps.Pickers {
		lines[i] = p.DebugLine()
	}
	return lines
}

// Saved returns each wheel's selection keyed by wheel name.
func (ps *PickerScreen) Saved() map[string]int {
	out := make(map[string]int, len(ps.Pickers))
	for _, p := range ps.Pickers {
		out[p.Name] = p.State.Saved()
	}
	return out
}
