// gridwire is a terminal schematic wire editor. Wires are grid-aligned
// polylines; select one with the mouse, then drag its point handles or
// segments. Horizontal segments drag vertically, vertical segments drag
// horizontally, and Ctrl frees a diagonal segment.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"gridwire/config"
	"gridwire/core"
	"gridwire/document"
	"gridwire/geometry"
	"gridwire/interact"
	"gridwire/render"
	"gridwire/wire"
)

func main() {
	sheetPath := flag.String("f", "sheet.json", "sheet file to edit")
	configPath := flag.String("config", "gridwire.hcl", "settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	transform := geometry.Transform{CellSize: cfg.CellSize}

	wires, err := loadOrCreateSheet(*sheetPath, transform)
	if err != nil {
		log.Fatalf("sheet: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	ed := newEditor(screen, cfg, transform, wires, *sheetPath)
	ed.run()
}

// loadOrCreateSheet loads the sheet file, or builds a small starter sheet
// when the file does not exist yet.
func loadOrCreateSheet(path string, t geometry.Transform) ([]*wire.Wire, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return starterSheet(t), nil
	}
	sheet, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return sheet.Build(t), nil
}

func starterSheet(t geometry.Transform) []*wire.Wire {
	w1 := wire.New(1, core.Point{X: 4, Y: 3}, t)
	w1.Append(core.Point{X: 4, Y: 3})
	w1.Append(core.Point{X: 16, Y: 3})
	w1.Append(core.Point{X: 16, Y: 9})
	w1.SetJunction(2, true)

	w2 := wire.New(2, core.Point{X: 10, Y: 1}, t)
	w2.Append(core.Point{X: 10, Y: 1})
	w2.Append(core.Point{X: 10, Y: 7})
	w2.Append(core.Point{X: 22, Y: 7})

	return []*wire.Wire{w1, w2}
}

// editor owns the screen, the sheet and the per-wire drag controllers.
type editor struct {
	screen    tcell.Screen
	cfg       config.Settings
	transform geometry.Transform
	renderer  *render.WireRenderer

	wires       []*wire.Wire
	controllers map[int]*interact.Controller
	selected    int // index into wires, -1 for none

	sheetPath string
	dirty     bool
	debug     bool
	status    string

	lastMouse   r2.Vec
	prevButtons tcell.ButtonMask
	cursorHint  interact.Cursor
}

func newEditor(screen tcell.Screen, cfg config.Settings, t geometry.Transform, wires []*wire.Wire, sheetPath string) *editor {
	ed := &editor{
		screen:      screen,
		cfg:         cfg,
		transform:   t,
		renderer:    render.NewWireRenderer(t),
		wires:       wires,
		controllers: make(map[int]*interact.Controller),
		selected:    -1,
		sheetPath:   sheetPath,
		debug:       cfg.Debug,
		dirty:       true,
	}
	for _, w := range wires {
		ed.watch(w)
	}
	return ed
}

// watch subscribes the editor to a wire's change notifications. Connected
// items elsewhere on the sheet would resynchronize from the same feed.
func (ed *editor) watch(w *wire.Wire) {
	w.Subscribe(func(wire.PointChanged) {
		ed.dirty = true
	})
}

func (ed *editor) run() {
	for {
		if ed.dirty {
			ed.draw()
			ed.dirty = false
		}

		switch ev := ed.screen.PollEvent().(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
			ed.dirty = true
		case *tcell.EventKey:
			if !ed.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		}
	}
}

func (ed *editor) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape:
		if ed.selected >= 0 {
			ed.controller().Cancel()
			ed.selected = -1
			ed.dirty = true
			return true
		}
		return false
	case ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
		return false
	case ev.Rune() == 'd':
		ed.debug = !ed.debug
		ed.dirty = true
	case ev.Rune() == 'n':
		if w := ed.selectedWire(); w != nil {
			dups := w.RemoveDuplicatePoints()
			obs := w.RemoveObsoletePoints()
			ed.status = fmt.Sprintf("normalized: %d duplicate, %d obsolete", dups, obs)
			ed.dirty = true
		}
	case ev.Rune() == 'j':
		ed.toggleJunctionAtCursor()
	case ev.Rune() == 's':
		if err := document.Save(ed.sheetPath, document.FromWires(ed.wires)); err != nil {
			ed.status = err.Error()
		} else {
			ed.status = "saved " + ed.sheetPath
		}
		ed.dirty = true
	}
	return true
}

// toggleJunctionAtCursor flips the junction flag of the selected wire's
// point under the mouse, if any.
func (ed *editor) toggleJunctionAtCursor() {
	w := ed.selectedWire()
	if w == nil {
		return
	}
	for i, wp := range w.WirePoints() {
		d := ed.transform.ToDisplay(wp.Point)
		if geometry.Abs(int(ed.lastMouse.X-d.X)) <= 1 && geometry.Abs(int(ed.lastMouse.Y-d.Y)) <= 1 {
			w.SetJunction(i, !wp.Junction)
			ed.dirty = true
			return
		}
	}
}

func (ed *editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := r2.Vec{X: float64(x), Y: float64(y)}
	ed.lastMouse = pos

	buttons := ev.Buttons()
	override := ev.Modifiers()&tcell.ModCtrl != 0
	pressed := buttons&tcell.Button1 != 0
	wasPressed := ed.prevButtons&tcell.Button1 != 0
	ed.prevButtons = buttons

	switch {
	case pressed && !wasPressed:
		ed.pointerDown(pos)
	case pressed && wasPressed:
		if c := ed.controller(); c != nil {
			if c.PointerMove(pos, override) {
				ed.dirty = true
			}
		}
	case !pressed && wasPressed:
		if c := ed.controller(); c != nil {
			c.PointerUp(pos)
			ed.dirty = true
		}
	default:
		ed.hover(pos, override)
	}
}

func (ed *editor) pointerDown(pos r2.Vec) {
	if c := ed.controller(); c != nil {
		if c.PointerDown(pos, true) {
			ed.dirty = true
			return
		}
	}

	// Not consumed: generic handling. Broad-phase select whichever wire's
	// shape contains the press, topmost first.
	for i := len(ed.wires) - 1; i >= 0; i-- {
		if ed.wires[i].HitTest(pos) {
			ed.selectWire(i)
			return
		}
	}
	ed.selectWire(-1)
}

func (ed *editor) selectWire(i int) {
	if ed.selected == i {
		return
	}
	ed.selected = i
	ed.dirty = true
}

func (ed *editor) hover(pos r2.Vec, override bool) {
	hint := interact.CursorNone
	if c := ed.controller(); c != nil {
		hint = c.Hover(pos, true, override)
	}
	if hint != ed.cursorHint {
		ed.cursorHint = hint
		ed.dirty = true
	}
}

func (ed *editor) selectedWire() *wire.Wire {
	if ed.selected < 0 || ed.selected >= len(ed.wires) {
		return nil
	}
	return ed.wires[ed.selected]
}

// controller returns the drag controller for the selected wire, creating it
// on first use. Nil when nothing is selected.
func (ed *editor) controller() *interact.Controller {
	w := ed.selectedWire()
	if w == nil {
		return nil
	}
	c, ok := ed.controllers[w.ID()]
	if !ok {
		c = interact.NewController(w, ed.transform)
		ed.controllers[w.ID()] = c
	}
	return c
}

func (ed *editor) draw() {
	width, height := ed.screen.Size()
	grid := render.NewGrid(width, height-1)

	// Wires draw lowest; the selected wire last so its handles stay on top.
	for i, w := range ed.wires {
		if i == ed.selected {
			continue
		}
		if ed.debug {
			ed.renderer.DrawDebug(grid, w)
		}
		ed.renderer.Draw(grid, w, false)
	}
	if w := ed.selectedWire(); w != nil {
		if ed.debug {
			ed.renderer.DrawDebug(grid, w)
		}
		ed.renderer.Draw(grid, w, true)
	}

	ed.screen.Clear()
	style := tcell.StyleDefault
	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			ed.screen.SetContent(x, y, grid.Get(x, y), nil, style)
		}
	}

	ed.drawStatus(width, height-1)
	ed.screen.Show()
}

func (ed *editor) drawStatus(width, row int) {
	state := "no selection"
	if w := ed.selectedWire(); w != nil {
		s, idx := ed.controller().State()
		if s == interact.Idle {
			state = fmt.Sprintf("wire %d selected", w.ID())
		} else {
			state = fmt.Sprintf("wire %d: %v(%d)", w.ID(), s, idx)
		}
	}

	line := fmt.Sprintf(" %s │ %s │ q quit  n normalize  j junction  d debug  s save", ed.sheetPath, state)
	if ed.cfg.ShowHints && ed.cursorHint != interact.CursorNone {
		line += "  " + cursorName(ed.cursorHint)
	}
	if ed.status != "" {
		line += " │ " + ed.status
	}

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len([]rune(line)) {
			r = []rune(line)[x]
		}
		ed.screen.SetContent(x, row, r, nil, style)
	}
}

func cursorName(c interact.Cursor) string {
	switch c {
	case interact.CursorMove:
		return "[move]"
	case interact.CursorResizeVertical:
		return "[resize ↕]"
	case interact.CursorResizeHorizontal:
		return "[resize ↔]"
	default:
		return ""
	}
}
