package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/editor"
	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
	"github.com/matzehuels/gradientlab/pkg/input"
	"github.com/matzehuels/gradientlab/pkg/preview"
)

const (
	// frameInterval paces drag updates to one per frame.
	frameInterval = 16 * time.Millisecond

	// nudge is the keyboard step in percent or degrees.
	nudge = 5

	// dragDraft is the draft factor used while a drag is in progress.
	dragDraft = 2

	// previewTop is the terminal row where the preview starts.
	previewTop = 1

	minPreviewCols = 8
	minPreviewRows = 3
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const editorHelp = "t type · [ ] angle · arrows move · tab select · a add · x remove · " +
	"e color · p position · A angle · f format · r random · 0 reset · c copy · q quit"

// entryMode is the text field currently being typed into, if any.
type entryMode int

const (
	entryNone entryMode = iota
	entryHex
	entryAngle
	entryPosition
)

// frameMsg is delivered once per frame while the pointer is down.
type frameMsg struct{}

// =============================================================================
// editorModel - Interactive gradient editor
// =============================================================================

// editorModel is the bubbletea model of the edit command. All edits go
// through the store; pointer drags are buffered in a coalescer and applied
// at most once per frame.
type editorModel struct {
	store   *editor.Store
	drag    *editor.Coalescer[editor.Action]
	initial gradient.Spec
	workers int
	copy    func(string)

	width, height int
	cols, rows    int
	preview       string
	err           error

	selected string
	dragging bool
	ticking  bool
	entry    entryMode
	buf      string
	status   string
}

// newEditorModel creates an editor over store. copyFn receives the CSS
// when the user copies it.
func newEditorModel(store *editor.Store, workers int, copyFn func(string)) editorModel {
	m := editorModel{
		store:   store,
		drag:    &editor.Coalescer[editor.Action]{},
		initial: store.State().Spec.Clone(),
		workers: workers,
		copy:    copyFn,
		width:   80,
		height:  24,
	}
	return m.refresh()
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.refresh(), nil
	case tea.KeyMsg:
		if m.entry != entryNone {
			return m.updateEntry(msg)
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case frameMsg:
		m.ticking = false
		if a, ok := m.drag.Take(); ok {
			m.store.Dispatch(a)
			m = m.refresh()
		}
		if m.dragging || m.drag.Pending() {
			return m.scheduleFrame()
		}
	}
	return m, nil
}

func (m editorModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.State()
	mesh := st.Spec.Kind == gradient.KindMesh
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "t":
		m.store.Dispatch(editor.SetKind{Kind: st.Spec.Kind.Next()})
	case "[":
		m.store.Dispatch(editor.SetAngle{Angle: st.Spec.Angle - nudge})
	case "]":
		m.store.Dispatch(editor.SetAngle{Angle: st.Spec.Angle + nudge})
	case "up", "k":
		m.move(0, -nudge)
	case "down", "j":
		m.move(0, nudge)
	case "left", "h":
		m.move(-nudge, 0)
	case "right", "l":
		m.move(nudge, 0)
	case "-":
		m.shiftStop(-nudge)
	case "+", "=":
		m.shiftStop(nudge)
	case "tab":
		m.selected = m.nextSelection(1)
	case "shift+tab":
		m.selected = m.nextSelection(-1)
	case "a":
		if mesh {
			next := m.store.Dispatch(editor.AddNode{})
			m.selected = next.Spec.Nodes[len(next.Spec.Nodes)-1].ID
		} else {
			next := m.store.Dispatch(editor.AddStop{})
			m.selected = next.Spec.Stops[len(next.Spec.Stops)-1].ID
		}
	case "x", "delete", "backspace":
		m = m.remove()
	case "e":
		m.entry, m.buf = entryHex, "#"
		return m, nil
	case "A":
		if st.Spec.Kind.UsesAngle() {
			m.entry, m.buf = entryAngle, ""
		}
		return m, nil
	case "p":
		if !mesh {
			m.entry, m.buf = entryPosition, ""
		}
		return m, nil
	case "f":
		m.store.Dispatch(editor.SetFormat{Format: st.Format.Next()})
	case "r":
		m.store.Dispatch(editor.Randomize{})
	case "0":
		m.store.Dispatch(editor.Load{Spec: m.initial})
		m.selected = ""
		m.status = "Reset to the starting design"
	case "c":
		m.copy(st.CSS())
		m.status = "Copied CSS to clipboard"
		return m, nil
	default:
		return m, nil
	}
	return m.refresh(), nil
}

// move nudges the selected node, or the center of radial and conic
// gradients.
func (m editorModel) move(dx, dy float64) {
	st := m.store.State()
	switch {
	case st.Spec.Kind == gradient.KindMesh:
		if n, ok := st.Node(m.selection()); ok {
			m.store.Dispatch(editor.MoveNode{ID: n.ID, X: n.X + dx, Y: n.Y + dy})
		}
	case st.Spec.Kind.UsesCenter():
		c := st.Spec.Center
		m.store.Dispatch(editor.SetCenter{X: c.X + dx, Y: c.Y + dy})
	}
}

// shiftStop moves the selected stop along the gradient axis.
func (m editorModel) shiftStop(d float64) {
	st := m.store.State()
	if st.Spec.Kind == gradient.KindMesh {
		return
	}
	if s, ok := st.Stop(m.selection()); ok {
		pos := s.Position + d
		m.store.Dispatch(editor.UpdateStop{ID: s.ID, Position: &pos})
	}
}

func (m editorModel) remove() editorModel {
	st := m.store.State()
	id := m.selection()
	if st.Spec.Kind == gradient.KindMesh {
		if len(st.Spec.Nodes) <= editor.MinNodes {
			m.status = fmt.Sprintf("A mesh needs at least %d nodes", editor.MinNodes)
			return m
		}
		m.store.Dispatch(editor.RemoveNode{ID: id})
	} else {
		if len(st.Spec.Stops) <= editor.MinStops {
			m.status = fmt.Sprintf("A gradient needs at least %d stops", editor.MinStops)
			return m
		}
		m.store.Dispatch(editor.RemoveStop{ID: id})
	}
	m.selected = ""
	return m
}

// =============================================================================
// Text entry
// =============================================================================

func (m editorModel) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.entry, m.buf = entryNone, ""
	case tea.KeyEnter:
		return m.commitEntry().refresh(), nil
	case tea.KeyBackspace:
		if r := []rune(m.buf); len(r) > 0 {
			m.buf = string(r[:len(r)-1])
		}
		if m.entry == entryHex && m.buf == "" {
			m.buf = "#"
		}
	case tea.KeyRunes:
		if next := m.buf + string(msg.Runes); m.accepts(next) {
			m.buf = next
		}
	}
	return m, nil
}

// accepts reports whether s may stand in the entry field. Hex fields take
// only what could still become a color; numeric fields take anything short
// and read non-numbers as 0 on commit.
func (m editorModel) accepts(s string) bool {
	if m.entry == entryHex {
		_, ok := input.HexInput(s)
		return ok
	}
	return len(s) <= 4
}

// commitEntry applies the entry field. An incomplete color keeps the field
// open.
func (m editorModel) commitEntry() editorModel {
	st := m.store.State()
	id := m.selection()

	switch m.entry {
	case entryHex:
		if complete, _ := input.HexInput(m.buf); !complete {
			m.status = "Incomplete color: type six hex digits or press esc"
			return m
		}
		c := colors.ParseOr(m.buf, colors.Black)
		if st.Spec.Kind == gradient.KindMesh {
			m.store.Dispatch(editor.SetNodeColor{ID: id, Color: c})
		} else {
			m.store.Dispatch(editor.UpdateStop{ID: id, Color: &c})
		}
	case entryAngle:
		m.store.Dispatch(editor.SetAngle{Angle: input.Angle(m.buf)})
	case entryPosition:
		pos := float64(input.Percent(m.buf))
		m.store.Dispatch(editor.UpdateStop{ID: id, Position: &pos})
	}
	m.entry, m.buf, m.status = entryNone, "", ""
	return m
}

// =============================================================================
// Mouse
// =============================================================================

func (m editorModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	st := m.store.State()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		nx, ny, ok := m.toPreview(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		switch {
		case st.Spec.Kind == gradient.KindMesh:
			m.selected = st.NearestNode(nx, ny)
		case st.Spec.Kind.UsesCenter():
			m.drag.Submit(editor.SetCenter{X: nx, Y: ny})
		default:
			return m, nil
		}
		m.dragging = true
		return m.scheduleFrame()

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		nx, ny, _ := m.toPreview(msg.X, msg.Y)
		if st.Spec.Kind == gradient.KindMesh {
			m.drag.Submit(editor.MoveNode{ID: m.selection(), X: nx, Y: ny})
		} else {
			m.drag.Submit(editor.SetCenter{X: nx, Y: ny})
		}

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		m.drag.Cancel()
		return m.refresh(), nil
	}
	return m, nil
}

// scheduleFrame requests a frameMsg unless one is already on its way.
func (m editorModel) scheduleFrame() (editorModel, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// toPreview maps a terminal cell to normalized preview coordinates,
// clamped to 0-100. ok is false when the cell lies outside the preview.
func (m editorModel) toPreview(x, y int) (nx, ny float64, ok bool) {
	row := y - previewTop
	ok = x >= 0 && x < m.cols && row >= 0 && row < m.rows
	nx = (float64(x) + 0.5) / float64(m.cols) * 100
	ny = (float64(row)*2 + 1) / float64(m.rows*2) * 100
	return gradient.ClampPercent(nx), gradient.ClampPercent(ny), ok
}

// =============================================================================
// Selection
// =============================================================================

// itemIDs lists the editable items in display order: stops by position,
// or mesh nodes.
func (m editorModel) itemIDs() []string {
	st := m.store.State()
	var ids []string
	if st.Spec.Kind == gradient.KindMesh {
		for _, n := range st.Spec.Nodes {
			ids = append(ids, n.ID)
		}
		return ids
	}
	for _, s := range gradient.SortedStops(st.Spec.Stops) {
		ids = append(ids, s.ID)
	}
	return ids
}

// selection returns the selected item, or the first one when the
// selection no longer exists.
func (m editorModel) selection() string {
	ids := m.itemIDs()
	if slices.Contains(ids, m.selected) {
		return m.selected
	}
	if len(ids) > 0 {
		return ids[0]
	}
	return ""
}

func (m editorModel) nextSelection(step int) string {
	ids := m.itemIDs()
	if len(ids) == 0 {
		return ""
	}
	i := slices.Index(ids, m.selection())
	return ids[(i+step+len(ids))%len(ids)]
}

// =============================================================================
// Rendering
// =============================================================================

// refresh sizes the preview to the space left by the panel and renders it.
func (m editorModel) refresh() editorModel {
	m.cols = max(m.width, minPreviewCols)
	m.rows = max(m.height-previewTop-lipgloss.Height(m.panel()), minPreviewRows)

	spec := m.store.State().Spec
	opts := []preview.Option{preview.WithWorkers(m.workers)}
	if spec.Kind == gradient.KindMesh {
		opts = append(opts, preview.WithHandles())
	}
	if m.dragging {
		opts = append(opts, preview.WithDraft(dragDraft))
	}

	img, err := preview.Render(spec, m.cols, m.rows*2, opts...)
	if err != nil {
		m.preview, m.err = "", err
		return m
	}
	m.preview, m.err = halfBlock(img), nil
	return m
}

func (m editorModel) View() string {
	var b strings.Builder
	b.WriteString(m.title())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(StyleError.Render(errors.UserMessage(m.err)))
	} else {
		b.WriteString(m.preview)
	}
	b.WriteString("\n")
	b.WriteString(m.panel())
	return b.String()
}

func (m editorModel) title() string {
	spec := m.store.State().Spec
	parts := []string{StyleTitle.Render(appName), StyleHighlight.Render(kindName(spec.Kind))}
	if spec.Kind.UsesAngle() {
		parts = append(parts, StyleValue.Render(fmt.Sprintf("%d°", spec.Angle)))
	}
	if spec.Kind.UsesCenter() {
		parts = append(parts, StyleValue.Render(fmt.Sprintf("at %g%% %g%%", spec.Center.X, spec.Center.Y)))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

// panel lists the stops or nodes, then the CSS, the key help and the
// status line.
func (m editorModel) panel() string {
	st := m.store.State()
	sel := m.selection()
	var lines []string

	if st.Spec.Kind == gradient.KindMesh {
		for _, n := range st.Spec.Nodes {
			lines = append(lines, m.item(n.ID == sel, n.Color, st.Format, fmt.Sprintf("(%g, %g)", n.X, n.Y)))
		}
	} else {
		for _, s := range gradient.SortedStops(st.Spec.Stops) {
			lines = append(lines, m.item(s.ID == sel, s.Color, st.Format, fmt.Sprintf("%g%%", s.Position)))
		}
	}

	width := max(m.width, minPreviewCols)
	lines = append(lines,
		"",
		StyleValue.MaxWidth(width).Render(st.CSS()),
		listDimStyle.Width(width).Render(editorHelp),
		m.statusLine(st.Format),
	)
	return strings.Join(lines, "\n")
}

func (m editorModel) item(selected bool, c colors.Color, f colors.Format, where string) string {
	cursor, style := "  ", listNormalStyle
	if selected {
		cursor, style = "▸ ", listSelectedStyle
	}
	return cursor + swatch(c, 2) + " " + style.Render(c.Format(f)) + " " + listDimStyle.Render(where)
}

func (m editorModel) statusLine(f colors.Format) string {
	switch m.entry {
	case entryHex:
		line := "color: " + StyleHighlight.Render(m.buf+"▌")
		if complete, _ := input.HexInput(m.buf); complete && f != colors.FormatHex {
			line += " " + listDimStyle.Render(colors.Describe(m.buf, f))
		}
		return line
	case entryAngle:
		return "angle: " + StyleHighlight.Render(m.buf+"▌")
	case entryPosition:
		return "position: " + StyleHighlight.Render(m.buf+"▌")
	}
	if m.status != "" {
		return StyleWarning.Render(m.status)
	}
	return " "
}
