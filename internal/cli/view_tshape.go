package cli

import (
	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/tshape"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// tshapeView renders the T-Shape model in a scrollable viewport.
type tshapeView struct {
	state    *SharedState
	model    tshape.Model
	gapsOnly bool
	vp       viewport.Model
}

func newTShapeView(state *SharedState) *tshapeView {
	v := &tshapeView{
		state: state,
		model: tshape.Sample(),
		vp:    viewport.New(max(state.Width, 20), state.ContentHeight()),
	}
	v.vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
	}
	v.render()
	return v
}

func (v *tshapeView) ID() ViewID    { return ViewTShape }
func (v *tshapeView) Title() string { return "T-Shape" }

func (v *tshapeView) ShortHelp() []key.Binding {
	label := "gaps only"
	if v.gapsOnly {
		label = "full model"
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", label)),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *tshapeView) Init() tea.Cmd { return nil }

func (v *tshapeView) render() {
	if v.gapsOnly {
		v.vp.SetContent("\n" + formatter.Header(v.model.Title()) + "\n\n" + formatter.FormatGaps(v.model.Gaps()))
	} else {
		v.vp.SetContent("\n" + formatter.FormatTShape(v.model))
	}
	v.vp.GotoTop()
}

func (v *tshapeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "g" {
			v.gapsOnly = !v.gapsOnly
			v.render()
			return v, nil
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *tshapeView) View() string {
	return v.vp.View()
}
