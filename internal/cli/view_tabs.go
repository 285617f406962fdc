package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tabsView is the home view: one tab per list plus the profile and
// T-Shape pages. Keys go to the active tab; everything else reaches all
// tabs so background loads land.
type tabsView struct {
	state  *SharedState
	tabs   []View
	active int
}

func newTabsView(state *SharedState) *tabsView {
	t := state.App.Tracker

	skills := newRecordListView(state, skillKind(t.Skills))
	skills.search = func(ctx context.Context, q string) ([]domain.Skill, error) {
		return t.Skills.Filter(ctx, service.SkillFilter{Search: q})
	}

	return &tabsView{
		state: state,
		tabs: []View{
			newProfileView(state, t.Profile),
			newRecordListView(state, courseKind(t.Courses)),
			newRecordListView(state, coachingKind(t.Coaching)),
			newRecordListView(state, applicationKind(t.Applications)),
			newRecordListView(state, certificationKind(t.Certifications)),
			newRecordListView(state, educationKind(t.Education)),
			newRecordListView(state, experienceKind(t.Experience)),
			skills,
			newTShapeView(state),
		},
	}
}

func (v *tabsView) current() View { return v.tabs[v.active] }

func (v *tabsView) ID() ViewID          { return v.current().ID() }
func (v *tabsView) Title() string       { return v.current().Title() }
func (v *tabsView) CapturesInput() bool { return capturesInput(v.current()) }

func (v *tabsView) ShortHelp() []key.Binding {
	help := v.current().ShortHelp()
	if !v.CapturesInput() {
		help = append(help, key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")))
	}
	return help
}

func (v *tabsView) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(v.tabs))
	for _, tab := range v.tabs {
		cmds = append(cmds, tab.Init())
	}
	return tea.Batch(cmds...)
}

func (v *tabsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmds []tea.Cmd
		for i, tab := range v.tabs {
			updated, cmd := tab.Update(msg)
			v.tabs[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return v, tea.Batch(cmds...)
	}

	if !v.CapturesInput() {
		switch s := keyMsg.String(); s {
		case "tab", "right", "l":
			v.active = (v.active + 1) % len(v.tabs)
			return v, nil
		case "shift+tab", "left", "h":
			v.active = (v.active - 1 + len(v.tabs)) % len(v.tabs)
			return v, nil
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if n, _ := strconv.Atoi(s); n <= len(v.tabs) {
				v.active = n - 1
			}
			return v, nil
		}
	}

	updated, cmd := v.current().Update(msg)
	v.tabs[v.active] = updated.(View)
	return v, cmd
}

func (v *tabsView) View() string {
	names := make([]string, len(v.tabs))
	for i, tab := range v.tabs {
		label := strconv.Itoa(i+1) + " " + tab.Title()
		if i == v.active {
			names[i] = formatter.StyleHeader.Render("[" + label + "]")
		} else {
			names[i] = formatter.Dim(" " + label + " ")
		}
	}
	return strings.Join(names, " ") + "\n" + v.current().View()
}
