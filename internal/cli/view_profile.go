package cli

import (
	"context"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type profileLoadedMsg struct {
	profile domain.Profile
	err     error
}

// profileView shows the general-information card.
type profileView struct {
	state   *SharedState
	uc      app.ProfileUseCase
	profile domain.Profile
	loading bool
	err     error
}

func newProfileView(state *SharedState, uc app.ProfileUseCase) *profileView {
	return &profileView{state: state, uc: uc, loading: true}
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return domain.KindProfile.Title() }

func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	}
}

func (v *profileView) Init() tea.Cmd {
	return v.load()
}

func (v *profileView) load() tea.Cmd {
	uc := v.uc
	return func() tea.Msg {
		p, err := uc.Get(context.Background())
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.profile = msg.profile
	case refreshViewMsg:
		return v, v.load()
	case tea.KeyMsg:
		switch msg.String() {
		case "e", "enter":
			return v, pushView(newProfileFormView(v.state, v.uc, v.profile, ""))
		}
	}
	return v, nil
}

func (v *profileView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + errorLine(v.err)
	}
	return "\n" + formatter.FormatProfile(v.profile)
}

func newProfileFormView(state *SharedState, uc app.ProfileUseCase, current domain.Profile, errText string) View {
	draft := current
	form, commit := profileForm(&draft)
	wv := newWizardView(state, "Edit profile", form, func() tea.Cmd {
		return func() tea.Msg {
			return applyProfileForm(context.Background(), state, uc, &draft, commit)
		}
	})
	wv.errText = errText
	return wv
}

func applyProfileForm(ctx context.Context, state *SharedState, uc app.ProfileUseCase, p *domain.Profile, commit formCommit) tea.Msg {
	if err := commit(); err != nil {
		return pushViewMsg{view: newProfileFormView(state, uc, *p, err.Error())}
	}
	if err := uc.Save(ctx, *p); err != nil {
		return pushViewMsg{view: newProfileFormView(state, uc, *p, err.Error())}
	}
	return cmdOutputMsg{output: checkMark() + " Profile saved"}
}
