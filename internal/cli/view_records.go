package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/editor"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// recordsLoadedMsg carries one list's records. The type parameter keeps
// lists of different kinds from consuming each other's loads.
type recordsLoadedMsg[T any] struct {
	records []T
	err     error
}

// recordListView is one tab: a navigable table of a record list with
// add, edit and remove actions.
type recordListView[T domain.Record[T]] struct {
	state *SharedState
	k     recordKind[T]
	sess  *editor.Session[T]

	// search, when set, is run on every filter change instead of matching
	// record names locally.
	search func(ctx context.Context, query string) ([]T, error)

	records []T
	cursor  int
	loading bool
	err     error

	filtering bool
	filter    string
}

func newRecordListView[T domain.Record[T]](state *SharedState, k recordKind[T]) *recordListView[T] {
	return &recordListView[T]{
		state:   state,
		k:       k,
		sess:    k.uc.NewSession(),
		loading: true,
	}
}

func (v *recordListView[T]) ID() ViewID          { return ViewRecords }
func (v *recordListView[T]) Title() string       { return v.k.kind().Title() }
func (v *recordListView[T]) CapturesInput() bool { return v.filtering }

func (v *recordListView[T]) ShortHelp() []key.Binding {
	if v.filtering {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	}
}

func (v *recordListView[T]) Init() tea.Cmd {
	return v.load()
}

func (v *recordListView[T]) load() tea.Cmd {
	uc, search, filter := v.k.uc, v.search, v.filter
	return func() tea.Msg {
		ctx := context.Background()
		if filter != "" && search != nil {
			records, err := search(ctx, filter)
			return recordsLoadedMsg[T]{records: records, err: err}
		}
		records, err := uc.List(ctx)
		return recordsLoadedMsg[T]{records: records, err: err}
	}
}

func (v *recordListView[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg[T]:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.records = msg.records
		}
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.filtering {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *recordListView[T]) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.visible())-1 {
			v.cursor++
		}
	case "a":
		return v, v.openNew()
	case "e", "enter":
		return v, v.openEdit()
	case "d", "x":
		return v, v.confirmRemove()
	case "/":
		v.filtering = true
		v.filter = ""
	}
	return v, nil
}

func (v *recordListView[T]) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter = ""
		v.cursor = 0
		return v, v.reloadForFilter()
	case tea.KeyEnter:
		v.filtering = false
		return v, nil
	case tea.KeyBackspace:
		if v.filter == "" {
			return v, nil
		}
		r := []rune(v.filter)
		v.filter = string(r[:len(r)-1])
	case tea.KeyRunes, tea.KeySpace:
		v.filter += string(msg.Runes)
	default:
		return v, nil
	}
	v.cursor = 0
	return v, v.reloadForFilter()
}

func (v *recordListView[T]) reloadForFilter() tea.Cmd {
	if v.search == nil {
		return nil
	}
	return v.load()
}

func (v *recordListView[T]) visible() []T {
	if v.filter == "" || v.search != nil {
		return v.records
	}
	lf := strings.ToLower(v.filter)
	var out []T
	for _, rec := range v.records {
		if strings.Contains(strings.ToLower(v.k.name(rec)), lf) {
			out = append(out, rec)
		}
	}
	return out
}

func (v *recordListView[T]) clampCursor() {
	v.cursor = max(min(v.cursor, len(v.visible())-1), 0)
}

func (v *recordListView[T]) selected() (T, bool) {
	visible := v.visible()
	if v.cursor < 0 || v.cursor >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[v.cursor], true
}

func (v *recordListView[T]) openNew() tea.Cmd {
	if err := v.sess.New(); err != nil {
		return outputCmd(errorLine(err))
	}
	return pushView(newRecordFormView(v.state, v.k, v.sess, ""))
}

func (v *recordListView[T]) openEdit() tea.Cmd {
	rec, ok := v.selected()
	if !ok {
		return nil
	}
	if err := v.sess.Edit(context.Background(), rec.RecordID()); err != nil {
		return outputCmd(errorLine(err))
	}
	return pushView(newRecordFormView(v.state, v.k, v.sess, ""))
}

func (v *recordListView[T]) confirmRemove() tea.Cmd {
	rec, ok := v.selected()
	if !ok {
		return nil
	}
	id, kind := rec.RecordID(), v.k.kind()
	var yes bool
	form := confirmForm(fmt.Sprintf("Remove %s #%d %s?", kind, id, v.k.name(rec)), &yes)
	uc := v.k.uc
	return pushView(newWizardView(v.state, "Remove "+string(kind), form, func() tea.Cmd {
		if !yes {
			return outputCmd(formatter.Dim("Kept."))
		}
		return func() tea.Msg {
			if err := uc.Remove(context.Background(), id); err != nil {
				return cmdOutputMsg{output: errorLine(err)}
			}
			return cmdOutputMsg{output: fmt.Sprintf("%s Removed %s #%d", checkMark(), kind, id)}
		}
	}))
}

func (v *recordListView[T]) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + errorLine(v.err)
	}

	var b strings.Builder
	b.WriteString("\n")
	if v.filtering || v.filter != "" {
		cursor := ""
		if v.filtering {
			cursor = "█"
		}
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + v.filter + cursor + "\n\n")
	}

	visible := v.visible()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.FormatRecords(v.k.kind(), v.k.cols, nil))
		return b.String()
	}

	rows := make([][]string, len(visible))
	for i, rec := range visible {
		rows[i] = v.k.cols.Row(rec)
	}
	table := formatter.RenderTable(v.k.cols.Headers, rows)
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	for i, line := range lines {
		prefix := "  "
		// The first two lines are the header and its separator.
		if i-2 == v.cursor {
			prefix = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(prefix + line + "\n")
	}
	return b.String()
}

func errorLine(err error) string {
	return formatter.StyleRed.Render("✖ " + err.Error())
}
