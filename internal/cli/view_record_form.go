package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/editor"
	tea "github.com/charmbracelet/bubbletea"
)

// newRecordFormView opens the kind's form on the session's draft. The
// session must already be open; cancelling the form closes it.
func newRecordFormView[T domain.Record[T]](state *SharedState, k recordKind[T], sess *editor.Session[T], errText string) View {
	draft := sess.Draft()
	form, commit := k.form(&draft)

	title := "New " + string(k.kind())
	if id, ok := sess.EditingID(); ok {
		title = fmt.Sprintf("Edit %s #%d", k.kind(), id)
	}

	wv := newWizardView(state, title, form, func() tea.Cmd {
		return func() tea.Msg {
			return applyRecordForm(context.Background(), state, k, sess, &draft, commit)
		}
	})
	wv.onCancel = func() { _ = sess.Cancel() }
	wv.errText = errText
	return wv
}

// applyRecordForm submits a completed form. On failure the session stays
// open and the form comes back with the error and the entered values.
func applyRecordForm[T domain.Record[T]](ctx context.Context, state *SharedState, k recordKind[T], sess *editor.Session[T], draft *T, commit formCommit) tea.Msg {
	commitErr := commit()
	if err := sess.Change(func(d *T) { *d = *draft }); err != nil {
		return cmdOutputMsg{output: errorLine(err)}
	}
	if commitErr != nil {
		return pushViewMsg{view: newRecordFormView(state, k, sess, commitErr.Error())}
	}

	saved, err := sess.Submit(ctx)
	if err != nil {
		return pushViewMsg{view: newRecordFormView(state, k, sess, err.Error())}
	}
	return cmdOutputMsg{output: fmt.Sprintf("%s Saved %s #%d: %s",
		checkMark(), k.kind(), saved.RecordID(), formatter.Bold(k.name(saved)))}
}
