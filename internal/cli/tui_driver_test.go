package cli

import (
	"testing"

	"github.com/alexanderramin/ladder/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to the appModel internals
// (view stack, active tab, last output) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets a terminal size, and
// drains Init so every tab has loaded.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() *appModel {
	m := d.Model.(appModel)
	return &m
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.appModel().activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	v := d.appModel().activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Tabs returns the home view.
func (d *TestDriver) Tabs() *tabsView {
	return d.appModel().viewStack[0].(*tabsView)
}

// GoToTab presses tab until the tab titled title is active.
func (d *TestDriver) GoToTab(title string) {
	d.T.Helper()
	tabs := d.Tabs()
	for range tabs.tabs {
		if d.Tabs().Title() == title {
			return
		}
		d.PressTab()
	}
	d.T.Fatalf("no tab titled %q", title)
}

// IsQuitting reports whether the app signalled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient result line.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}
