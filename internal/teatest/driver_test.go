package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type counterMsg struct{}

// counter counts key presses and increments once more for each counterMsg.
type counter struct {
	keys   []string
	ticks  int
	width  int
	inited bool
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return counterMsg{} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case counterMsg:
		c.ticks++
		c.inited = true
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
		if msg.String() == "q" {
			return c, tea.Quit
		}
		if msg.String() == "b" {
			return c, tea.Batch(
				func() tea.Msg { return counterMsg{} },
				func() tea.Msg { return counterMsg{} },
			)
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestDriver_DrainInitAndSize(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.DrainInit()

	c := d.Model.(counter)
	assert.Equal(t, 80, c.width)
	assert.True(t, c.inited)
	assert.Equal(t, 1, c.ticks)
}

func TestDriver_KeysAndBatches(t *testing.T) {
	d := New(t, counter{})
	d.Type("ab")
	d.PressTab()
	d.PressShiftTab()
	d.PressEnter()

	c := d.Model.(counter)
	assert.Equal(t, []string{"a", "b", "tab", "shift+tab", "enter"}, c.keys)
	assert.Equal(t, 2, c.ticks, "both batched commands are drained")
}

func TestDriver_QuitStopsSending(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('x')
	assert.Equal(t, []string{"q"}, d.Model.(counter).keys)
}
