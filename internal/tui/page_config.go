package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

// ConfigPage is the form page: one text field per parameter key. Every
// keystroke that changes a field value flows through Store.Set, which is
// what fans the change out to the other pages and the snapshot file.
type ConfigPage struct {
	store   *params.Store
	defs    []params.Definition
	inputs  []textinput.Model
	focused int
	editing bool
}

// NewConfigPage creates the form with fields seeded from the store and a
// store subscription that keeps fields in sync with external mutations
// (presets, snapshot-file edits).
func NewConfigPage(store *params.Store) *ConfigPage {
	defs := params.Definitions()
	p := &ConfigPage{
		store: store,
		defs:  defs,
	}

	p.inputs = make([]textinput.Model, len(defs))
	for i, def := range defs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.SetValue(store.Get(def.Key))
		p.inputs[i] = ti
	}

	store.SubscribeAll(func(snapshot map[string]string, key string) {
		p.OnParamsChanged(snapshot)
	})
	return p
}

func (p *ConfigPage) ID() string    { return PageConfig }
func (p *ConfigPage) Title() string { return "Config" }

func (p *ConfigPage) OnEnter() tea.Cmd {
	p.syncFromStore(p.store.Snapshot())
	return nil
}

func (p *ConfigPage) OnExit() {
	p.blur()
}

// OnParamsChanged refreshes unfocused fields so external mutations show
// up. The focused field is left alone; overwriting it mid-edit would fight
// the cursor.
func (p *ConfigPage) OnParamsChanged(snapshot map[string]string) {
	p.syncFromStore(snapshot)
}

func (p *ConfigPage) syncFromStore(snapshot map[string]string) {
	for i, def := range p.defs {
		if p.editing && i == p.focused {
			continue
		}
		if v := snapshot[def.Key]; p.inputs[i].Value() != v {
			p.inputs[i].SetValue(v)
		}
	}
}

// CapturesInput reports whether a field is being edited, in which case the
// app routes key events here before global shortcuts.
func (p *ConfigPage) CapturesInput() bool { return p.editing }

func (p *ConfigPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	if !p.editing {
		switch keyMsg.String() {
		case "up", "k":
			if p.focused > 0 {
				p.focused--
			}
		case "down", "j":
			if p.focused < len(p.inputs)-1 {
				p.focused++
			}
		case "enter", "i":
			p.editing = true
			p.inputs[p.focused].Focus()
			return textinput.Blink, nil
		}
		return nil, nil
	}

	switch keyMsg.String() {
	case "esc", "enter":
		p.blur()
		return nil, nil
	case "up":
		p.blur()
		if p.focused > 0 {
			p.focused--
		}
		return nil, nil
	case "down":
		p.blur()
		if p.focused < len(p.inputs)-1 {
			p.focused++
		}
		return nil, nil
	}

	before := p.inputs[p.focused].Value()
	var cmd tea.Cmd
	p.inputs[p.focused], cmd = p.inputs[p.focused].Update(msg)
	after := p.inputs[p.focused].Value()

	if after != before {
		p.store.Set(p.defs[p.focused].Key, after)
	}
	return cmd, nil
}

func (p *ConfigPage) blur() {
	if p.editing {
		p.inputs[p.focused].Blur()
		p.editing = false
	}
}

func (p *ConfigPage) View(width, height int) string {
	boxWidth := width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}

	var rows string
	for i, def := range p.defs {
		marker := "  "
		if i == p.focused {
			marker = "> "
		}
		field := p.inputs[i].View()
		if !p.editing || i != p.focused {
			field = valueStyle.Render(p.inputs[i].Value())
		}
		rows += fmt.Sprintf("%s%s %s %s\n",
			marker,
			labelStyle.Width(18).Render(def.Label),
			field,
			unitStyle.Render(def.Unit))
	}

	boxStyle := sectionStyle
	if p.editing {
		boxStyle = activeSectionStyle
	}
	box := boxStyle.Width(boxWidth).Render(
		pageTitleStyle.Render("Satellite configuration") + "\n" + rows)

	hint := helpStyle.Render("↑/↓ select · enter edit · esc done · changes apply immediately")
	return lipgloss.JoinVertical(lipgloss.Left, box, hint)
}
