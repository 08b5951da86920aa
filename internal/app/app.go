// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/config"
	"github.com/zjrosen/dlist/internal/keys"
	"github.com/zjrosen/dlist/internal/log"
	"github.com/zjrosen/dlist/internal/processor"
	"github.com/zjrosen/dlist/internal/pubsub"
	"github.com/zjrosen/dlist/internal/registry"
	"github.com/zjrosen/dlist/internal/render"
	helpview "github.com/zjrosen/dlist/internal/ui/help"
	"github.com/zjrosen/dlist/internal/ui/history"
	"github.com/zjrosen/dlist/internal/ui/modal"
	"github.com/zjrosen/dlist/internal/ui/styles"
	"github.com/zjrosen/dlist/internal/ui/toaster"
)

// Model is the root application state.
type Model struct {
	proc *processor.Processor
	reg  *registry.Registry

	keys       keys.KeyMap
	promptKeys keys.PromptKeyMap
	help       help.Model

	// Snapshot of the registry, re-read on every change event.
	entries  []registry.Snapshot
	selected int

	showBackward  bool
	showLength    bool
	toastDuration time.Duration
	markdownStyle string

	// configPath receives ui changes; empty disables saving.
	configPath    string
	configChanged <-chan struct{}
	theme         styles.ThemeConfig

	// Argument prompt; pending is nil while no prompt is open.
	prompt  textinput.Model
	pending *operation

	toaster  toaster.Model
	history  history.Model
	helpView helpview.Model
	showHelp bool

	// confirm is non-nil while a remove_collection awaits confirmation.
	confirm *modal.Model

	panels *panelCache

	width  int
	height int

	ctx        context.Context
	cancel     context.CancelFunc
	changes    *pubsub.ContinuousListener[registry.Change]
	commandLog *pubsub.ContinuousListener[processor.CommandLogEvent]
}

// New creates the application model over proc's registry. commandLog may be
// nil, in which case the history stays empty.
func New(proc *processor.Processor, commandLog *pubsub.Broker[processor.CommandLogEvent], ui config.UIConfig) Model {
	ctx, cancel := context.WithCancel(context.Background())

	reg := proc.Registry()
	m := Model{
		proc:          proc,
		reg:           reg,
		keys:          keys.DefaultKeyMap(),
		promptKeys:    keys.DefaultPromptKeyMap(),
		help:          help.New(),
		entries:       reg.Entries(),
		showBackward:  ui.ShowBackward,
		showLength:    ui.ShowLength,
		toastDuration: ui.ToastDuration,
		markdownStyle: ui.MarkdownStyle,
		prompt:        newPrompt(),
		toaster:       toaster.New(),
		history:       history.New(),
		helpView:      helpview.New(ui.MarkdownStyle),
		panels:        newPanelCache(),
		ctx:           ctx,
		cancel:        cancel,
		changes:       pubsub.NewContinuousListener(ctx, reg.Broker()),
	}
	if commandLog != nil {
		m.commandLog = pubsub.NewContinuousListener(ctx, commandLog)
	}
	return m
}

// SetConfigPath sets the file ui toggles are written back to.
func (m *Model) SetConfigPath(path string) {
	m.configPath = path
}

func (m Model) uiConfig() config.UIConfig {
	return config.UIConfig{
		ShowBackward:  m.showBackward,
		ShowLength:    m.showLength,
		ToastDuration: m.toastDuration,
		MarkdownStyle: m.markdownStyle,
	}
}

// saveUI persists the ui section. A failed save only warns.
func (m *Model) saveUI() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	if err := config.SaveUI(m.configPath, m.uiConfig()); err != nil {
		log.ErrorErr(log.CatConfig, "saving ui config", err, "path", m.configPath)
		m.toaster = m.toaster.Show("could not save settings: "+err.Error(), toaster.StyleWarn)
		return m.toaster.ScheduleDismiss(m.toastDuration)
	}
	return nil
}

func newPrompt() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 64
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.changes.Listen()}
	if m.commandLog != nil {
		cmds = append(cmds, m.commandLog.Listen())
	}
	if m.configChanged != nil {
		cmds = append(cmds, waitForConfig(m.configChanged))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.Width = max(msg.Width-40, 10)
		m.history.SetSize(msg.Width, msg.Height)
		m.helpView = m.helpView.SetSize(msg.Width, msg.Height)
		if m.confirm != nil {
			m.confirm.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case pubsub.Event[registry.Change]:
		return m.handleChange(msg)

	case pubsub.Event[processor.CommandLogEvent]:
		if missed := m.commandLog.Observe(msg); missed > 0 {
			log.Warn(log.CatUI, "command log events dropped", "missed", missed)
		}
		m.history.Append(msg.Payload)
		return m, m.commandLog.Listen()

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case history.CloseMsg:
		m.history.Hide()
		return m, nil

	case configChangedMsg:
		return m.reloadConfig()

	case modal.SubmitMsg:
		m.confirm = nil
		return m.run(opRemoveCollection, "")

	case modal.CancelMsg:
		m.confirm = nil
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.confirm != nil {
			next, cmd := m.confirm.Update(msg)
			m.confirm = &next
			return m, cmd
		}
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc {
				m.showHelp = false
			} else if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.history.Visible() {
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
		if m.pending != nil {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleChange(ev pubsub.Event[registry.Change]) (tea.Model, tea.Cmd) {
	if missed := m.changes.Observe(ev); missed > 0 {
		log.Warn(log.CatUI, "registry events dropped, re-reading", "missed", missed)
	}

	m.entries = m.reg.Entries()
	switch ev.Type {
	case pubsub.CreatedEvent:
		m.selected = ev.Payload.Index
	case pubsub.DeletedEvent:
		if m.selected > ev.Payload.Index {
			m.selected--
		}
	}
	m.selected = min(max(m.selected, 0), max(len(m.entries)-1, 0))

	log.Debug(log.CatUI, "registry changed", "op", ev.Payload.Op, "name", ev.Payload.Name, "entries", len(m.entries))
	return m, m.changes.Listen()
}

// handleMouse selects a collection by clicking its panel or scrolling. Clicks
// are ignored while an overlay or the prompt is open.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil || m.showHelp || m.history.Visible() || m.pending != nil {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.selected = max(m.selected-1, 0)
	case msg.Button == tea.MouseButtonWheelDown:
		m.selected = min(m.selected+1, max(len(m.entries)-1, 0))
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		for i, e := range m.entries {
			if z := zone.Get(panelZoneID(e.ID)); z != nil && z.InBounds(msg) {
				m.selected = i
				break
			}
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleDirection):
		m.showBackward = !m.showBackward
		cmd := m.saveUI()
		return m, cmd
	case key.Matches(msg, m.keys.History):
		m.history.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	if op, ok := m.operationFor(msg); ok {
		return m.start(op)
	}
	return m, nil
}

func (m Model) operationFor(msg tea.KeyMsg) (operation, bool) {
	bindings := []struct {
		binding key.Binding
		op      operation
	}{
		{m.keys.InsertAtBeginning, opInsertAtBeginning},
		{m.keys.InsertAtEnd, opInsertAtEnd},
		{m.keys.InsertAfter, opInsertAfter},
		{m.keys.DeleteFromBeginning, opDeleteFromBeginning},
		{m.keys.DeleteFromEnd, opDeleteFromEnd},
		{m.keys.DeleteAfter, opDeleteAfter},
		{m.keys.RemoveValue, opRemoveValue},
		{m.keys.UpdateValue, opUpdateValue},
		{m.keys.Sort, opSort},
		{m.keys.Search, opSearch},
		{m.keys.NewCollection, opCreateCollection},
		{m.keys.RemoveCollection, opRemoveCollection},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.op, true
		}
	}
	return operation{}, false
}

// start runs op right away or opens the prompt for its arguments.
func (m Model) start(op operation) (tea.Model, tea.Cmd) {
	if op.needsCollection() && len(m.entries) == 0 {
		return m.toast("no collection selected, press n to create one", toaster.StyleWarn)
	}
	if op.cmdType == command.CmdRemoveCollection {
		dlg := modal.New(modal.Config{
			Title:          "Remove collection",
			Message:        fmt.Sprintf("Remove %q and all of its values?", m.entries[m.selected].Name),
			ConfirmVariant: modal.ButtonDanger,
		})
		dlg.SetSize(m.width, m.height)
		m.confirm = &dlg
		return m, nil
	}
	if !op.needsInput() {
		return m.run(op, "")
	}

	m.pending = &op
	m.prompt.Reset()
	m.prompt.Placeholder = op.placeholder()
	return m, m.prompt.Focus()
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.promptKeys.Cancel):
		m.closePrompt()
		return m, nil
	case key.Matches(msg, m.promptKeys.Submit):
		op := *m.pending
		input := m.prompt.Value()
		m.closePrompt()
		return m.run(op, input)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.pending = nil
	m.prompt.Blur()
	m.prompt.Reset()
}

// run builds the command for the selected collection and processes it.
func (m Model) run(op operation, input string) (tea.Model, tea.Cmd) {
	cmd, err := op.build(m.selected, input)
	if err != nil {
		return m.toast(err.Error(), toaster.StyleError)
	}

	result, err := m.proc.Process(m.ctx, cmd)
	if err != nil {
		log.ErrorErr(log.CatUI, "command rejected", err, "type", cmd.Type())
		return m.toast(err.Error(), toaster.StyleError)
	}

	text := render.Command(cmd) + ": " + render.Outcome(cmd.Type(), result)
	if !result.Success {
		return m.toast(text, toaster.StyleError)
	}
	if cmd.Type() == command.CmdSearch {
		return m.toast(text, toaster.StyleInfo)
	}
	return m.toast(text, toaster.StyleSuccess)
}

func (m Model) toast(text string, style toaster.Style) (tea.Model, tea.Cmd) {
	m.toaster = m.toaster.Show(text, style)
	return m, m.toaster.ScheduleDismiss(m.toastDuration)
}

// Selected returns the index of the highlighted collection.
func (m Model) Selected() int {
	return m.selected
}

// Close stops the registry and command log listeners.
func (m *Model) Close() error {
	m.cancel()
	return nil
}
