package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/keymap"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/render"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/selection"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/validate"
)

// Model is the bubbletea model for a checkbox question.
type Model[V comparable] struct {
	message    string
	qmark      string
	ctl        *selection.Controller[V]
	dispatcher *keymap.Dispatcher
	keys       keymap.KeyMap
	theme      render.Theme
	list       render.ListOptions
	help       help.Model
	showHelp   bool
}

// NewModel validates opts and builds the model. Configuration problems are
// reported here, before anything is drawn.
func NewModel[V comparable](opts Options[V]) (Model[V], error) {
	state, err := selection.New(opts.Choices, selection.Options[V]{
		Default:       opts.Default,
		InitialChoice: opts.InitialChoice,
	})
	if err != nil {
		return Model[V]{}, err
	}

	var validator *validate.Validator[V]
	if opts.Validate != nil {
		validator, err = validate.New(opts.Validate)
		if err != nil {
			return Model[V]{}, err
		}
	}

	keys := keymap.DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	qmark := opts.QMark
	if qmark == "" {
		qmark = DefaultQMark
	}

	return Model[V]{
		message:    opts.Message,
		qmark:      qmark,
		ctl:        selection.NewController(state, validator),
		dispatcher: keymap.NewDispatcher(keys),
		keys:       keys,
		theme:      render.DefaultTheme().Merge(opts.Style),
		list: render.ListOptions{
			NoPointer: opts.NoPointer,
			MaxHeight: opts.MaxHeight,
		},
		help:     help.New(),
		showHelp: opts.ShowHelp,
	}, nil
}

func (m Model[V]) Init() tea.Cmd {
	return nil
}

func (m Model[V]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.Width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.dispatcher.Dispatch(msg, m.ctl)
		if m.ctl.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model[V]) View() string {
	state := m.ctl.State()

	var b strings.Builder
	b.WriteString(render.Prompt(m.message, m.qmark, state, m.theme))
	if m.ctl.Done() {
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(render.ChoiceList(state, m.theme, m.list))
	if toolbar := render.ErrorToolbar(state, m.theme); toolbar != "" {
		b.WriteString("\n")
		b.WriteString(toolbar)
	}
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// Controller returns the controller driving the session.
func (m Model[V]) Controller() *selection.Controller[V] {
	return m.ctl
}

// Result returns the answer, or ErrInterrupted when the prompt was aborted.
func (m Model[V]) Result() ([]V, error) {
	return m.ctl.Result()
}

// Run asks the question and blocks until it is answered or aborted.
// Cancelling ctx aborts the prompt.
func Run[V comparable](ctx context.Context, opts Options[V], progOpts ...tea.ProgramOption) ([]V, error) {
	m, err := NewModel(opts)
	if err != nil {
		return nil, err
	}

	log := logging.Component("tui")
	log.Debug("starting prompt", "choices", len(opts.Choices))

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, progOpts...)...)
	release := logging.Hold()
	final, err := p.Run()
	release()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return nil, errors.ErrInterrupted
		}
		return nil, errors.Wrap(errors.ExitGeneralError, "prompt failed", err)
	}

	fm, ok := final.(Model[V])
	if !ok {
		return nil, errors.New(errors.ExitGeneralError, "prompt returned an unexpected model")
	}
	log.Debug("prompt finished", "status", fm.ctl.Status())
	return fm.Result()
}
