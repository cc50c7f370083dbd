package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/navbar"
	"github.com/drake/navbar/layout"
	"github.com/drake/navbar/script"
)

// pageStack is the demo's navigation history. The bar only triggers Back;
// history itself is caller-owned.
type pageStack struct {
	pages []string
}

func (p *pageStack) Current() string { return p.pages[len(p.pages)-1] }
func (p *pageStack) Depth() int      { return len(p.pages) }
func (p *pageStack) Push(name string) {
	p.pages = append(p.pages, name)
}

// Back implements navbar.Navigator.
func (p *pageStack) Back() {
	if len(p.pages) > 1 {
		p.pages = p.pages[:len(p.pages)-1]
	}
}

// inputDock adapts the search input to the dock Renderer contract.
type inputDock struct {
	input *textinput.Model
}

func (d *inputDock) SetWidth(w int) {
	d.input.Width = w - len(d.input.Prompt) - 1
}
func (d *inputDock) Height() int  { return 1 }
func (d *inputDock) View() string { return d.input.View() }

type model struct {
	stack  *pageStack
	bar    *navbar.Bar
	input  textinput.Model
	engine *layout.Engine

	// Set by the bar's right-zone handler; Update drains it into a focus
	// command since handlers cannot return tea.Cmds.
	wantFocus *bool

	width  int
	height int
	depth  int // stack depth when the bar was last built
}

func newModel() model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search, enter pushes a page"

	m := model{
		stack:     &pageStack{pages: []string{"Home"}},
		input:     ti,
		engine:    layout.NewEngine(),
		wantFocus: new(bool),
	}
	m.bar = m.buildBar()
	m.depth = m.stack.Depth()
	return m
}

// buildBar assembles a bar for the current page. Bar configuration is
// immutable per render, so page changes build a fresh one.
func (m *model) buildBar() *navbar.Bar {
	want := m.wantFocus
	opts := []navbar.Option{
		navbar.WithTitle(m.stack.Current()),
		navbar.WithNavigator(m.stack),
		navbar.WithRight(navbar.Text("Search")),
		navbar.OnRight(func(int) bool {
			*want = true
			return true
		}),
	}
	if m.stack.Depth() == 1 {
		// Root page: nothing to go back to.
		opts = append(opts, navbar.WithLeft())
	}
	return navbar.New(opts...)
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.engine.SetSize(msg.Width, msg.Height)
		return m, nil

	case navbar.DismissKeyboardMsg:
		m.input.Blur()
		return m, nil

	case tea.MouseMsg:
		updated, cmd := m.bar.Update(msg)
		m.bar = updated.(*navbar.Bar)
		cmds = append(cmds, cmd)
		if m.stack.Depth() != m.depth {
			m.bar = m.buildBar()
			m.depth = m.stack.Depth()
		}
		if *m.wantFocus {
			*m.wantFocus = false
			cmds = append(cmds, m.input.Focus())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "esc":
				m.input.Blur()
				return m, nil
			case "enter":
				name := strings.TrimSpace(m.input.Value())
				if name != "" {
					m.stack.Push(name)
					m.bar = m.buildBar()
					m.depth = m.stack.Depth()
				}
				m.input.SetValue("")
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			return m, m.input.Focus()
		case "esc", "backspace":
			m.stack.Back()
			m.bar = m.buildBar()
			m.depth = m.stack.Depth()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return ""
	}

	top := &layout.Dock{Renderers: []layout.Renderer{m.bar}}
	bottom := &layout.Dock{Renderers: []layout.Renderer{&inputDock{input: &m.input}}}
	contentHeight := m.engine.Content(top, bottom)

	body := make([]string, 0, contentHeight)
	body = append(body, "", fmt.Sprintf("  page %d: %s", m.stack.Depth(), m.stack.Current()))
	body = append(body, "", "  click Search or press / to focus the input", "  esc/backspace or the ‹ button goes back, q quits")
	for len(body) < contentHeight {
		body = append(body, "")
	}
	return top.View() + "\n" + strings.Join(body[:contentHeight], "\n") + "\n" + bottom.View()
}

func main() {
	scriptPath := flag.String("script", "", "Lua script to run instead of init.lua")
	flag.Parse()

	engine := script.NewEngine(navbar.DefaultRegistry())
	if err := engine.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "script init:", err)
		os.Exit(1)
	}
	defer engine.Close()

	var err error
	if *scriptPath != "" {
		err = engine.LoadFile(*scriptPath)
	} else {
		err = engine.LoadInit()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "script:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
