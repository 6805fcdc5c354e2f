package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"crafto-editor/ds"
	"crafto-editor/save"
	"crafto-editor/savedir"
	"crafto-editor/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeEntry
)

const (
	StatusDurationOK    = 3 * time.Second
	StatusDurationError = 5 * time.Second
)

type (
	filesListedMsg struct {
		names []string
		err   error
	}
	fieldLoadedMsg struct {
		session session.Session
		err     error
	}
	fieldSavedMsg struct {
		session session.Session
		err     error
	}
	clearStatusMsg struct {
		id int
	}
)

// Editor lists the save files on the left and edits the progression points
// of the selected one.
type Editor struct {
	dir      string
	names    []string
	visible  []string
	cursor   int
	search   string
	mode     Mode
	session  session.Session
	loading  bool
	saving   bool
	slider   int
	entry    string
	status   string
	statusID int
	isError  bool
}

func NewEditor(dir string) Editor {
	return Editor{
		dir:    dir,
		slider: session.SliderMin,
	}
}

func listFiles(dir string) tea.Cmd {
	return func() tea.Msg {
		names, err := savedir.List(dir)
		return filesListedMsg{names: names, err: err}
	}
}

func loadField(path string) tea.Cmd {
	return func() tea.Msg {
		s := session.Session{}
		_, err := s.Load(path)
		return fieldLoadedMsg{session: s, err: err}
	}
}

func saveField(s session.Session, value float64) tea.Cmd {
	// the copy keeps the running command away from the model's session
	field := *s.Field
	s.Field = &field
	return func() tea.Msg {
		err := s.Save(value)
		return fieldSavedMsg{session: s, err: err}
	}
}

func (e Editor) Init() tea.Cmd {
	return listFiles(e.dir)
}

func (e *Editor) setStatus(text string, isError bool) tea.Cmd {
	e.statusID++
	e.status = text
	e.isError = isError
	id := e.statusID
	duration := StatusDurationOK
	if isError {
		duration = StatusDurationError
	}
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (e *Editor) refilter() {
	e.visible = savedir.Filter(e.names, e.search)
	e.cursor = ds.Clamp(e.cursor, 0, len(e.visible)-1)
	if len(e.visible) == 0 {
		e.cursor = 0
	}
}

func (e Editor) selectedPath() (string, bool) {
	if len(e.visible) == 0 {
		return "", false
	}
	return filepath.Join(e.dir, e.visible[e.cursor]), true
}

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case filesListedMsg:
		if msg.err != nil {
			return e, e.setStatus("ERROR: "+msg.err.Error(), true)
		}
		e.names = msg.names
		e.refilter()
		return e, nil
	case fieldLoadedMsg:
		return e.onFieldLoaded(msg)
	case fieldSavedMsg:
		e.saving = false
		// the selection changed while the save was running
		if msg.session.Path != e.session.Path {
			return e, nil
		}
		if msg.err != nil {
			return e, e.setStatus("SAVE FAILED: "+msg.err.Error(), true)
		}
		e.session = msg.session
		return e, e.setStatus(fmt.Sprintf("Saved %.4f", e.session.Field.Value), false)
	case clearStatusMsg:
		if msg.id == e.statusID {
			e.status = ""
			e.isError = false
		}
		return e, nil
	case tea.KeyMsg:
		switch e.mode {
		case ModeSearch:
			return e.updateSearch(msg)
		case ModeEntry:
			return e.updateEntry(msg)
		default:
			return e.updateBrowse(msg)
		}
	}
	return e, nil
}

func (e Editor) onFieldLoaded(msg fieldLoadedMsg) (tea.Model, tea.Cmd) {
	// a newer selection replaced this one while it was loading
	if msg.session.Path != e.session.Path {
		return e, nil
	}
	e.loading = false
	e.session = msg.session
	if msg.err != nil {
		text := msg.err.Error()
		if errors.Is(msg.err, save.ErrNotFound) {
			text = save.ErrNotFound.Error()
		}
		return e, e.setStatus("ERROR: "+text, true)
	}
	e.slider = session.DisplayValue(e.session.Field.Value)
	return e, e.setStatus(fmt.Sprintf("Loaded '%s'", filepath.Base(e.session.Path)), false)
}

func (e Editor) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return e, tea.Quit
	case "up", "k":
		if len(e.visible) > 0 {
			e.cursor = ds.Clamp(e.cursor-1, 0, len(e.visible)-1)
		}
		return e, nil
	case "down", "j":
		if len(e.visible) > 0 {
			e.cursor = ds.Clamp(e.cursor+1, 0, len(e.visible)-1)
		}
		return e, nil
	case "/":
		e.mode = ModeSearch
		return e, nil
	case "ctrl+r":
		return e, listFiles(e.dir)
	case "enter":
		if e.saving {
			return e, e.setStatus("Save in progress", true)
		}
		path, ok := e.selectedPath()
		if !ok {
			return e, nil
		}
		e.session = session.Session{Path: path}
		e.loading = true
		return e, loadField(path)
	}

	if !e.session.Loaded() || e.loading || e.saving {
		if key == "s" {
			return e, e.setStatus("No file loaded!", true)
		}
		return e, nil
	}
	switch key {
	case "left", "h":
		e.slider = ds.Clamp(e.slider-1, session.SliderMin, session.SliderMax)
	case "right", "l":
		e.slider = ds.Clamp(e.slider+1, session.SliderMin, session.SliderMax)
	case "r":
		e.slider = session.DisplayValue(e.session.Field.Value)
		return e, e.setStatus("Reverted to last loaded value", false)
	case "s":
		e.saving = true
		return e, saveField(e.session, float64(e.slider))
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			e.mode = ModeEntry
			e.entry = key
		}
	}
	return e, nil
}

func (e Editor) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return e, tea.Quit
	case tea.KeyEnter:
		e.mode = ModeBrowse
	case tea.KeyEsc:
		e.mode = ModeBrowse
		e.search = ""
	case tea.KeyBackspace:
		if len(e.search) > 0 {
			runes := []rune(e.search)
			e.search = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		e.search += string(msg.Runes)
	}
	e.refilter()
	return e, nil
}

func (e Editor) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return e, tea.Quit
	case tea.KeyEnter:
		if value, ok := session.ParseEntry(e.entry); ok {
			e.slider = value
		}
		e.mode = ModeBrowse
		e.entry = ""
	case tea.KeyEsc:
		e.mode = ModeBrowse
		e.entry = ""
	case tea.KeyBackspace:
		if len(e.entry) > 0 {
			e.entry = e.entry[:len(e.entry)-1]
		}
	case tea.KeyRunes:
		e.entry += string(msg.Runes)
	}
	return e, nil
}

func (e Editor) viewFiles() string {
	output := ""
	switch e.mode {
	case ModeSearch:
		output += "Search: " + e.search + "_\n"
	case ModeBrowse, ModeEntry:
		if e.search != "" {
			output += "Search: " + e.search + "\n"
		}
	default:
		panic(ds.ErrUnreachableCode{Caller: "Editor.viewFiles", State: e.mode})
	}
	if len(e.visible) == 0 {
		return output + "  (no save files)\n"
	}
	for i, name := range e.visible {
		cursor := "  "
		if i == e.cursor {
			cursor = "> "
		}
		output += cursor + name + "\n"
	}
	return output
}

func (e Editor) viewSlider() string {
	ticks := ds.MakeRange(session.SliderMin, session.SliderMax+1, 1)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%2d ", session.SliderMin))
	for _, tick := range ticks {
		if tick == e.slider {
			sb.WriteString("●")
		} else {
			sb.WriteString("─")
		}
	}
	sb.WriteString(fmt.Sprintf(" %d  [%d]", session.SliderMax, e.slider))
	if e.mode == ModeEntry {
		sb.WriteString("  value: " + e.entry + "_")
	}
	return sb.String()
}

func (e Editor) View() string {
	output := "CRAFTOMATION101 EDITOR\n\n"
	output += "Save folder: " + e.dir + "\n\n"
	output += e.viewFiles() + "\n"

	output += "Edit progressionPoints\n"
	switch {
	case e.loading || e.saving:
		output += "Working...\n"
	case e.session.Loaded():
		output += fmt.Sprintf("Current Value: %.4f\n", e.session.Field.Value)
		output += e.viewSlider() + "\n"
	default:
		output += "Current Value: —\n"
	}

	output += "\n↑/↓ select • enter load • / search • ctrl+r refresh • ←/→ adjust • 0-9 type • s save • r reset • q quit\n"
	if e.status != "" {
		output += "\n" + e.status + "\n"
	}
	return output
}
