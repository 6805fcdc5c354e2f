package ui

import (
	"os"
	"path/filepath"
	"testing"

	"crafto-editor/save"
	"crafto-editor/save/lbytes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EditorTestSuite struct {
	Dir    string
	Editor Editor
	R      *require.Assertions
	suite.Suite
}

func (suite *EditorTestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Dir = suite.T().TempDir()

	bs := append([]byte("head"), save.Marker...)
	bs = append(bs, lbytes.EncodeValueDouble(6.4)...)
	suite.R.NoError(os.WriteFile(filepath.Join(suite.Dir, "alpha"), bs, 0644))
	suite.R.NoError(os.WriteFile(filepath.Join(suite.Dir, "broken"), []byte("no field here"), 0644))
	suite.R.NoError(os.WriteFile(filepath.Join(suite.Dir, "notes.txt"), []byte{}, 0644))

	suite.Editor = NewEditor(suite.Dir)
	suite.Editor = suite.send(suite.Editor.Init()())
}

func (suite *EditorTestSuite) send(msg tea.Msg) Editor {
	model, _ := suite.Editor.Update(msg)
	suite.Editor = model.(Editor)
	return suite.Editor
}

// press sends one key and, while a load or a save is in flight, runs the
// resulting command so its result reaches the model.
func (suite *EditorTestSuite) press(key tea.KeyMsg) {
	model, cmd := suite.Editor.Update(key)
	suite.Editor = model.(Editor)
	if cmd == nil || !(suite.Editor.loading || suite.Editor.saving) {
		return
	}
	switch msg := cmd().(type) {
	case fieldLoadedMsg, fieldSavedMsg:
		suite.send(msg)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (suite *EditorTestSuite) TestListFiles() {
	suite.R.Equal([]string{"alpha", "broken"}, suite.Editor.visible)
	suite.R.Contains(suite.Editor.View(), "> alpha")
}

func (suite *EditorTestSuite) TestSearch() {
	suite.press(runes("/"))
	suite.press(runes("BRO"))
	suite.R.Equal([]string{"broken"}, suite.Editor.visible)
	suite.R.Contains(suite.Editor.View(), "Search: BRO_")

	suite.press(tea.KeyMsg{Type: tea.KeyEsc})
	suite.R.Equal(ModeBrowse, suite.Editor.mode)
	suite.R.Equal([]string{"alpha", "broken"}, suite.Editor.visible)
}

func (suite *EditorTestSuite) TestLoadAdjustSave() {
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	suite.R.True(suite.Editor.session.Loaded())
	suite.R.Equal(6, suite.Editor.slider)
	suite.R.Contains(suite.Editor.View(), "Current Value: 6.4000")
	suite.R.Contains(suite.Editor.status, "Loaded 'alpha'")

	suite.press(tea.KeyMsg{Type: tea.KeyRight})
	suite.press(tea.KeyMsg{Type: tea.KeyRight})
	suite.R.Equal(8, suite.Editor.slider)

	suite.press(runes("s"))
	suite.R.False(suite.Editor.saving)
	suite.R.Equal(8.0, suite.Editor.session.Field.Value)

	field, err := save.ReadFile(filepath.Join(suite.Dir, "alpha"))
	suite.R.NoError(err)
	suite.R.Equal(8.0, field.Value)
}

func (suite *EditorTestSuite) TestEntryAndReset() {
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})

	suite.press(runes("1"))
	suite.press(runes("5"))
	suite.R.Equal(ModeEntry, suite.Editor.mode)
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	suite.R.Equal(15, suite.Editor.slider)

	suite.press(runes("9"))
	suite.press(runes("9"))
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	suite.R.Equal(15, suite.Editor.slider)

	suite.press(runes("r"))
	suite.R.Equal(6, suite.Editor.slider)
}

func (suite *EditorTestSuite) TestSliderBounds() {
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 30; i++ {
		suite.press(tea.KeyMsg{Type: tea.KeyLeft})
	}
	suite.R.Equal(1, suite.Editor.slider)
	for i := 0; i < 30; i++ {
		suite.press(tea.KeyMsg{Type: tea.KeyRight})
	}
	suite.R.Equal(20, suite.Editor.slider)
}

func (suite *EditorTestSuite) TestLoadNotFound() {
	suite.press(tea.KeyMsg{Type: tea.KeyDown})
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	suite.R.False(suite.Editor.session.Loaded())
	suite.R.True(suite.Editor.isError)
	suite.R.Equal("ERROR: "+save.ErrNotFound.Error(), suite.Editor.status)

	// controls stay disabled
	suite.press(tea.KeyMsg{Type: tea.KeyRight})
	suite.R.Equal(1, suite.Editor.slider)
	suite.press(runes("s"))
	suite.R.Equal("No file loaded!", suite.Editor.status)
}

func (suite *EditorTestSuite) TestStaleLoadIgnored() {
	model, loadAlpha := suite.Editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	suite.Editor = model.(Editor)
	suite.press(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = suite.Editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	suite.Editor = model.(Editor)

	suite.send(loadAlpha())
	suite.R.False(suite.Editor.session.Loaded())
	suite.R.Equal(filepath.Join(suite.Dir, "broken"), suite.Editor.session.Path)
}

func (suite *EditorTestSuite) TestSelectWhileSaving() {
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	model, saveAlpha := suite.Editor.Update(runes("s"))
	suite.Editor = model.(Editor)
	suite.R.True(suite.Editor.saving)

	// switching files waits for the save
	suite.press(tea.KeyMsg{Type: tea.KeyDown})
	model, cmd := suite.Editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	suite.Editor = model.(Editor)
	suite.R.Equal("Save in progress", suite.Editor.status)
	suite.R.Equal(filepath.Join(suite.Dir, "alpha"), suite.Editor.session.Path)
	suite.R.NotNil(cmd)

	suite.send(saveAlpha())
	suite.R.False(suite.Editor.saving)
	suite.R.Equal("Saved 6.0000", suite.Editor.status)

	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	suite.R.Equal(filepath.Join(suite.Dir, "broken"), suite.Editor.session.Path)
	suite.R.False(suite.Editor.session.Loaded())
}

func (suite *EditorTestSuite) TestStaleSaveIgnored() {
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	stale := suite.Editor.session
	field := *stale.Field
	stale.Field = &field
	suite.press(tea.KeyMsg{Type: tea.KeyDown})
	suite.press(tea.KeyMsg{Type: tea.KeyEnter})
	suite.R.Equal(filepath.Join(suite.Dir, "broken"), suite.Editor.session.Path)

	suite.send(fieldSavedMsg{session: stale})
	suite.R.Equal(filepath.Join(suite.Dir, "broken"), suite.Editor.session.Path)
	suite.R.False(suite.Editor.session.Loaded())
	suite.R.NotEqual("Saved 6.0000", suite.Editor.status)
}

func (suite *EditorTestSuite) TestClearStatus() {
	suite.press(runes("s"))
	suite.R.NotEmpty(suite.Editor.status)

	suite.send(clearStatusMsg{id: suite.Editor.statusID - 1})
	suite.R.NotEmpty(suite.Editor.status)
	suite.send(clearStatusMsg{id: suite.Editor.statusID})
	suite.R.Empty(suite.Editor.status)
}

func TestEditor(t *testing.T) {
	suite.Run(t, new(EditorTestSuite))
}
