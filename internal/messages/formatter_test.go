package messages

import (
	"errors"
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/toyrobot/internal/robot"
)

var allKeys = []string{
	"noInitialCommand", "placeRobotFirst", "wrongPlace", "wrondDirection", "noFace",
	"faceNotString", "unknownCommand", "robotPosition", "noNegativeCoordinates",
	"nonIntCoordinates", "wrongMove", "default", "someCombinedMsg", "fileNotFound", "welcome",
}

func TestCatalogHasEveryKey(t *testing.T) {
	f := New("\n")
	for _, key := range allKeys {
		tmpl, ok := f.Template(key)
		assert.True(t, ok, "missing key %q", key)
		assert.NotEmpty(t, tmpl, key)
	}
}

func TestTemplateFromParsedCatalog(t *testing.T) {
	po := gotext.NewPo()
	po.Parse([]byte(`msgid ""
msgstr ""
"Language: en\n"

msgid "default"
msgstr "Oops."

msgid "progress"
msgstr "100% done at {x}%d"

msgid "pending"
msgstr ""
`))
	f := NewWithCatalog(po, "\n")

	tmpl, ok := f.Template("progress")
	require.True(t, ok)
	assert.Equal(t, "100% done at {x}%d", tmpl)
	assert.Equal(t, "100% done at 7%d", f.Format("progress", map[string]any{"x": 7}))

	_, ok = f.Template("pending")
	assert.False(t, ok, "untranslated entry")
	_, ok = f.Template("")
	assert.False(t, ok, "header entry")
	assert.Equal(t, "Oops.", f.Format("pending", nil))
	assert.Equal(t, "Oops.", f.Format("absent", nil))
}

func TestLoadCatalogUnknownLocale(t *testing.T) {
	_, err := LoadCatalog("xx")
	assert.Error(t, err)
}

func TestFormatPosition(t *testing.T) {
	f := New("\n")
	got := f.Format("robotPosition", map[string]any{"x": 1, "y": 2, "f": "SOUTH"})
	assert.Equal(t, "Robot's position is: 1, 2, SOUTH", got)
}

func TestFormatBuiltins(t *testing.T) {
	f := New("\r\n")

	assert.Equal(t,
		"Error! No such a direction. Available directions are: NORTH, EAST, SOUTH, WEST",
		f.Format("wrondDirection", nil))
	assert.Equal(t,
		"Error! Command is incorrect or unknown. Available commands are: PLACE X, Y, F | MOVE | LEFT | RIGHT | REPORT.",
		f.Format(KeyUnknownCommand, nil))
	assert.Contains(t, f.Format(KeyWelcome, nil), "Welcome!\r\nTell the Robot")
	assert.Contains(t, f.Format("noInitialCommand", nil), "(case insensitive, spaces are acceptable instead of commas)")
}

func TestFormatParamsOverrideBuiltins(t *testing.T) {
	f := New("\n")
	got := f.Format("someCombinedMsg", map[string]any{"s": "sake", "x": 1, "y": 2, "z": 3})
	assert.Equal(t, "For the sake of testing: PLACE 1, 2, 3 in AU", got)

	got = f.Format("someCombinedMsg", map[string]any{"country": "NZ"})
	assert.Equal(t, "For the {s} of testing: PLACE {x}, {y}, {z} in NZ", got)
}

func TestFormatUnknownKey(t *testing.T) {
	f := New("\n")
	assert.Equal(t, f.Format(KeyDefault, nil), f.Format("noSuchKey", nil))
}

func TestFormatFileNotFound(t *testing.T) {
	f := New("\n")
	got := f.Format(KeyFileNotFound, map[string]any{"fileName": "cmds.txt"})
	assert.Equal(t, "Error! File 'cmds.txt' was not found. Make sure you specified its path correctly.", got)
}

func TestError(t *testing.T) {
	f := New("\n")

	assert.Equal(t, "Warning! You cannot move the robot that way, it can fall.", f.Error(robot.ErrWouldLeaveGrid))
	assert.Equal(t, "Error! FACE is not a string.", f.Error(robot.ErrFacingNotString))
	assert.Equal(t, "boom", f.Error(errors.New("boom")))
}

func TestReport(t *testing.T) {
	f := New("\n")
	r := robot.New(alwaysInside{})

	assert.Equal(t,
		"Nothing to report - the robot is not on the playground yet. Place it first to begin - PLACE X, Y, F.",
		f.Report(r.Report()))

	_, err := r.Place(robot.RawCommand{X: 2, Y: 3, Facing: "south"})
	require.NoError(t, err)
	assert.Equal(t, "Robot's position is: 2, 3, SOUTH", f.Report(r.Report()))
}

type alwaysInside struct{}

func (alwaysInside) Contains(x, y int) bool { return true }
