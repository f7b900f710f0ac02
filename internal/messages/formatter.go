package messages

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/toyrobot/internal/robot"
)

// Commands is the list shown by the unknownCommand message.
var Commands = []string{"PLACE", "MOVE", "LEFT", "RIGHT", "REPORT"}

// Message keys used outside the robot package.
const (
	KeyDefault        = "default"
	KeyUnknownCommand = "unknownCommand"
	KeyFileNotFound   = "fileNotFound"
	KeyWelcome        = "welcome"
)

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Formatter renders catalog templates.
type Formatter struct {
	templates map[string]string
	subs      map[string]string
}

// New creates a formatter over the default catalog.
// eol is substituted for {eol}.
func New(eol string) *Formatter {
	return NewWithCatalog(MustLoadCatalog(DefaultLocale), eol)
}

// NewWithCatalog creates a formatter over an already parsed catalog.
func NewWithCatalog(catalog *gotext.Po, eol string) *Formatter {
	return &Formatter{
		templates: templates(catalog),
		subs: map[string]string{
			"availableDirections": robot.DirectionNames(),
			"availableCommands":   availableCommands(),
			"ci":                  "(case insensitive, spaces are acceptable instead of commas)",
			"country":             "AU",
			"eol":                 eol,
		},
	}
}

// templates reads every msgstr by msgid. Po.Get treats its argument as a
// format string, so lookups go through the translations directly.
func templates(catalog *gotext.Po) map[string]string {
	all := catalog.GetDomain().GetTranslations()
	out := make(map[string]string, len(all))
	for id, tr := range all {
		if id == "" {
			continue
		}
		out[id] = tr.Get()
	}
	return out
}

// availableCommands renders "PLACE X, Y, F | MOVE | ... | REPORT.".
func availableCommands() string {
	parts := make([]string, len(Commands))
	copy(parts, Commands)
	parts[0] += " X, Y, F"
	return strings.Join(parts, " | ") + "."
}

// Template returns the raw template for key and whether it exists.
func (f *Formatter) Template(key string) (string, bool) {
	tmpl, ok := f.templates[key]
	if !ok || tmpl == key || tmpl == "" {
		return "", false
	}
	return tmpl, true
}

// Format renders key with params. Parameters take precedence over the
// built-in substitutions; unknown placeholders are left as they are.
// An unknown key renders the default message.
func (f *Formatter) Format(key string, params map[string]any) string {
	tmpl, ok := f.Template(key)
	if !ok {
		tmpl, _ = f.Template(KeyDefault)
	}

	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		if v, ok := f.subs[name]; ok {
			return v
		}
		return m
	})
}

// Error renders a robot error through its catalog key.
// Other errors render their own text.
func (f *Formatter) Error(err error) string {
	var rerr *robot.Error
	if errors.As(err, &rerr) {
		return f.Format(rerr.Key, nil)
	}
	return err.Error()
}

// Report renders a robot report.
func (f *Formatter) Report(r robot.Report) string {
	return f.Format(r.Key(), r.Params())
}
