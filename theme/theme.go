// Package theme holds the named page palettes.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default is the palette applied without a body class.
const Default = "default"

// Theme is one named palette.
type Theme struct {
	Name  string // Also the CSS class
	Label string // Display name
	From  string // Gradient start, #rrggbb
	To    string // Gradient end, #rrggbb
	Text  string // Foreground, #rrggbb
}

// Gradient returns the CSS background of the theme.
func (t Theme) Gradient() string {
	return "linear-gradient(135deg, " + t.From + ", " + t.To + ")"
}

type tomlFile struct {
	Themes []tomlTheme `toml:"theme"`
}

type tomlTheme struct {
	Name  string `toml:"name"`
	Label string `toml:"label"`
	From  string `toml:"from"`
	To    string `toml:"to"`
	Text  string `toml:"text"`
}

//go:embed themes.toml
var builtin []byte

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ErrInvalid reports a malformed palette definition.
var ErrInvalid = errors.New("theme: invalid palette")

// Set is an ordered collection of palettes.
type Set struct {
	themes []Theme
	index  map[string]int
}

// Builtin returns the embedded palettes. It panics if they fail to load.
func Builtin() *Set {
	s, err := Load(builtin)
	if err != nil {
		panic(err)
	}
	return s
}

// Load parses palettes from TOML.
func Load(data []byte) (*Set, error) {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: parse TOML: %w", err)
	}
	s := &Set{index: make(map[string]int, len(f.Themes))}
	for _, tt := range f.Themes {
		t := Theme(tt)
		if err := validate(t); err != nil {
			return nil, err
		}
		if _, dup := s.index[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalid, t.Name)
		}
		s.index[t.Name] = len(s.themes)
		s.themes = append(s.themes, t)
	}
	if _, ok := s.index[Default]; !ok {
		return nil, fmt.Errorf("%w: no %q palette", ErrInvalid, Default)
	}
	return s, nil
}

func validate(t Theme) error {
	if t.Name == "" || strings.ContainsAny(t.Name, " \t") {
		return fmt.Errorf("%w: bad name %q", ErrInvalid, t.Name)
	}
	for _, c := range []string{t.From, t.To, t.Text} {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("%w: %s: bad color %q", ErrInvalid, t.Name, c)
		}
	}
	return nil
}

// All returns the palettes in file order.
func (s *Set) All() []Theme {
	return append([]Theme(nil), s.themes...)
}

// CSS returns the body rules that select each non-default palette by class.
func (s *Set) CSS() string {
	var b strings.Builder
	for _, t := range s.themes {
		if t.Name == Default {
			continue
		}
		fmt.Fprintf(&b, "body.%s { background: %s; color: %s; }\n", t.Name, t.Gradient(), t.Text)
	}
	return b.String()
}

// Get returns the named palette, falling back to Default.
func (s *Set) Get(name string) Theme {
	if i, ok := s.index[name]; ok {
		return s.themes[i]
	}
	return s.themes[s.index[Default]]
}

// Has reports whether name is a known palette.
func (s *Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// ApplyClass returns classes with every palette class removed and the class
// of name added, unless name is Default. Unknown names select Default.
// Other classes keep their order.
func (s *Set) ApplyClass(classes []string, name string) []string {
	out := make([]string, 0, len(classes)+1)
	for _, c := range classes {
		if c == Default || s.Has(c) {
			continue
		}
		out = append(out, c)
	}
	if name != Default && s.Has(name) {
		out = append(out, name)
	}
	return out
}

// Current returns the palette selected by a class list.
func (s *Set) Current(classes []string) Theme {
	for _, c := range classes {
		if c != Default && s.Has(c) {
			return s.Get(c)
		}
	}
	return s.Get(Default)
}

// RGBA parses a #rrggbb color.
func RGBA(hex string) (color.NRGBA, error) {
	if !hexColor.MatchString(hex) {
		return color.NRGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalid, hex)
	}
	v, _ := strconv.ParseUint(hex[1:], 16, 32)
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
