package domain

import "strings"

// PaletteColor is one selectable colour of the theme palette.
type PaletteColor struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

var palette = []PaletteColor{
	{Hex: "#277C78", Name: "Green"},
	{Hex: "#F2CDAC", Name: "Yellow"},
	{Hex: "#82C9D7", Name: "Cyan"},
	{Hex: "#626070", Name: "Navy"},
	{Hex: "#C94736", Name: "Red"},
	{Hex: "#826CB0", Name: "Purple"},
	{Hex: "#AF81BA", Name: "Pink"},
	{Hex: "#597C7C", Name: "Turquoise"},
	{Hex: "#93674F", Name: "Brown"},
	{Hex: "#934F6F", Name: "Magenta"},
	{Hex: "#3F82B2", Name: "Blue"},
	{Hex: "#97A0AC", Name: "Navy Grey"},
	{Hex: "#7F9161", Name: "Army Green"},
	{Hex: "#CAB361", Name: "Gold"},
	{Hex: "#BE6C49", Name: "Orange"},
}

var paletteNames = func() map[string]string {
	m := make(map[string]string, len(palette))
	for _, c := range palette {
		m[c.Hex] = c.Name
	}
	return m
}()

// Palette returns a copy of the palette in display order.
func Palette() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// ColorTag is a colour from the palette, stored as upper-case hex.
type ColorTag struct {
	value string
}

// NewColorTag validates raw against the palette.
func NewColorTag(raw string) Result[ColorTag] {
	hex := strings.ToUpper(strings.TrimSpace(raw))
	if hex == "" {
		return Fail[ColorTag]("Color tag is required")
	}
	if _, ok := paletteNames[hex]; !ok {
		return Fail[ColorTag]("Invalid color tag")
	}
	return Ok(ColorTag{value: hex})
}

func (c ColorTag) Value() string              { return c.value }
func (c ColorTag) Equals(other ColorTag) bool { return c.value == other.value }

// ColorName returns the human label of the colour, e.g. "Green".
func (c ColorTag) ColorName() string { return paletteNames[c.value] }
