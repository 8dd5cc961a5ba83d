package domain

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// MaxEmojiCount is the maximum number of emoji (grapheme clusters) allowed.
const MaxEmojiCount = 10

// Emoji is a short run of emoji characters used as a visual marker.
type Emoji struct {
	value string
}

// NewEmoji validates that raw contains only emoji.
func NewEmoji(raw string) Result[Emoji] {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Fail[Emoji]("Emoji is required")
	}

	count := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if !isEmojiCluster(g.Runes()) {
			return Fail[Emoji]("Only emoji characters are allowed")
		}
		count++
	}
	if count > MaxEmojiCount {
		return Fail[Emoji]("Too many emoji")
	}
	return Ok(Emoji{value: s})
}

func (e Emoji) Value() string           { return e.value }
func (e Emoji) Equals(other Emoji) bool { return e.value == other.value }

const (
	zeroWidthJoiner   = 0x200D
	combiningKeycap   = 0x20E3
	variationSelector = 0xFE0F
)

// pictographic covers the code points that may start or join an emoji.
// Regional indicators and skin-tone modifiers fall inside the 1F000 block and
// are restricted in isEmojiCluster.
var pictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00A9, Hi: 0x00A9, Stride: 1},
		{Lo: 0x00AE, Hi: 0x00AE, Stride: 1},
		{Lo: 0x203C, Hi: 0x203C, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x2199, Stride: 1},
		{Lo: 0x21A9, Hi: 0x21AA, Stride: 1},
		{Lo: 0x231A, Hi: 0x231B, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23CF, Hi: 0x23CF, Stride: 1},
		{Lo: 0x23E9, Hi: 0x23F3, Stride: 1},
		{Lo: 0x23F8, Hi: 0x23FA, Stride: 1},
		{Lo: 0x24C2, Hi: 0x24C2, Stride: 1},
		{Lo: 0x25AA, Hi: 0x25AB, Stride: 1},
		{Lo: 0x25B6, Hi: 0x25B6, Stride: 1},
		{Lo: 0x25C0, Hi: 0x25C0, Stride: 1},
		{Lo: 0x25FB, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2B05, Hi: 0x2B07, Stride: 1},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B50, Stride: 1},
		{Lo: 0x2B55, Hi: 0x2B55, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303D, Hi: 0x303D, Stride: 1},
		{Lo: 0x3297, Hi: 0x3297, Stride: 1},
		{Lo: 0x3299, Hi: 0x3299, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1FAFF, Stride: 1},
	},
}

// emojiPresentation lists the pictographs below the 1F000 block that render as
// emoji by default. The rest of that range (©, ™, arrows, ...) is text unless
// followed by U+FE0F.
var emojiPresentation = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x231A, Hi: 0x231B, Stride: 1},
		{Lo: 0x23E9, Hi: 0x23EC, Stride: 1},
		{Lo: 0x23F0, Hi: 0x23F0, Stride: 1},
		{Lo: 0x23F3, Hi: 0x23F3, Stride: 1},
		{Lo: 0x25FD, Hi: 0x25FE, Stride: 1},
		{Lo: 0x2614, Hi: 0x2615, Stride: 1},
		{Lo: 0x2648, Hi: 0x2653, Stride: 1},
		{Lo: 0x267F, Hi: 0x267F, Stride: 1},
		{Lo: 0x2693, Hi: 0x2693, Stride: 1},
		{Lo: 0x26A1, Hi: 0x26A1, Stride: 1},
		{Lo: 0x26AA, Hi: 0x26AB, Stride: 1},
		{Lo: 0x26BD, Hi: 0x26BE, Stride: 1},
		{Lo: 0x26C4, Hi: 0x26C5, Stride: 1},
		{Lo: 0x26CE, Hi: 0x26CE, Stride: 1},
		{Lo: 0x26D4, Hi: 0x26D4, Stride: 1},
		{Lo: 0x26EA, Hi: 0x26EA, Stride: 1},
		{Lo: 0x26F2, Hi: 0x26F3, Stride: 1},
		{Lo: 0x26F5, Hi: 0x26F5, Stride: 1},
		{Lo: 0x26FA, Hi: 0x26FA, Stride: 1},
		{Lo: 0x26FD, Hi: 0x26FD, Stride: 1},
		{Lo: 0x2705, Hi: 0x2705, Stride: 1},
		{Lo: 0x270A, Hi: 0x270B, Stride: 1},
		{Lo: 0x2728, Hi: 0x2728, Stride: 1},
		{Lo: 0x274C, Hi: 0x274C, Stride: 1},
		{Lo: 0x274E, Hi: 0x274E, Stride: 1},
		{Lo: 0x2753, Hi: 0x2755, Stride: 1},
		{Lo: 0x2757, Hi: 0x2757, Stride: 1},
		{Lo: 0x2795, Hi: 0x2797, Stride: 1},
		{Lo: 0x27B0, Hi: 0x27B0, Stride: 1},
		{Lo: 0x27BF, Hi: 0x27BF, Stride: 1},
		{Lo: 0x2B1B, Hi: 0x2B1C, Stride: 1},
		{Lo: 0x2B50, Hi: 0x2B50, Stride: 1},
		{Lo: 0x2B55, Hi: 0x2B55, Stride: 1},
	},
}

func isRegionalIndicator(r rune) bool { return r >= 0x1F1E6 && r <= 0x1F1FF }
func isSkinToneModifier(r rune) bool  { return r >= 0x1F3FB && r <= 0x1F3FF }

// isEmojiCluster reports whether one grapheme cluster is an emoji: a
// pictographic base optionally extended with selectors, modifiers, tags and
// ZWJ-joined pictographs, or a keycap sequence such as 1️⃣.
func isEmojiCluster(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	base := runes[0]
	switch {
	case isRegionalIndicator(base):
		// Flags are exactly two regional indicators.
		return len(runes) == 2 && isRegionalIndicator(runes[1])
	case isSkinToneModifier(base):
		return false
	case isKeycapBase(base):
		if !containsRune(runes[1:], combiningKeycap) {
			return false
		}
	case base < 0x1F000 && unicode.Is(pictographic, base):
		if !unicode.Is(emojiPresentation, base) && !containsRune(runes[1:], variationSelector) {
			return false
		}
	case unicode.Is(pictographic, base):
	default:
		return false
	}
	for _, r := range runes[1:] {
		if !isEmojiContinuation(r) {
			return false
		}
	}
	return true
}

func isKeycapBase(r rune) bool {
	return r == '#' || r == '*' || (r >= '0' && r <= '9')
}

func isEmojiContinuation(r rune) bool {
	switch {
	case r == zeroWidthJoiner, r == combiningKeycap, r == variationSelector:
		return true
	case r >= 0xE0020 && r <= 0xE007F: // tag sequences (subdivision flags)
		return true
	default:
		return unicode.Is(pictographic, r)
	}
}

func containsRune(runes []rune, target rune) bool {
	for _, r := range runes {
		if r == target {
			return true
		}
	}
	return false
}
