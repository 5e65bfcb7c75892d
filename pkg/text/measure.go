// Package text provides a font-aware Measurer backed by fogleman/gg.
// Measurement is synchronous and pure: the same text and hint always
// produce the same dimensions, whether the font loaded or the estimate
// fallback is in use.
package text

import (
	"strings"

	"github.com/fogleman/gg"
)

// DefaultFontSize is used when a node's style does not set one.
const DefaultFontSize = 16.0

// lineSpacing matches the renderer's wrapped-text spacing.
const lineSpacing = 1.2

// FontMeasurer measures text with a TTF/OTF font at a fixed size. When
// the font file cannot be loaded it falls back to a deterministic
// estimate (0.6em advance per byte, 1.2em line height), so headless
// environments keep working.
type FontMeasurer struct {
	fontPath string
	fontSize float64
}

// NewFontMeasurer creates a measurer for the given font file and size.
// size <= 0 uses DefaultFontSize.
func NewFontMeasurer(fontPath string, size float64) *FontMeasurer {
	if size <= 0 {
		size = DefaultFontSize
	}
	return &FontMeasurer{fontPath: fontPath, fontSize: size}
}

// Measure returns the natural footprint of the text, wrapping against
// maxWidth when the single-line width exceeds it. maxWidth <= 0 means
// unbounded.
func (m *FontMeasurer) Measure(text string, maxWidth float64) (float64, float64) {
	if text == "" {
		return 0, 0
	}

	dc := gg.NewContext(1, 1)
	if err := dc.LoadFontFace(m.fontPath, m.fontSize); err != nil {
		return m.estimate(text, maxWidth)
	}

	w, h := dc.MeasureString(text)
	if maxWidth <= 0 || w <= maxWidth {
		return w, h
	}

	lines := dc.WordWrap(text, maxWidth)
	if len(lines) == 0 {
		return w, h
	}
	var widest float64
	for _, line := range lines {
		lw, _ := dc.MeasureString(line)
		if lw > widest {
			widest = lw
		}
	}
	return widest, float64(len(lines)) * h * lineSpacing
}

// estimate approximates metrics without a font: 0.6em per character,
// 1.2em per line, greedy word wrap against maxWidth.
func (m *FontMeasurer) estimate(text string, maxWidth float64) (float64, float64) {
	advance := m.fontSize * 0.6
	lineH := m.fontSize * lineSpacing

	w := float64(len(text)) * advance
	if maxWidth <= 0 || w <= maxWidth {
		return w, lineH
	}

	var widest float64
	lines := 1
	lineW := 0.0
	for _, word := range strings.Fields(text) {
		wordW := float64(len(word)) * advance
		next := wordW
		if lineW > 0 {
			next = lineW + advance + wordW
		}
		if next > maxWidth && lineW > 0 {
			lines++
			lineW = wordW
		} else {
			lineW = next
		}
		if lineW > widest {
			widest = lineW
		}
	}
	return widest, float64(lines) * lineH
}
