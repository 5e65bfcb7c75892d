package assets

import (
	"fmt"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
)

// SVG is a vector asset that can be rendered at any size. Its natural
// size comes from the document viewBox.
type SVG struct {
	icon   *oksvg.SvgIcon
	data   string
	width  float64
	height float64
}

// ParseSVG parses SVG markup and reads the natural size from its
// viewBox.
func ParseSVG(data string) (*SVG, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: parse svg: %w", err)
	}
	return &SVG{
		icon:   icon,
		data:   data,
		width:  icon.ViewBox.W,
		height: icon.ViewBox.H,
	}, nil
}

// LoadSVG reads and parses an SVG file.
func LoadSVG(path string) (*SVG, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSVG(string(raw))
}

// Width returns the natural width from the viewBox.
func (s *SVG) Width() float64 {
	return s.width
}

// Height returns the natural height from the viewBox.
func (s *SVG) Height() float64 {
	return s.height
}

// AspectRatio returns width / height.
func (s *SVG) AspectRatio() float64 {
	if s.height == 0 {
		return 0
	}
	return s.width / s.height
}

// Icon returns the parsed document for the renderer.
func (s *SVG) Icon() *oksvg.SvgIcon {
	return s.icon
}

// Data returns the raw markup.
func (s *SVG) Data() string {
	return s.data
}
