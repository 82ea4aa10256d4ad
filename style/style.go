// Package style holds the border, fill, pattern and colour settings that
// control how a shape is painted.
package style

import "fmt"

type BorderKind uint8

const (
	BorderNone BorderKind = iota
	BorderSolid
	BorderDash
	BorderPattern
)

func (k BorderKind) String() string {
	switch k {
	case BorderNone:
		return "Border(None)"
	case BorderSolid:
		return "Border(Solid)"
	case BorderDash:
		return "Border(Dash)"
	case BorderPattern:
		return "Border(Pattern)"
	}
	return "Border(UNKNOWN)"
}

func (k BorderKind) Valid() bool {
	return k <= BorderPattern
}

type FillKind uint8

const (
	FillNone FillKind = iota
	FillSolid
	FillBars
	FillPattern
)

func (k FillKind) String() string {
	switch k {
	case FillNone:
		return "Fill(None)"
	case FillSolid:
		return "Fill(Solid)"
	case FillBars:
		return "Fill(Bars)"
	case FillPattern:
		return "Fill(Pattern)"
	}
	return "Fill(UNKNOWN)"
}

func (k FillKind) Valid() bool {
	return k <= FillPattern
}

var borderNames = map[string]BorderKind{
	"none":    BorderNone,
	"solid":   BorderSolid,
	"dash":    BorderDash,
	"pattern": BorderPattern,
}

var fillNames = map[string]FillKind{
	"none":    FillNone,
	"solid":   FillSolid,
	"bars":    FillBars,
	"pattern": FillPattern,
}

// ParseBorder maps a scene keyword ("none", "solid", "dash", "pattern") to a
// BorderKind. The empty string is BorderNone.
func ParseBorder(s string) (BorderKind, error) {
	if s == "" {
		return BorderNone, nil
	}
	if k, ok := borderNames[s]; ok {
		return k, nil
	}
	return BorderNone, fmt.Errorf("unknown border kind %q", s)
}

// ParseFill maps a scene keyword ("none", "solid", "bars", "pattern") to a
// FillKind. The empty string is FillNone.
func ParseFill(s string) (FillKind, error) {
	if s == "" {
		return FillNone, nil
	}
	if k, ok := fillNames[s]; ok {
		return k, nil
	}
	return FillNone, fmt.Errorf("unknown fill kind %q", s)
}

// Style selects the border and fill algorithms of a shape.
//
// Wrap switches out-of-bounds pixels from being dropped (the default) to
// being wrapped around the surface, on surfaces that support it. Width is the
// stroke width used for segments and arcs; zero is treated as 1.
type Style struct {
	Border  BorderKind
	Fill    FillKind
	Pattern Pattern
	Wrap    bool
	Width   float64
}

// StrokeWidth returns Width, or 1 when no width was configured.
func (s Style) StrokeWidth() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}
