package style

import (
	"fmt"
	"strconv"
	"strings"
)

// PatternPeriod is the number of bits in a Pattern.
const PatternPeriod = 16

// Pattern is a 16-bit texture. Bit 15 is the first position of the period.
type Pattern uint16

// Bit reports whether position i of the period is set, most significant bit
// first. i is reduced modulo PatternPeriod.
func (p Pattern) Bit(i int) bool {
	i %= PatternPeriod
	if i < 0 {
		i += PatternPeriod
	}
	return p&(1<<uint(PatternPeriod-1-i)) != 0
}

func (p Pattern) String() string {
	var b strings.Builder
	for i := 0; i < PatternPeriod; i++ {
		if p.Bit(i) {
			b.WriteByte('X')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

var DefaultPatterns = struct {
	Solid    Pattern
	Half     Pattern
	Quarter  Pattern
	Stripes2 Pattern
	Stripes4 Pattern
	Stripes8 Pattern
	Dots     Pattern
}{
	Solid:    PatternFromTemplate("XXXXXXXXXXXXXXXX"),
	Half:     PatternFromTemplate("X-X-X-X-X-X-X-X-"),
	Quarter:  PatternFromTemplate("X---X---X---X---"),
	Stripes2: PatternFromTemplate("XX--XX--XX--XX--"),
	Stripes4: PatternFromTemplate("XXXX----XXXX----"),
	Stripes8: PatternFromTemplate("XXXXXXXX--------"),
	Dots:     PatternFromTemplate("X-------X-------"),
}

// PatternFromTemplate builds a Pattern from a 16 character template, where
// '_', '-', '0' and ' ' are clear bits and anything else is a set bit.
// Whitespace around the template is ignored. It panics on a malformed
// template; use ParsePattern for untrusted input.
func PatternFromTemplate(s string) Pattern {
	p, err := fromTemplate(s)
	if err != nil {
		panic(err)
	}
	return p
}

func fromTemplate(s string) (Pattern, error) {
	line := []rune(strings.TrimSpace(s))
	if len(line) != PatternPeriod {
		return 0, fmt.Errorf("invalid pattern template width: %d is not %d", len(line), PatternPeriod)
	}

	var p Pattern
	for i, r := range line {
		if r != '_' && r != '-' && r != '0' && r != ' ' {
			p |= 1 << uint(PatternPeriod-1-i)
		}
	}
	return p, nil
}

// ParsePattern accepts "0x"-prefixed hex, "0b"-prefixed binary, a plain
// decimal number, or a 16 character template.
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return 0, nil
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid pattern %q: %w", s, err)
		}
		return Pattern(v), nil
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		v, err := strconv.ParseUint(s[2:], 2, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid pattern %q: %w", s, err)
		}
		return Pattern(v), nil
	case len(s) == PatternPeriod:
		return fromTemplate(s)
	}

	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid pattern %q: %w", s, err)
	}
	return Pattern(v), nil
}
