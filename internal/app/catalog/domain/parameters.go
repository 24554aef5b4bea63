package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Parameter names that carry value validation.
const (
	ParameterColor = "Color"
	ParameterEAN   = "Ean"
)

const eanLength = 13

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateEAN13 checks length, digits and the EAN-13 check digit.
func ValidateEAN13(code string) error {
	if len(code) != eanLength {
		return fmt.Errorf("%w: %q has %d characters", ErrInvalidEAN, code, len(code))
	}
	sum := 0
	for i := 0; i < eanLength; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %q contains non-digit characters", ErrInvalidEAN, code)
		}
		if i == eanLength-1 {
			break
		}
		weight := 1
		if i%2 == 1 {
			weight = 3
		}
		sum += int(c-'0') * weight
	}
	check := (10 - sum%10) % 10
	if int(code[eanLength-1]-'0') != check {
		return fmt.Errorf("%w: %q fails checksum", ErrInvalidEAN, code)
	}
	return nil
}

// ColorSet is the set of known color names, loaded once per operation.
type ColorSet map[string]struct{}

// NewColorSet builds a ColorSet; lookups are case-insensitive.
func NewColorSet(names ...string) ColorSet {
	set := make(ColorSet, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	return set
}

// Contains reports whether name is a known color.
func (s ColorSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// ValidateColor accepts #rgb / #rrggbb hex codes and names present in colors.
func ValidateColor(value string, colors ColorSet) error {
	if hexColorPattern.MatchString(value) || colors.Contains(value) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColor, value)
}

// ValidateParameters checks a parameter combination before it becomes a relation hash.
func ValidateParameters(parameters map[string]string, colors ColorSet) error {
	if err := checkHashable(parameters); err != nil {
		return err
	}
	for name, value := range parameters {
		switch NormalizeParameterName(name) {
		case ParameterColor:
			if err := ValidateColor(value, colors); err != nil {
				return err
			}
		case ParameterEAN:
			if err := ValidateEAN13(value); err != nil {
				return err
			}
		}
	}
	return nil
}
