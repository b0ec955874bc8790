package domain

import (
	"fmt"
	"math"
	"strings"
)

// SizeClass is the capacity pool a pet draws from
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
)

// IsValid returns true for a known size class
func (s SizeClass) IsValid() bool {
	return s == SizeSmall || s == SizeMedium
}

// ParseSizeClass parses a size class, case-insensitive
func ParseSizeClass(s string) (SizeClass, error) {
	size := SizeClass(strings.ToLower(strings.TrimSpace(s)))
	if !size.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return size, nil
}

// RoundWeight rounds a weight to the stored precision of 0.01 kg.
// Weights are rounded before classification so the stored value and its size agree.
func RoundWeight(weight float64) float64 {
	return math.Round(weight*100) / 100
}

// Classify maps a weight in kilograms to a size class.
// (0, 7] is small, (7, 15] is medium, anything else is rejected.
// The negated comparison also rejects NaN.
func Classify(weight float64) (SizeClass, error) {
	if !(weight > 0) || weight > HardWeightLimit {
		return "", fmt.Errorf("%w: %v kg (allowed 0 < weight <= %v)", ErrInvalidWeight, weight, HardWeightLimit)
	}
	if weight <= SmallMaxWeight {
		return SizeSmall, nil
	}
	return SizeMedium, nil
}

// ValidateDeclaredSize checks that a declared size class agrees with the weight
func ValidateDeclaredSize(declared SizeClass, weight float64) error {
	actual, err := Classify(weight)
	if err != nil {
		return err
	}
	if !declared.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSize, declared)
	}
	if declared != actual {
		return fmt.Errorf("%w: declared %s, weight %v kg is %s", ErrSizeMismatch, declared, weight, actual)
	}
	return nil
}
