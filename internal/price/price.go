// Package price converts native-asset amounts between human-readable decimal strings and
// minor units (wei). Both directions are exact; amounts that cannot be represented in
// minor units are rejected rather than rounded.
package price

import (
	"fmt"
	"math/big"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-market/internal/domain"
)

var (
	humanPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	minorPattern = regexp.MustCompile(`^[0-9]+$`)
)

// ToMinorUnits converts a human decimal string such as "2.5" into a minor-unit integer string
func ToMinorUnits(human string) (string, error) {
	v, err := ParseHuman(human)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// ToHuman converts a minor-unit integer string into its canonical human decimal string.
// The canonical form has no trailing fractional zeros and no trailing dot.
func ToHuman(minor string) (string, error) {
	v, err := ParseMinor(minor)
	if err != nil {
		return "", err
	}
	return FormatMinor(v), nil
}

// ParseHuman parses a human decimal string into minor units
func ParseHuman(human string) (*big.Int, error) {
	if !humanPattern.MatchString(human) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, human)
	}

	d, err := decimal.NewFromString(human)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, human)
	}

	shifted := d.Shift(domain.NATIVE_DECIMALS)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("%w: more than %d fractional digits in %q", domain.ErrInvalidAmount, domain.NATIVE_DECIMALS, human)
	}

	return shifted.BigInt(), nil
}

// ParseMinor parses a minor-unit integer string
func ParseMinor(minor string) (*big.Int, error) {
	if !minorPattern.MatchString(minor) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, minor)
	}

	v, ok := new(big.Int).SetString(minor, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, minor)
	}
	return v, nil
}

// FormatMinor renders minor units as a canonical human decimal string
func FormatMinor(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -domain.NATIVE_DECIMALS).String()
}

// Canonical returns the canonical form of a human decimal string, e.g. "2.50" becomes "2.5"
func Canonical(human string) (string, error) {
	v, err := ParseHuman(human)
	if err != nil {
		return "", err
	}
	return FormatMinor(v), nil
}
