package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"warehouse/internal/pkg/errs"
)

// MinCodeLength is the minimum length of a valid product code: one letter
// plus at least one more character.
const MinCodeLength = 2

// ProductCode is a validated, normalized product identifier.
// The zero value is invalid; use NewProductCode.
type ProductCode struct {
	value string
}

// NewProductCode normalizes raw input (trim, uppercase) and validates the
// format: at least MinCodeLength characters, first character alphabetic.
// The volume suffix is NOT validated; "AB" is a valid code with volume 0.
func NewProductCode(raw string) (ProductCode, error) {
	code := NormalizeCode(raw)

	if len(code) < MinCodeLength {
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause(
			"productCode",
			fmt.Errorf("%q is shorter than %d characters", code, MinCodeLength),
		)
	}

	if first := []rune(code)[0]; !unicode.IsLetter(first) {
		return ProductCode{}, errs.NewValueIsInvalidErrorWithCause(
			"productCode",
			fmt.Errorf("%q does not start with a letter", code),
		)
	}

	return ProductCode{value: code}, nil
}

// String returns the normalized code, e.g. "A3".
func (c ProductCode) String() string {
	return c.value
}

// Volume derives the code's volume from its numeric suffix.
func (c ProductCode) Volume() int {
	return VolumeOf(c.value)
}

// Validate returns an error for the zero value.
func (c ProductCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("ProductCode must be created via NewProductCode")
	}
	return nil
}

// NormalizeCode trims surrounding whitespace and uppercases a raw token.
// It never rejects; format checking belongs to NewProductCode.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// SplitCodes splits a comma-separated list of product codes and normalizes
// every token. Empty tokens are preserved: the add-stock path reports them
// as format rejections while the pack path skips them, so the split itself
// must not decide.
func SplitCodes(raw string) []string {
	parts := strings.Split(raw, ",")
	codes := make([]string, len(parts))
	for i, p := range parts {
		codes[i] = NormalizeCode(p)
	}
	return codes
}

// VolumeOf parses the unsigned decimal suffix of a normalized code
// (everything after the first character). Any parse failure, including a
// missing suffix, yields volume 0.
func VolumeOf(code string) int {
	if len(code) < MinCodeLength {
		return 0
	}
	v, err := strconv.ParseUint(code[1:], 10, 31)
	if err != nil {
		return 0
	}
	return int(v)
}
