package validation

import (
	"unicode/utf8"

	dErrors "ainadeul/pkg/domain-errors"
)

// MaxBodySize caps JSON request bodies (64 KB).
const MaxBodySize = 64 * 1024

// MaxChildrenPerProfile caps the children a parent can register.
const MaxChildrenPerProfile = 10

// String length limits
const (
	MaxNicknameLength = 30
	MaxEmailLength    = 255
	MaxPasswordLength = 72 // bcrypt ignores everything past 72 bytes
	MaxAddressLength  = 200
	MaxMemoLength     = 1000
)

// CheckSliceCount returns a validation error when count exceeds max.
func CheckSliceCount(field string, count, max int) error {
	if count > max {
		return dErrors.Newf(dErrors.CodeValidation, "too many %s: max %d allowed", field, max)
	}
	return nil
}

// CheckStringLength returns a validation error when value has more than max characters.
// Length is counted in runes so Hangul nicknames get the same allowance as Latin ones.
func CheckStringLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return dErrors.Newf(dErrors.CodeValidation, "%s exceeds max length of %d", field, max)
	}
	return nil
}
