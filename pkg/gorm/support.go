package gorm

import (
	"errors"
	"strings"

	stdgorm "gorm.io/gorm"
)

func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(err error) bool {
	return err != nil && !errors.Is(err, stdgorm.ErrRecordNotFound)
}

func HasDbIssues(err error) bool {
	return err != nil
}

// IsDuplicatedKey reports whether the error comes from a unique constraint
// violation. GORM's translated error covers postgres; the string checks cover
// drivers that bypass translation (sqlite in tests, raw SQLSTATE messages).
func IsDuplicatedKey(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, stdgorm.ErrDuplicatedKey) {
		return true
	}

	message := err.Error()

	return strings.Contains(message, "SQLSTATE 23505") ||
		strings.Contains(message, "UNIQUE constraint failed") ||
		strings.Contains(message, "duplicate key value")
}
