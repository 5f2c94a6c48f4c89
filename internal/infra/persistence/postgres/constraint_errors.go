package postgres

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

// constraintNamePattern matches the quoted constraint name in PostgreSQL
// violation messages, e.g. `violates unique constraint "customer_profiles_email_key"`.
var constraintNamePattern = regexp.MustCompile(`constraint "([^"]+)"`)

// extractConstraintName pulls the violated constraint's name out of a
// PostgreSQL error message. Returns fallback when the message carries none.
func extractConstraintName(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	if match := constraintNamePattern.FindStringSubmatch(err.Error()); len(match) == 2 {
		return match[1]
	}

	return fallback
}
