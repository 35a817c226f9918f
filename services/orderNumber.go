package services

import (
	"strings"

	"github.com/google/uuid"
)

// newOrderNumber builds the public order reference shown to customers,
// e.g. GLZ-9F86D081A2B43C71. The database ID stays internal.
func newOrderNumber() string {
	id := uuid.New()
	return "GLZ-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:16]
}
