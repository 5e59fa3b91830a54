package utils

import (
	"strings"

	"github.com/google/uuid"
)

const leadIDLength = 9

// GenerateLeadID generates a temporary lead id: "L-" followed by 9 lowercase
// alphanumeric characters
func GenerateLeadID() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "L-" + token[:leadIDLength]
}
