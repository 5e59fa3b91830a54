package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// InvalidValueError is returned when a wire value is not a member of its enumeration
type InvalidValueError struct {
	Enum  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Enum, e.Value)
}

// nameOf returns the canonical name for code i, or Unknown(i) when i is out of range
func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return names[i]
}

// decodeName reads a JSON string (or integer code) and resolves it against the
// canonical names plus any accepted aliases. Matching is case-insensitive.
func decodeName(data []byte, enumName string, names []string, aliases map[string]int) (int, error) {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return 0, err
		}
		if i < 0 || i >= len(names) {
			return 0, &InvalidValueError{Enum: enumName, Value: fmt.Sprint(i)}
		}
		return i, nil
	}
	return lookupName(str, enumName, names, aliases)
}

func lookupName(str, enumName string, names []string, aliases map[string]int) (int, error) {
	key := strings.TrimSpace(str)
	for i, name := range names {
		if strings.EqualFold(name, key) {
			return i, nil
		}
	}
	for alias, i := range aliases {
		if strings.EqualFold(alias, key) {
			return i, nil
		}
	}
	return 0, &InvalidValueError{Enum: enumName, Value: str}
}

// scanCode converts a database integer into an enumeration index
func scanCode(value interface{}, enumName string, size int) (int, error) {
	var code int64
	switch v := value.(type) {
	case int64:
		code = v
	case int32:
		code = int64(v)
	case int:
		code = int64(v)
	default:
		return 0, fmt.Errorf("cannot scan %T into %s", value, enumName)
	}
	if code < 0 || code >= int64(size) {
		return 0, &InvalidValueError{Enum: enumName, Value: fmt.Sprint(code)}
	}
	return int(code), nil
}
