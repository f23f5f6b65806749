package agent

import (
	"fmt"
	"math"
	"strings"
)

// reply wraps the lenient JSON object an extraction model returned.
// Models hand back strings, numbers, booleans and nulls interchangeably;
// every accessor folds to the partial-mapping string form.
type reply map[string]interface{}

func (r reply) str(key string) string {
	switch v := r[key].(type) {
	case string:
		if strings.EqualFold(strings.TrimSpace(v), "null") {
			return ""
		}
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		if v {
			return "Sim"
		}
		return "Não"
	default:
		return ""
	}
}

// boolVal folds booleans and their common string spellings.
func (r reply) boolVal(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "sim", "yes", "1":
			return true
		}
	}
	return false
}

// intStr folds an integer-valued reply to its decimal string, "" when
// absent or unparseable.
func (r reply) intStr(key string) string {
	switch v := r[key].(type) {
	case float64:
		return fmt.Sprintf("%d", int64(v))
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || strings.EqualFold(trimmed, "null") {
			return ""
		}
		return trimmed
	default:
		return ""
	}
}
