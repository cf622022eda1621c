package shared

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// ConvertStringToID parses a positive integer identifier. Empty, non-numeric
// and non-positive values are reported as not ok.
func ConvertStringToID(value string) (int, bool) {
	if value == "" {
		return 0, false
	}

	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("failed to convert string to id")

		return 0, false
	}

	if id <= 0 {
		return 0, false
	}

	return id, true
}

// TransformFields converts the non-zero fields of a struct into a map keyed by their json names.
func TransformFields(data any) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := 0; index < val.NumField(); index++ {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName, _, _ := strings.Cut(typ.Field(index).Tag.Get("json"), ",")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}
