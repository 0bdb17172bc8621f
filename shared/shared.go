package shared

import (
	"fmt"
	"hotel/shared/dto"
	"hotel/shared/failure"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"
)

// ParseID converts a path or menu value into a positive identifier.
func ParseID(value, name string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Debug().Err(err).Str("field", name).Msg("failed to parse identifier")

		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be a number", name)) //nolint:wrapcheck
	}

	if id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be greater than 0", name)) //nolint:wrapcheck
	}

	return id, nil
}

// TransformFields converts the non-zero db tagged fields of a struct into a map of updated fields.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterAll joins equality filters on the same table with AND.
func FilterAll(table string, fields map[string]any) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		group.Filters = append(group.Filters, dto.Filter{
			Field:    key,
			Value:    fields[key],
			Operator: dto.FilterOperatorEq,
			Table:    table,
		})
	}

	return group
}
