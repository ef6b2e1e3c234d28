package gql

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime is the DateTime scalar, always rendered in UTC with nanosecond precision
type DateTime struct {
	time.Time
}

// ImplementsGraphQLType returns the GraphQL type name
func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

// UnmarshalGraphQL accepts RFC3339 strings and unix seconds
func (t *DateTime) UnmarshalGraphQL(input interface{}) error {
	switch input := input.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, input)
		if err != nil {
			return fmt.Errorf("failed to parse DateTime: %w", err)
		}
		t.Time = parsed.UTC()
	case int32:
		t.Time = time.Unix(int64(input), 0).UTC()
	case float64:
		t.Time = time.Unix(int64(input), 0).UTC()
	default:
		return fmt.Errorf("invalid DateTime type: %T", input)
	}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}
