package validation

import (
	"fmt"
	"strconv"
)

// StateFrom converts decoded JSON scalars into a State. A json.Number keeps its
// literal digits and a float64 its shortest decimal form. true becomes "on"
// like a checked checkbox, and false or null become "". Nested values are
// rejected.
func StateFrom(raw map[string]any) (State, error) {
	st := make(State, len(raw))
	for k, v := range raw {
		s, err := scalar(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		st[k] = s
	}
	return st, nil
}

func scalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	case bool:
		if v {
			return "on", nil
		}
		return "", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer: // json.Number
		return v.String(), nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}
