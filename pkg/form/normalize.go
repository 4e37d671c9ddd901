package form

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/goliatone/go-jsonform/pkg/model"
)

// normalize coerces v into the shape stored for kind: bool for checkboxes,
// []string for multiselects and string for everything else. Numbers become
// the text a user would have typed. Every kind is listed so adding one means
// revisiting this switch.
func normalize(kind model.FieldKind, v any) (any, error) {
	switch kind {
	case model.KindCheckbox:
		return normalizeBool(v)
	case model.KindMultiselect:
		return normalizeList(v)
	case model.KindText, model.KindEmail, model.KindPassword, model.KindNumber,
		model.KindDate, model.KindTextarea, model.KindSelect, model.KindRadio:
		return normalizeScalar(v)
	default:
		return normalizeScalar(v)
	}
}

func normalizeBool(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return nil, fmt.Errorf("%w: checkbox expects a boolean, got %q", ErrValueShape, t)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: checkbox expects a boolean, got %T", ErrValueShape, v)
	}
}

func normalizeList(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return append([]string{}, t...), nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: multiselect item %d is %T, want string", ErrValueShape, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: multiselect expects a list of strings, got %T", ErrValueShape, v)
	}
}

func normalizeScalar(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		return formatNumber(t), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(t), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case json.Number:
		return t.String(), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return nil, fmt.Errorf("%w: expected text, got %T", ErrValueShape, v)
	}
}

// formatNumber renders n with the shortest representation that round-trips.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// cloneValue copies list values so callers never alias form state.
func cloneValue(v any) any {
	if list, ok := v.([]string); ok {
		return append([]string{}, list...)
	}
	return v
}
