package mapping

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hash-mapper/internal/common"
	"hash-mapper/mapper"
)

// ErrConversion is returned by the builtin converting filters when a value
// has no sensible conversion.
var ErrConversion = errors.New("cannot convert value")

// Builtin filter names.
const (
	FilterToString = "to_s"
	FilterToInt    = "to_i"
	FilterToFloat  = "to_f"
	FilterToBool   = "to_bool"
	FilterTrim     = "trim"
	FilterUpcase   = "upcase"
	FilterDowncase = "downcase"
	FilterTitle    = "title"
)

// Builtin hook names.
const (
	HookCompact      = "compact"
	HookCompactInput = "compact_input"
	HookToPairs      = "to_pairs"
	HookMergeOptions = "merge_options"
)

func registerBuiltins(r *Registry) {
	r.RegisterFilter(FilterToString, mapper.FilterFunc(toString))
	r.RegisterFilter(FilterToInt, mapper.FilterFunc(toInt))
	r.RegisterFilter(FilterToFloat, mapper.FilterFunc(toFloat))
	r.RegisterFilter(FilterToBool, mapper.FilterFunc(toBool))
	r.RegisterFilter(FilterTrim, stringFilter(strings.TrimSpace))
	// Casers keep state between calls, so every call gets its own.
	r.RegisterFilter(FilterUpcase, stringFilter(func(s string) string {
		return cases.Upper(language.Und).String(s)
	}))
	r.RegisterFilter(FilterDowncase, stringFilter(func(s string) string {
		return cases.Lower(language.Und).String(s)
	}))
	r.RegisterFilter(FilterTitle, stringFilter(func(s string) string {
		return cases.Title(language.Und).String(s)
	}))

	after := []mapper.HookKind{mapper.AfterNormalize, mapper.AfterDenormalize}
	before := []mapper.HookKind{mapper.BeforeNormalize, mapper.BeforeDenormalize}

	r.RegisterHook(HookCompact, compactOutput, after...)
	r.RegisterHook(HookCompactInput, compactInput, before...)
	r.RegisterHook(HookToPairs, toPairs, after...)
	r.RegisterHook(HookMergeOptions, mergeOptions, after...)
}

// stringFilter applies fn to strings and passes other values through.
func stringFilter(fn func(string) string) mapper.Filter {
	return mapper.FilterFunc(func(value any) (any, error) {
		if s, ok := value.(string); ok {
			return fn(s), nil
		}

		return value, nil
	})
}

func toString(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case []byte:
		return string(v), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func toInt(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		s := strings.TrimSpace(v)

		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return int(i), nil
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q to integer", ErrConversion, v)
		}

		return floatToInt(f)
	case bool:
		if v {
			return 1, nil
		}

		return 0, nil
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	}

	if i, ok := integer(value); ok {
		return i, nil
	}

	return nil, fmt.Errorf("%w %T to integer", ErrConversion, value)
}

// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
const twoTo63 = float64(1 << 63)

func floatToInt(f float64) (any, error) {
	if math.IsNaN(f) || !common.IsInRange(-twoTo63, f, twoTo63) {
		return nil, fmt.Errorf("%w %v to integer", ErrConversion, f)
	}

	return int(math.Trunc(f)), nil
}

// integer converts any Go integer kind to int.
func integer(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		if v > math.MaxInt64 {
			return 0, false
		}

		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}

		return int(v), true
	default:
		return 0, false
	}
}

func toFloat(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q to float", ErrConversion, v)
		}

		return f, nil
	}

	if i, ok := integer(value); ok {
		return float64(i), nil
	}

	return nil, fmt.Errorf("%w %T to float", ErrConversion, value)
}

func toBool(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "y", "1", "t":
			return true, nil
		case "false", "no", "off", "n", "0", "f", "":
			return false, nil
		default:
			return nil, fmt.Errorf("%w %q to bool", ErrConversion, v)
		}
	case float64:
		return v != 0, nil
	case float32:
		return v != 0, nil
	}

	if i, ok := integer(value); ok {
		return i != 0, nil
	}

	return nil, fmt.Errorf("%w %T to bool", ErrConversion, value)
}

// compactOutput drops nil entries from a map result.
func compactOutput(_, output any, _ mapper.Options) (any, error) {
	return compact(output), nil
}

// compactInput drops nil entries from a map input. The input itself is
// left untouched.
func compactInput(input, _ any, _ mapper.Options) (any, error) {
	return compact(input), nil
}

func compact(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}

	out := make(map[string]any, len(m))

	for k, val := range m {
		if val != nil {
			out[k] = val
		}
	}

	return out
}

// toPairs turns a map result into a list of [key, value] pairs sorted by key.
func toPairs(_, output any, _ mapper.Options) (any, error) {
	m, ok := output.(map[string]any)
	if !ok {
		return output, nil
	}

	pairs := make([]any, 0, len(m))
	for _, k := range common.SortedKeys(m) {
		pairs = append(pairs, []any{k, m[k]})
	}

	return pairs, nil
}

// mergeOptions copies call options into a map result without replacing
// keys the rules already wrote.
func mergeOptions(_, output any, opts mapper.Options) (any, error) {
	m, ok := output.(map[string]any)
	if !ok || len(opts) == 0 {
		return output, nil
	}

	for k, v := range opts {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}

	return m, nil
}
