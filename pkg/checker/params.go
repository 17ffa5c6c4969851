package checker

import (
	"time"
)

// Params carries a check's numeric thresholds and options. Defaults are fixed
// at registration; callers override individual keys per run.
type Params map[string]any

// Merged returns a copy of p with overrides applied on top.
func (p Params) Merged(overrides Params) Params {
	out := make(Params, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Float fetches a numeric parameter, accepting any numeric type YAML or
// callers may have produced.
func (p Params) Float(name string) (float64, bool) {
	switch v := p[name].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Int fetches an integer parameter.
func (p Params) Int(name string) (int, bool) {
	switch v := p[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// String fetches a string parameter.
func (p Params) String(name string) (string, bool) {
	v, ok := p[name].(string)
	return v, ok
}

// Duration fetches a duration parameter given either as time.Duration, a
// parseable string ("250ms"), or a number of milliseconds.
func (p Params) Duration(name string) (time.Duration, bool) {
	switch v := p[name].(type) {
	case time.Duration:
		return v, true
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, false
		}
		return d, true
	case int:
		return time.Duration(v) * time.Millisecond, true
	case int64:
		return time.Duration(v) * time.Millisecond, true
	case float64:
		return time.Duration(v * float64(time.Millisecond)), true
	default:
		return 0, false
	}
}

// PositiveFloat fetches a float parameter and rejects non-positive values
// with a ConfigurationError naming the parameter.
func (p Params) PositiveFloat(name string) (float64, error) {
	v, ok := p.Float(name)
	if !ok {
		return 0, configErr(name, "missing or non-numeric")
	}
	if v <= 0 {
		return 0, configErr(name, "must be positive, got %v", v)
	}
	return v, nil
}

// PositiveInt fetches an int parameter and rejects non-positive values.
func (p Params) PositiveInt(name string) (int, error) {
	v, ok := p.Int(name)
	if !ok {
		return 0, configErr(name, "missing or non-integer")
	}
	if v <= 0 {
		return 0, configErr(name, "must be positive, got %d", v)
	}
	return v, nil
}
