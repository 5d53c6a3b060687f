// Package validation holds the declarative field schemas for every entity.
// A single Schema per entity drives both candidate-record validation and the
// update-allowlist check, so the two can never drift apart.
package validation

import "fmt"

// ValidationError reports a submitted field violating a type, enum, range or
// length constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// InvalidOperationError reports an update touching a field outside the
// entity's allowed set, or an operation on a record that forbids it.
type InvalidOperationError struct {
	Field string
}

func (e *InvalidOperationError) Error() string {
	if e.Field == "" {
		return "operation not permitted"
	}
	return fmt.Sprintf("field %q may not be updated", e.Field)
}

// Rule checks a single candidate value for a named field.
type Rule func(field string, value any) error

// Schema describes one entity: which fields are required on create, the
// rules per field, and which fields an update may touch.
type Schema struct {
	Required  []string
	Fields    map[string][]Rule
	Updatable []string
}

// ValidateNew checks a full candidate record: all required fields must be
// present and every present field must satisfy its rules. The first failing
// rule is reported.
func (s Schema) ValidateNew(fields map[string]any) error {
	for _, name := range s.Required {
		if _, ok := fields[name]; !ok {
			return &ValidationError{Field: name, Reason: "required"}
		}
	}
	return s.applyRules(fields)
}

// ValidateUpdate checks a partial record: every present field must be in the
// update allowlist and satisfy its rules.
func (s Schema) ValidateUpdate(patch map[string]any) error {
	for name := range patch {
		if !s.updatable(name) {
			return &InvalidOperationError{Field: name}
		}
	}
	return s.applyRules(patch)
}

func (s Schema) updatable(field string) bool {
	for _, name := range s.Updatable {
		if name == field {
			return true
		}
	}
	return false
}

func (s Schema) applyRules(fields map[string]any) error {
	for name, value := range fields {
		for _, rule := range s.Fields[name] {
			if err := rule(name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// In requires the value to be one of the listed strings.
func In(allowed ...string) Rule {
	return func(field string, value any) error {
		str, ok := value.(string)
		if !ok {
			return &ValidationError{Field: field, Reason: "must be a string"}
		}
		for _, a := range allowed {
			if str == a {
				return nil
			}
		}
		return &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a legal value", str)}
	}
}

// Min requires a numeric value >= min.
func Min(min float64) Rule {
	return func(field string, value any) error {
		n, ok := asNumber(value)
		if !ok {
			return &ValidationError{Field: field, Reason: "must be a number"}
		}
		if n < min {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at least %v", min)}
		}
		return nil
	}
}

// Range requires a numeric value within [min, max].
func Range(min, max float64) Rule {
	return func(field string, value any) error {
		n, ok := asNumber(value)
		if !ok {
			return &ValidationError{Field: field, Reason: "must be a number"}
		}
		if n < min || n > max {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("must be between %v and %v", min, max)}
		}
		return nil
	}
}

// NotEmpty requires a non-empty string.
func NotEmpty() Rule {
	return MinLen(1)
}

// MinLen requires a string of at least n characters.
func MinLen(n int) Rule {
	return func(field string, value any) error {
		str, ok := value.(string)
		if !ok {
			return &ValidationError{Field: field, Reason: "must be a string"}
		}
		if len(str) < n {
			if n == 1 {
				return &ValidationError{Field: field, Reason: "must not be empty"}
			}
			return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at least %d characters", n)}
		}
		return nil
	}
}

// asNumber accepts the numeric shapes seen in decoded JSON and typed callers.
func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
