// Package modelstate holds per-field validation errors and attempted values
// for redisplaying a submitted form.
//
// Field keys are property paths ("Email", "Lines[0].Qty") and compare
// case-insensitively, matching how controls name their inputs.
//
//	st := modelstate.New()
//	st.AddError("Email", "is required")
//	st.SetAttemptedValue("Age", "abc")
//	st.AddError("Age", "") // falls back to "The value 'abc' is invalid."
//
// Validation results in the ValidationErrors shape can be merged with
// [State.Merge], translating messages first with [ValidationErrors.Translate].
package modelstate

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
)

// InvalidValueMessage is used for errors without a message when an attempted
// value is known. The verb receives the attempted value.
var InvalidValueMessage = "The value '%s' is invalid."

// FieldError is a single validation failure.
type FieldError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error implements error.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a list of field errors.
type ValidationErrors []FieldError

// Error implements error.
func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, e := range ve {
		if strings.EqualFold(e.Field, field) {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Has reports whether field has any error.
func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e FieldError) bool { return strings.EqualFold(e.Field, field) })
}

// Translate replaces messages in place using fn for errors that carry a
// translation key. A nil fn is a no-op.
func (ve ValidationErrors) Translate(fn func(key string, values map[string]any) string) {
	if fn == nil {
		return
	}
	for i := range ve {
		if ve[i].TranslationKey == "" {
			continue
		}
		ve[i].Message = fn(ve[i].TranslationKey, ve[i].TranslationValues)
	}
}

type fieldState struct {
	errors    []string
	attempted string
	values    []string
	hasValue  bool
}

// State is the validation state of a submitted model.
// It is safe for concurrent use.
type State struct {
	mu     sync.RWMutex
	fields map[string]*fieldState
}

// New creates an empty State.
func New() *State {
	return &State{fields: make(map[string]*fieldState)}
}

// FromValidationErrors builds a State from validation errors.
func FromValidationErrors(ve ValidationErrors) *State {
	s := New()
	s.Merge(ve)
	return s
}

// FromForm builds a State from posted form values and the errors found
// validating them. Every posted field keeps all of its values, see
// [State.AttemptedValues]. Values are recorded before errors so errors
// without a message fall back to InvalidValueMessage.
func FromForm(form url.Values, ve ValidationErrors) *State {
	s := New()
	for name, values := range form {
		s.SetAttemptedValues(name, values...)
	}
	s.Merge(ve)
	return s
}

func (s *State) field(name string) *fieldState {
	k := strings.ToLower(name)
	f, ok := s.fields[k]
	if !ok {
		f = &fieldState{}
		s.fields[k] = f
	}
	return f
}

// AddError records an error for field. An empty message falls back to
// InvalidValueMessage when an attempted value is known.
func (s *State) AddError(field, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.field(field)
	if message == "" && f.hasValue {
		message = fmt.Sprintf(InvalidValueMessage, f.attempted)
	}
	f.errors = append(f.errors, message)
}

// Merge records every error in ve.
func (s *State) Merge(ve ValidationErrors) {
	for _, e := range ve {
		s.AddError(e.Field, e.Message)
	}
}

// SetAttemptedValue records the raw submitted value for field.
func (s *State) SetAttemptedValue(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.field(field)
	f.attempted = value
	f.values = []string{value}
	f.hasValue = true
}

// SetAttemptedValues records every submitted value for a repeated field,
// such as a multi-select. AttemptedValue reports them joined with ",".
func (s *State) SetAttemptedValues(field string, values ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.field(field)
	f.attempted = strings.Join(values, ",")
	f.values = slices.Clone(values)
	f.hasValue = true
}

// AttemptedValues returns the submitted values for field as posted.
func (s *State) AttemptedValues(field string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fields[strings.ToLower(field)]
	if !ok || !f.hasValue {
		return nil, false
	}
	return slices.Clone(f.values), true
}

// AttemptedValue returns the raw submitted value for field.
func (s *State) AttemptedValue(field string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fields[strings.ToLower(field)]
	if !ok || !f.hasValue {
		return "", false
	}
	return f.attempted, true
}

// Errors returns the error messages for field, including empty ones.
func (s *State) Errors(field string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fields[strings.ToLower(field)]
	if !ok {
		return nil
	}
	return slices.Clone(f.errors)
}

// HasErrors reports whether field has any recorded error.
func (s *State) HasErrors(field string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fields[strings.ToLower(field)]
	return ok && len(f.errors) > 0
}

// FirstError returns the first non-empty error message for field.
// When every message is empty and an attempted value exists, the
// InvalidValueMessage text is returned.
func (s *State) FirstError(field string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.fields[strings.ToLower(field)]
	if !ok || len(f.errors) == 0 {
		return "", false
	}
	for _, msg := range f.errors {
		if msg != "" {
			return msg, true
		}
	}
	if f.hasValue {
		return fmt.Sprintf(InvalidValueMessage, f.attempted), true
	}
	return "", true
}

// IsValid reports whether no field has errors.
func (s *State) IsValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.fields {
		if len(f.errors) > 0 {
			return false
		}
	}
	return true
}

// Fields returns the lower-cased keys of fields with errors, sorted.
func (s *State) Fields() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for k, f := range s.fields {
		if len(f.errors) > 0 {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
