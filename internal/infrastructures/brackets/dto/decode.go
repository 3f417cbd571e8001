package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	derr "github.com/ozzus/brackets/internal/domain/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// unmarshalList decodes payloads that come either wrapped as {"<key>": [...]}
// or as a bare array. The envelope is tried first.
func unmarshalList[T any](raw []byte, key string) ([]T, error) {
	if isNull(raw) {
		return nil, &derr.ResponseError{Detail: fmt.Sprintf("expected %q envelope or a bare array, got null", key)}
	}

	envelopeItems, envelopeErr := decodeEnvelope[T](raw, key)
	if envelopeErr == nil {
		return envelopeItems, nil
	}

	bareItems, bareErr := decodeElements[T](raw, "")
	if bareErr == nil {
		return bareItems, nil
	}

	switch firstByte(raw) {
	case '[':
		return nil, classify(bareErr, "")
	case '{':
		if errors.Is(envelopeErr, errMissingEnvelopeKey) {
			return nil, &derr.ResponseError{Detail: fmt.Sprintf("expected %q envelope or a bare array", key)}
		}
		return nil, classify(envelopeErr, key)
	default:
		return nil, &derr.ResponseError{Detail: fmt.Sprintf("expected %q envelope or a bare array: %v", key, bareErr)}
	}
}

var errMissingEnvelopeKey = errors.New("envelope key missing")

func decodeEnvelope[T any](raw []byte, key string) ([]T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	payload, ok := envelope[key]
	if !ok {
		return nil, errMissingEnvelopeKey
	}
	if isNull(payload) {
		return nil, &derr.DecodingError{
			Kind:        derr.KindKeyNotFound,
			Path:        key,
			Expected:    key,
			Description: fmt.Sprintf("key %q is null", key),
		}
	}

	return decodeElements[T](payload, key)
}

// decodeElements unmarshals a JSON array one element at a time so failures
// carry the element index in their path.
func decodeElements[T any](raw []byte, prefix string) ([]T, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}

	items := make([]T, len(elems))
	for i, elem := range elems {
		if err := json.Unmarshal(elem, &items[i]); err != nil {
			return nil, &prefixedError{prefix: fmt.Sprintf("%s[%d]", prefix, i), err: err}
		}
	}
	if err := validateList(items, prefix); err != nil {
		return nil, err
	}
	return items, nil
}

// unmarshalObject decodes a single-object response and validates required keys.
func unmarshalObject[T any](raw []byte) (T, error) {
	var out T
	if isNull(raw) {
		return out, &derr.ResponseError{Detail: "expected an object, got null"}
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, classify(err, "")
	}
	if err := validate.Struct(&out); err != nil {
		var zero T
		return zero, classify(err, "")
	}
	return out, nil
}

// prefixedError carries the path of the list or element an error came from.
type prefixedError struct {
	prefix string
	err    error
}

func (e *prefixedError) Error() string { return e.err.Error() }

func (e *prefixedError) Unwrap() error { return e.err }

func validateList[T any](items []T, prefix string) error {
	if len(items) == 0 {
		return nil
	}
	if err := validate.Var(items, "dive"); err != nil {
		return &prefixedError{prefix: prefix, err: err}
	}
	return nil
}

// classify maps a decode failure onto the error taxonomy. Failures that
// point into the document become DecodingError, failures of the document as
// a whole become InvalidResponse.
func classify(err error, prefix string) error {
	var decErr *derr.DecodingError
	if errors.As(err, &decErr) {
		return decErr
	}

	var perr *prefixedError
	if errors.As(err, &perr) {
		prefix = perr.prefix
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fromFieldError(fieldErrs[0], prefix)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" && prefix == "" {
			return &derr.ResponseError{Detail: fmt.Sprintf("cannot decode %s into %s", typeErr.Value, typeErr.Type)}
		}
		return fromTypeError(typeErr, prefix)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &derr.ResponseError{Detail: fmt.Sprintf("malformed json at offset %d: %v", syntaxErr.Offset, syntaxErr)}
	}

	return &derr.ResponseError{Detail: err.Error()}
}

func fromTypeError(typeErr *json.UnmarshalTypeError, prefix string) *derr.DecodingError {
	path := joinPath(prefix, typeErr.Field)
	expected := "<nil>"
	if typeErr.Type != nil {
		expected = typeErr.Type.String()
	}

	if typeErr.Type == timestampType {
		return &derr.DecodingError{
			Kind:        derr.KindDataCorrupted,
			Path:        path,
			Expected:    "date",
			Found:       typeErr.Value,
			Description: fmt.Sprintf("%s does not match any supported date format", typeErr.Value),
		}
	}

	return &derr.DecodingError{
		Kind:        derr.KindTypeMismatch,
		Path:        path,
		Expected:    expected,
		Found:       typeErr.Value,
		Description: fmt.Sprintf("expected %s, found %s", expected, typeErr.Value),
	}
}

func fromFieldError(fe validator.FieldError, prefix string) *derr.DecodingError {
	path := joinPath(prefix, trimRootNamespace(fe.Namespace()))

	if strings.HasPrefix(fe.Tag(), "required") {
		return &derr.DecodingError{
			Kind:        derr.KindKeyNotFound,
			Path:        path,
			Expected:    fe.Field(),
			Description: fmt.Sprintf("no value associated with key %q", fe.Field()),
		}
	}

	expected := fe.Tag()
	if fe.Param() != "" {
		expected += "=" + fe.Param()
	}
	return &derr.DecodingError{
		Kind:        derr.KindDataCorrupted,
		Path:        path,
		Expected:    expected,
		Found:       fmt.Sprint(fe.Value()),
		Description: fmt.Sprintf("value %v of %q fails %s", fe.Value(), fe.Field(), expected),
	}
}

// trimRootNamespace drops the Go type name validator puts in front of
// struct namespaces; list namespaces start with an index and are kept.
func trimRootNamespace(ns string) string {
	if strings.HasPrefix(ns, "[") {
		return ns
	}
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func joinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func firstByte(raw []byte) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
