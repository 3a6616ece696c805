package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
)

const IANAMediaTypesPrefix string = "https://www.iana.org/assignments/media-types/"

var validate = validator.New()

var bareMediaTypeRe = regexp.MustCompile(`^[a-z].*/[a-z].*`)

// validation collects field failures for one record. Checks are run in the
// order they are added, one per field.
type validation struct {
	record string
	errs   ValidationErrors
}

func newValidation(record string) *validation {
	return &validation{record: record}
}

func (v *validation) check(field string, value any, err error) {
	if err == nil {
		return
	}

	if nested, ok := err.(ValidationErrors); ok {
		for _, e := range nested {
			v.errs = append(v.errs, &ValidationError{
				Record: v.record,
				Field:  field + "." + e.Field,
				Value:  e.Value,
				Err:    e.Err,
			})
		}
		return
	}

	v.errs = append(v.errs, &ValidationError{Record: v.record, Field: field, Value: value, Err: err})
}

func (v *validation) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmpty
	}
	return nil
}

func validateURI(s string, schemes ...string) error {
	if err := validate.Var(s, "required,uri"); err != nil {
		return ErrInvalidURI
	}

	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return ErrInvalidURI
	}

	for _, scheme := range schemes {
		if strings.EqualFold(u.Scheme, scheme) {
			if scheme != "file" && u.Host == "" {
				return ErrInvalidURI
			}
			return nil
		}
	}

	return fmt.Errorf("%w: scheme %q not in %v", ErrInvalidURI, u.Scheme, schemes)
}

func validateOptionalHTTPURL(s string) error {
	if s == "" {
		return nil
	}
	return validateURI(s, "http", "https")
}

func validateEmail(s string) error {
	if s == "" {
		return nil
	}
	if err := validate.Var(s, "email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeMediaType turns "text/csv" or "iana:text/csv" into the IANA media
// type URI. Values that already are http(s) URIs are returned unchanged.
func NormalizeMediaType(mediaType string) (string, error) {
	switch {
	case mediaType == "":
		return "", nil
	case strings.HasPrefix(mediaType, "http"):
		return mediaType, validateURI(mediaType, "http", "https")
	case strings.HasPrefix(mediaType, "iana:"):
		return IANAMediaTypesPrefix + strings.SplitN(mediaType, ":", 2)[1], nil
	case bareMediaTypeRe.MatchString(mediaType):
		return IANAMediaTypesPrefix + mediaType, nil
	}
	return mediaType, ErrInvalidURI
}

// ParseTimestamp accepts free-text dates such as "2022-03-19T15:25:54Z" or
// "19 March 2022".
func ParseTimestamp(s string) (time.Time, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimestamp, err.Error())
	}
	return t, nil
}

// Text returns a pointer to s, for the optional text arguments of the constructors.
func Text(s string) *string {
	return &s
}
