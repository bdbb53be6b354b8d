package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidateProperty runs the struct-tag checks, then the rules the tags cannot
// express.
func ValidateProperty(p *Property) error {
	if err := validate.Struct(p); err != nil {
		return validationError(err)
	}
	if !phonePattern.MatchString(p.PhoneNumber) {
		return fmt.Errorf("PhoneNumber %q is not a valid 10-digit phone number", p.PhoneNumber)
	}
	return nil
}

func ValidateClient(c *Client) error {
	if err := validate.Struct(c); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "required_if":
			msgs = append(msgs, fmt.Sprintf("%s is required for this property type", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
