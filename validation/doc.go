// Package validation wraps go-playground/validator for reqkit configuration
// structs.
//
// Fields are declared with `validate` tags and checked with Validate:
//
//	type Config struct {
//	    Name    string        `validate:"required"`
//	    Timeout time.Duration `validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
//
// A failed check returns *Error listing every offending field.
package validation
