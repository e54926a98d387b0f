// Package validation decodes request bodies and checks them against
// `validate` struct tags, turning failures into client errors.
package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/Jeomhps/hbnb-api/internal/errs"
	"github.com/Jeomhps/hbnb-api/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so messages read "Missing user_id".
	v.RegisterTagNameFunc(jsonName)
	// bcrypt limits passwords in bytes, not runes.
	if err := v.RegisterValidation("bcrypt", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= models.MaxPasswordBytes
	}); err != nil {
		panic(err)
	}
	return v
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Decode unmarshals body into dst. The body has to be a JSON object;
// anything else, including null and arrays, is "Not a JSON".
// Keys must match a field's JSON name exactly: "NAME" does not set name.
func Decode(body []byte, dst any) *errs.HTTPError {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return errs.NewNotJSONError()
	}

	if known := fieldNames(reflect.TypeOf(dst)); known != nil {
		for k := range obj {
			if !known[k] {
				delete(obj, k)
			}
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return errs.NewNotJSONError()
		}
		body = b
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return errs.NewBadRequestError("Invalid " + te.Field)
		}
		return errs.NewNotJSONError()
	}
	return nil
}

// fieldNames returns the JSON keys of a struct type, following embedded
// structs. It returns nil for anything that is not a struct.
func fieldNames(t reflect.Type) map[string]bool {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	names := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Tag.Get("json") == "" {
			for k := range fieldNames(f.Type) {
				names[k] = true
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "" && f.Tag.Get("json") != "-" {
			name = f.Name
		}
		if name != "" {
			names[name] = true
		}
	}
	return names
}

// Struct validates v and reports the first failing field.
// A failed `required` becomes "Missing <field>", any other tag "Invalid <field>".
func Struct(v any) *errs.HTTPError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return errs.NewBadRequestError(err.Error())
	}
	fe := ves[0]
	if fe.Tag() == "required" {
		return errs.NewMissingFieldError(fe.Field())
	}
	return errs.NewBadRequestError("Invalid " + fe.Field())
}
