// Package config holds the settings of the scalability and simplex tools.
//
// Every field has a default equal to the constant the tools were built
// around, so running without a configuration file reproduces the standard
// figures. A YAML file only needs the fields it changes:
//
//	input: results/runtimes.csv.zst
//	window:
//	  max: 5000
//	image:
//	  width: 2400
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(yamlFieldName)
	_ = validate.RegisterValidation("hasdegree", validateHasDegree)
}

// yamlFieldName reports fields by their YAML key so errors match the file.
func yamlFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}

	return name
}

// validateHasDegree checks that an []int field contains the degree given as
// the tag parameter.
func validateHasDegree(fl validator.FieldLevel) bool {
	want, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil {
		return false
	}

	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	for i := range field.Len() {
		if field.Index(i).Int() == want {
			return true
		}
	}

	return false
}

// decodeFile overlays the YAML document at path onto cfg. Unknown keys are
// rejected and an empty file leaves cfg untouched.
func decodeFile(path string, cfg any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// check runs struct validation and flattens validator errors into one message.
func check(cfg any) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), reflect.Indirect(reflect.ValueOf(cfg)).Type().Name()+".")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (value %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
