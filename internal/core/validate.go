package core

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/inovacc/gitmsg/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return v
}

type messageInput struct {
	Content string `json:"content" validate:"required,max=65536"`
}

type repositoryInput struct {
	Owner string `json:"owner" validate:"required,max=100"`
	Name  string `json:"name" validate:"required,max=100"`
}

type createRepositoryInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// validateStruct runs struct validation and reports the first failure as
// a model.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return &model.ValidationError{Field: fe.Field()}
	}

	return &model.ValidationError{Field: fe.Field(), Reason: fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())}
}
