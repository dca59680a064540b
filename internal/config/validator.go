package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/mvzaanen/N-uu-conversion/internal/lexicon"
)

type customValidation struct {
	tag     string
	fn      validator.Func
	message string
}

var customValidations = []customValidation{
	{tag: "file", fn: isFileReadable, message: "{0} must be an existing and readable file"},
	{tag: "language", fn: isLanguage, message: "{0} must be one of the dictionary languages"},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for _, cv := range customValidations {
		if err := validate.RegisterValidation(cv.tag, cv.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", cv.tag, err)
		}
		if err := validate.RegisterTranslation(cv.tag, trans, func(ut ut.Translator) error {
			return ut.Add(cv.tag, cv.message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), strings.TrimPrefix(fe.Namespace(), "Config."))
			return t
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", cv.tag, err)
		}
	}

	return validate, trans, nil
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&0o400 != 0
}

func isLanguage(fl validator.FieldLevel) bool {
	_, err := lexicon.ParseLanguage(fl.Field().String())
	return err == nil
}
