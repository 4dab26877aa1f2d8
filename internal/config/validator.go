package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/at-ishikawa/letterquiz/internal/wordlist"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type customValidation struct {
	tag         string
	fn          validator.Func
	translation string
}

var customValidations = []customValidation{
	{
		tag:         "file",
		fn:          isFileReadable,
		translation: "{0} must be an existing and readable file",
	},
	{
		tag:         "wordlist_format",
		fn:          isWordListFormat,
		translation: "{0} must be one of txt, yaml, html or empty to detect it from the file extension",
	},
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

	for _, v := range customValidations {
		if err := validate.RegisterValidation(v.tag, v.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", v.tag, err)
		}
		if err := validate.RegisterTranslation(v.tag, trans, func(ut ut.Translator) error {
			return ut.Add(v.tag, v.translation, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), strings.TrimPrefix(fe.Namespace(), "Config."))
			return t
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", v.tag, err)
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

func isWordListFormat(fl validator.FieldLevel) bool {
	_, err := wordlist.ParseFormat(fl.Field().String())
	return err == nil
}
