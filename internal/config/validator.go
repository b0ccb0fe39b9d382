package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

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
	if err := validate.RegisterValidation("geo", isGeo); err != nil {
		return nil, nil, fmt.Errorf("failed to register geo validation: %w", err)
	}
	if err := validate.RegisterTranslation("geo", trans, func(ut ut.Translator) error {
		return ut.Add("geo", "{0} must be a two-letter upper-case country code such as FR", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("geo", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register geo translation: %w", err)
	}

	return validate, trans, nil
}

// isGeo accepts ISO 3166-1 alpha-2 style codes as Google Trends expects them.
func isGeo(fl validator.FieldLevel) bool {
	geo := fl.Field().String()
	if len(geo) != 2 {
		return false
	}
	for _, r := range geo {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
