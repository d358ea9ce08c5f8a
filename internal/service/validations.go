package service

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/vital/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterValidation("wallet_address", func(fl validator.FieldLevel) bool {
			return isWalletAddress(fl.Field().String())
		})
	})
}

// 0x followed by 40 hex digits, any case
func isWalletAddress(value string) bool {
	if len(value) != 42 || value[0] != '0' || (value[1] != 'x' && value[1] != 'X') {
		return false
	}
	for _, char := range value[2:] {
		isHex := (char >= '0' && char <= '9') || (char >= 'a' && char <= 'f') || (char >= 'A' && char <= 'F')
		if !isHex {
			return false
		}
	}
	return true
}

func normalizeWallet(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !isWalletAddress(value) {
		return "", errorvalues.ErrInvalidWallet
	}
	return strings.ToLower(value), nil
}

// checkRequest runs struct validation and folds field errors into one
// validation-kind error.
func checkRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			msgs = append(msgs, fieldErr.Namespace()+" failed on '"+fieldErr.Tag()+"'")
		}
		return errorvalues.ValidationFailed(strings.Join(msgs, "; "))
	}
	return errors.New("validation unexpected error: " + err.Error())
}
