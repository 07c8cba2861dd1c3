package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

const codeUnknown = "UNKNOWN"

type ErrorValidateResponse struct {
	Code    string `json:"code" example:"MISSING_FIELD"`
	Field   string `json:"field" example:"name"`
	Message string `json:"message" example:"field is missing"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validate = validator.New()

	reNoSpecial = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)
)

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	registerNoSpecialCharacters()
	registerNoSpacesAtStartOrEnd()
	registerDate()
	registerMoney()
}

// ValidateStruct returns a *multierror.Error of ErrorValidateResponse, nil
// when the struct is valid.
func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		errs = multierror.Append(errs, ErrorValidateResponse{
			Code:    codeUnknown,
			Message: err.Error(),
		})
		return errs.ErrorOrNil()
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			errs = multierror.Append(errs, toErrorResponse(valErr))
		}
	}

	return errs.ErrorOrNil()
}

// toErrorResponse looks the error up by "<namespace>_<tag>", then
// "<field>_<tag>", then "<tag>".
func toErrorResponse(valErr validator.FieldError) ErrorValidateResponse {
	keys := []string{
		fmt.Sprintf("%s_%s", valErr.Namespace(), valErr.Tag()),
		fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag()),
		valErr.Tag(),
	}
	for _, key := range keys {
		if data, found := models.MapErrors[key]; found {
			return ErrorValidateResponse{
				Code:    data.Code,
				Field:   valErr.Field(),
				Message: data.ErrorMessage.Error(),
			}
		}
	}

	return ErrorValidateResponse{
		Code:    codeUnknown,
		Field:   valErr.Field(),
		Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
	}
}

func registerMoney() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(models.Money); ok {
			return m.String()
		}
		return nil
	}, models.Money{})

	compare := func(fl validator.FieldLevel, ok func(cmp int) bool) bool {
		value, isString := fl.Field().Interface().(string)
		if !isString {
			return false
		}
		input, err := models.NewMoneyFromString(value)
		if err != nil {
			return false
		}
		param, err := models.NewMoneyFromString(fl.Param())
		if err != nil {
			return false
		}
		return ok(input.Cmp(param))
	}

	validate.RegisterValidation("moneyGreaterThan", func(fl validator.FieldLevel) bool {
		return compare(fl, func(cmp int) bool { return cmp > 0 })
	})
	validate.RegisterValidation("moneyGreaterThanOrEqual", func(fl validator.FieldLevel) bool {
		return compare(fl, func(cmp int) bool { return cmp >= 0 })
	})
}

func registerNoSpecialCharacters() {
	validate.RegisterValidation("nospecial", func(fl validator.FieldLevel) bool {
		return reNoSpecial.MatchString(fl.Field().String())
	})
}

func registerNoSpacesAtStartOrEnd() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}

// date accepts a real calendar day in YYYY-MM-DD.
func registerDate() {
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(common.DateFormatYYYYMMDD, fl.Field().String())
		return err == nil
	})
}
