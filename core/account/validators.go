package account

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/acadinfo/backend/core"
)

var (
	accountTypeTag  = "accounttype"
	accountTypeText = "invalid account type"

	// password policy
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdDigitTag  = "pwddigit"
	pwdDigitText = "password must contain at least one number"

	pwdUpperTag  = "pwdupper"
	pwdUpperText = "password must contain at least one uppercase letter"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(accountTypeTag, accountTypeValidation)
	core.RegisterCustomTranslation(accountTypeTag, accountTypeText)

	core.Validate.RegisterStructValidation(accountStructValidation, NewAccount{})
	core.Validate.RegisterStructValidation(accountStructValidation, ResetAccountPassword{})
	core.RegisterCustomTranslation(pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(pwdDigitTag, pwdDigitText)
	core.RegisterCustomTranslation(pwdUpperTag, pwdUpperText)
}

// Custom Validators

// accountTypeValidation only allows self-registrable account types;
// the administrator type exists solely for the seeded account.
func accountTypeValidation(fl validator.FieldLevel) bool {
	typ := fl.Field().String()
	for _, t := range RegistrableTypes {
		if typ == t {
			return true
		}
	}
	return false
}

// accountStructValidation does struct level validation on NewAccount and
// ResetAccountPassword structs.
func accountStructValidation(sl validator.StructLevel) {
	switch acct := sl.Current().Interface().(type) {
	case NewAccount:
		validatePassword(acct.Password, sl)
	case ResetAccountPassword:
		validatePassword(acct.Password, sl)
	}
}

// validatePassword applies the password policy to the provided password:
// - minLen: 8
// - at least 1 digit
// - at least 1 uppercase letter
// Rules are checked in order and only the first violation is reported.
func validatePassword(pwd string, sl validator.StructLevel) {
	if pwd == "" {
		// `required` already reported
		return
	}

	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	if len(pwd) < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}

	var hasDigit, hasUpper bool
	for _, char := range pwd {
		if unicode.IsDigit(char) {
			hasDigit = true
		}
		if unicode.IsUpper(char) {
			hasUpper = true
		}
	}
	if !hasDigit {
		reportErr(pwdDigitTag)
		return
	}
	if !hasUpper {
		reportErr(pwdUpperTag)
	}
}
