package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateLeadInput is the raw "new lead" form. Field names match the form inputs so
// validation errors can be shown next to the right field.
type CreateLeadInput struct {
	CompanyName            string `form:"companyName" json:"companyName" validate:"required,max=200"`
	KvkNumber              string `form:"kvkNumber" json:"kvkNumber" validate:"omitempty,len=8,number"`
	ContactPersonFirstname string `form:"contactPersonFirstname" json:"contactPersonFirstname" validate:"required,max=100"`
	ContactPersonLastname  string `form:"contactPersonLastname" json:"contactPersonLastname" validate:"required,max=100"`
	ContactEmail           string `form:"contactEmail" json:"contactEmail" validate:"required,email"`
	ContactPhone           string `form:"contactPhone" json:"contactPhone" validate:"required,phone"`
	Notes                  string `form:"notes" json:"notes" validate:"omitempty,max=2000"`
}

func (in CreateLeadInput) normalized() CreateLeadInput {
	return CreateLeadInput{
		CompanyName:            strings.TrimSpace(in.CompanyName),
		KvkNumber:              strings.TrimSpace(in.KvkNumber),
		ContactPersonFirstname: strings.TrimSpace(in.ContactPersonFirstname),
		ContactPersonLastname:  strings.TrimSpace(in.ContactPersonLastname),
		ContactEmail:           strings.TrimSpace(in.ContactEmail),
		ContactPhone:           strings.TrimSpace(in.ContactPhone),
		Notes:                  strings.TrimSpace(in.Notes),
	}
}

var (
	phoneChars = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
	nonDigits  = regexp.MustCompile(`\D`)
)

// validPhone accepts 10 to 15 digits with optional leading +, spaces, dashes and parentheses.
func validPhone(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if !phoneChars.MatchString(v) {
		return false
	}
	n := len(nonDigits.ReplaceAllString(v, ""))
	return n >= 10 && n <= 15
}

var leadValidator = newLeadValidator()

func newLeadValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", validPhone); err != nil {
		panic("register phone validation: " + err.Error())
	}
	return v
}

var fieldLabels = map[string]string{
	"companyName":            "Bedrijfsnaam",
	"kvkNumber":              "KVK-nummer",
	"contactPersonFirstname": "Voornaam",
	"contactPersonLastname":  "Achternaam",
	"contactEmail":           "E-mailadres",
	"contactPhone":           "Telefoonnummer",
	"notes":                  "Notities",
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is verplicht."
	case "email":
		return "Ongeldig e-mailadres."
	case "phone":
		return "Ongeldig telefoonnummer."
	case "len", "number":
		return label + " moet uit 8 cijfers bestaan."
	case "max":
		return label + " mag maximaal " + fe.Param() + " tekens bevatten."
	}
	return label + " is ongeldig."
}

// ValidateLead returns nil when the input passes, otherwise one message per failing field.
func ValidateLead(in CreateLeadInput) ValidationErrors {
	err := leadValidator.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{"_": err.Error()}
	}
	out := ValidationErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = fieldMessage(fe)
		}
	}
	return out
}
