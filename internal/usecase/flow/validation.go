package flow

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domain "credfacil-backend/internal/domain/flow"
)

// Field rules mirror the capture forms: trim first, then length/grammar
// checks. Submissions surface only the first failing field (fail-fast,
// single-error policy), so rule structs keep fields in form order.

var validate = validator.New()

type personalRules struct {
	Name  string `validate:"min=3,max=100"`
	Email string `validate:"required,email,max=255"`
	Phone string `validate:"min=10,max=15"`
	CPF   string `validate:"min=11,max=14"`
}

type bankRules struct {
	Agency     string `validate:"min=3,max=10"`
	Account    string `validate:"min=3,max=20"`
	HolderName string `validate:"min=3,max=100"`
	HolderCPF  string `validate:"min=11,max=14"`
}

var jsonField = map[string]string{
	"Name":       "name",
	"Email":      "email",
	"Phone":      "phone",
	"CPF":        "cpf",
	"Agency":     "agency",
	"Account":    "account",
	"HolderName": "holder_name",
	"HolderCPF":  "holder_cpf",
}

var fieldMessage = map[string]map[string]string{
	"Name": {
		"min": "name must be at least 3 characters",
		"max": "name must be at most 100 characters",
	},
	"Email": {
		"required": "email is required",
		"email":    "email is invalid",
		"max":      "email must be at most 255 characters",
	},
	"Phone": {
		"min": "phone must be at least 10 characters",
		"max": "phone must be at most 15 characters",
	},
	"CPF": {
		"min": "CPF must be at least 11 characters",
		"max": "CPF must be at most 14 characters",
	},
	"Agency": {
		"min": "agency must be at least 3 characters",
		"max": "agency must be at most 10 characters",
	},
	"Account": {
		"min": "account must be at least 3 characters",
		"max": "account must be at most 20 characters",
	},
	"HolderName": {
		"min": "holder name must be at least 3 characters",
		"max": "holder name must be at most 100 characters",
	},
	"HolderCPF": {
		"min": "holder CPF must be at least 11 characters",
		"max": "holder CPF must be at most 14 characters",
	},
}

// firstFieldError maps a validator error to the first field's readable
// message, dropping the rest.
func firstFieldError(err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return &domain.ValidationError{Field: "_", Message: err.Error()}
	}
	e := ve[0]
	field := jsonField[e.StructField()]
	if msg, ok := fieldMessage[e.StructField()][e.Tag()]; ok {
		return &domain.ValidationError{Field: field, Message: msg}
	}
	return &domain.ValidationError{Field: field, Message: e.Tag() + " validation failed"}
}

func validatePersonal(in PersonalDataInput) (PersonalDataInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.CPF = strings.TrimSpace(in.CPF)

	if err := validate.Struct(personalRules(in)); err != nil {
		return in, firstFieldError(err)
	}
	return in, nil
}

func validateBank(in BankDataInput) (BankDataInput, error) {
	in.Agency = strings.TrimSpace(in.Agency)
	in.Account = strings.TrimSpace(in.Account)
	in.HolderName = strings.TrimSpace(in.HolderName)
	in.HolderCPF = strings.TrimSpace(in.HolderCPF)

	if err := validate.Struct(bankRules(in)); err != nil {
		return in, firstFieldError(err)
	}
	return in, nil
}
