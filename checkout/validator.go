package checkout

import (
	"strings"
	"unicode/utf8"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

// FieldErrors carries one flag per checkout form field. True means invalid.
// The shape is serialized back to the client so the form can highlight the
// exact fields that blocked submission.
type FieldErrors struct {
	Name          bool `json:"name"`
	CPF           bool `json:"cpf"`
	Phone         bool `json:"phone"`
	CEP           bool `json:"cep"`
	Street        bool `json:"street"`
	Number        bool `json:"number"`
	Neighborhood  bool `json:"neighborhood"`
	City          bool `json:"city"`
	State         bool `json:"state"`
	AgreeShipping bool `json:"agreeShipping"`
}

// Any reports whether at least one field failed.
func (e FieldErrors) Any() bool {
	return e.Name || e.CPF || e.Phone || e.CEP || e.Street || e.Number ||
		e.Neighborhood || e.City || e.State || e.AgreeShipping
}

// Validate checks every field of the checkout form and never rejects early:
// all flags are recomputed so the client can show every problem at once.
//
// The name rule counts space-separated tokens on the trimmed value, so a
// single given name fails and anything with a surname passes.
func Validate(u models.UserData) FieldErrors {
	return FieldErrors{
		Name:          len(strings.Split(strings.TrimSpace(u.Name), " ")) < 2,
		CPF:           len(DigitsOnly(u.CPF)) != 11,
		Phone:         len(DigitsOnly(u.Phone)) != 10 && len(DigitsOnly(u.Phone)) != 11,
		CEP:           len(DigitsOnly(u.CEP)) != 8,
		Street:        utf8.RuneCountInString(strings.TrimSpace(u.Street)) < 3,
		Number:        strings.TrimSpace(u.Number) == "",
		Neighborhood:  utf8.RuneCountInString(strings.TrimSpace(u.Neighborhood)) < 3,
		City:          utf8.RuneCountInString(strings.TrimSpace(u.City)) < 3,
		State:         utf8.RuneCountInString(strings.TrimSpace(u.State)) != 2,
		AgreeShipping: !u.AgreeShipping,
	}
}
