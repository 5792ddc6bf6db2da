// Package validate centraliza a validação estrutural de entrada baseada nas
// tags `validate` das entidades
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida as tags da struct e devolve o erro cru do validador
func Struct(s any) error {
	return v.Struct(s)
}

// FieldErrors converte o erro do validador em um mapa campo -> regra violada,
// pronto para o corpo de resposta da API
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fields[strings.ToLower(fieldError.Field())] = fieldError.Tag()
		}
	}

	return fields
}
