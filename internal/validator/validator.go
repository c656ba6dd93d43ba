package validator

import (
	"net"

	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

var Validator = validator.New()

func init() {
	if err := Validator.RegisterValidation("loopback", isLoopback); err != nil {
		panic(err)
	}
	optsGenValidator.Set(Validator)
}

// isLoopback accepts IP literals of the loopback interface only.
func isLoopback(fl validator.FieldLevel) bool {
	ip := net.ParseIP(fl.Field().String())
	return ip != nil && ip.IsLoopback()
}
