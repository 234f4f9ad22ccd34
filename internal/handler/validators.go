package handler

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/anyulbade/petshop-pix/internal/pix"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
// It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("brl_amount", func(fl validator.FieldLevel) bool {
		return pix.ValidAmount(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("brl_ledger_amount", func(fl validator.FieldLevel) bool {
		return pix.ValidLedgerAmount(fl.Field().String())
	})
}
