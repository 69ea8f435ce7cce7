package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farm-ledger/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Los nombres de campo reportados son los del JSON.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		// decimal.Decimal se valida como número (gte, gt, ...).
		v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
			d, ok := f.Interface().(decimal.Decimal)
			if !ok {
				return nil
			}
			n, _ := d.Float64()
			return n
		}, decimal.Decimal{})
		validate = v
	})
	return validate
}

// Validate aplica las etiquetas validate de req. Devuelve *domain.ValidationError con los campos fallidos.
func Validate(req any) error {
	err := validatorInstance().Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError(err.Error())
	}
	fields := make([]string, 0, len(verrs))
	rules := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldPath(fe))
		rules = append(rules, fieldPath(fe)+" "+fe.Tag())
	}
	return domain.NewValidationError(strings.Join(rules, "; "), fields...)
}

// fieldPath quita el nombre del struct raíz: "BatchRequest.current_quantity" → "current_quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
