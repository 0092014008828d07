package http

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
)

// phoneRegex acepta móviles indonesios con o sin prefijo +62/62 y separadores opcionales.
var phoneRegex = regexp.MustCompile(`^(\+62|62)?[\s-]?0?8[1-9]{1}\d{1}[\s-]?\d{4}[\s-]?\d{2,5}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los mensajes usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// decimal.Decimal se valida como número (gt=0, etc.).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	// maxbytes limita bytes, no runas: bcrypt no acepta más de 72 bytes.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}

// validateStruct devuelve un mensaje legible con el primer campo inválido.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s es requerido", fe.Field())
	case "email":
		return fmt.Errorf("%s debe ser un email válido", fe.Field())
	case "phone":
		return fmt.Errorf("%s debe ser un teléfono válido", fe.Field())
	case "oneof":
		return fmt.Errorf("%s debe ser uno de: %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Errorf("%s debe ser mayor que %s", fe.Field(), fe.Param())
	case "lt", "lte":
		return fmt.Errorf("%s debe ser como máximo %s", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Errorf("%s no puede superar %s bytes", fe.Field(), fe.Param())
	case "min", "max":
		return fmt.Errorf("%s no cumple %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "url":
		return fmt.Errorf("%s debe ser una URL válida", fe.Field())
	default:
		return fmt.Errorf("%s inválido (%s)", fe.Field(), fe.Tag())
	}
}

// normalizer lo implementan los DTOs que normalizan campos antes de validarse.
type normalizer interface {
	Normalize()
}

// bindJSON parsea, normaliza y valida el cuerpo; si falla ya escribió la respuesta 400 y devuelve ok=false.
func bindJSON(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if n, ok := out.(normalizer); ok {
		n.Normalize()
	}
	if err := validateStruct(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return true, nil
}
