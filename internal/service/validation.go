package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"shop-orders/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field names using their JSON keys.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateOrderRequest checks the cart header and then each item in order.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewValidationError("", model.MsgMissingFields)
	}

	if err := validate.Struct(req); err != nil {
		return model.NewValidationError(firstField(err), model.MsgMissingFields)
	}

	for i, item := range req.Items {
		if err := validateItem(i+1, item); err != nil {
			return err
		}
	}

	return nil
}

func validateItem(n int, item model.OrderItemRequest) error {
	if err := validate.Struct(item); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return model.NewValidationError("items", fmt.Sprintf("malformed item %d: %v", n, err))
		}

		fe := fieldErrs[0]
		var reason string
		switch fe.Tag() {
		case "required":
			reason = "is required"
		case "min":
			reason = "must not be empty"
		case "gt":
			reason = "must be greater than 0"
		default:
			reason = "is invalid"
		}
		return model.NewValidationError(fe.Field(), fmt.Sprintf("malformed item %d: %s %s", n, fe.Field(), reason))
	}

	if item.Price.IsNegative() {
		return model.NewValidationError("price", fmt.Sprintf("malformed item %d: price must not be negative", n))
	}

	return nil
}

func firstField(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Field()
	}
	return ""
}
