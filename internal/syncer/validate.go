package syncer

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Let numeric rules (gt, gte) apply to decimal fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}

		f, _ := d.Float64()

		return f
	}, decimal.Decimal{})

	return v
}

// ValidateRecords runs schema validation over a whole transformed batch and
// aggregates every failure. Any failure means the batch must not be
// persisted, partially or otherwise.
func ValidateRecords(records []*Record) error {
	var errs []error

	for _, record := range records {
		if err := validate.Struct(record); err != nil {
			errs = append(errs, fmt.Errorf("shipment %q: %w", record.Number, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("batch validation failed: %w", errors.Join(errs...))
	}

	return nil
}
