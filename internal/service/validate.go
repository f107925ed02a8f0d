package service

import (
	"strings"

	"supermarketapi/internal/dto"

	"github.com/shopspring/decimal"
)

// Field reasons mirror the wording clients already parse.
const (
	reasonBlank    = "can't be blank"
	reasonTaken    = "has already been taken"
	reasonNegative = "must be greater than or equal to 0"
)

func validateProductPayload(p dto.ProductPayload) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = reasonBlank
	}
	if strings.TrimSpace(p.Barcode) == "" {
		fields["barcode"] = reasonBlank
	}
	if strings.TrimSpace(p.Brand) == "" {
		fields["brand"] = reasonBlank
	}
	if p.Quantity == nil {
		fields["quantity"] = reasonBlank
	}
	if strings.TrimSpace(p.UnitMeasure) == "" {
		fields["unit_measure"] = reasonBlank
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validatePrice(price *decimal.Decimal) map[string]string {
	if price == nil {
		return map[string]string{"price": reasonBlank}
	}
	if price.IsNegative() {
		return map[string]string{"price": reasonNegative}
	}
	return nil
}
