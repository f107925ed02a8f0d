package tests

import (
	"testing"

	"supermarketapi/internal/apperr"

	"github.com/stretchr/testify/assert"
)

func TestValidationMessage_ListsEveryFieldInOrder(t *testing.T) {
	err := apperr.Validation("product", map[string]string{
		"quantity": "can't be blank",
		"barcode":  "can't be blank",
		"name":     "can't be blank",
	})

	assert.Equal(t,
		"Validation failed: barcode can't be blank, name can't be blank, quantity can't be blank",
		err.Error())
}

func TestValidationMessage_Stable(t *testing.T) {
	fields := map[string]string{
		"name":  "can't be blank",
		"brand": "can't be blank",
	}
	want := apperr.Validation("product", fields).Error()
	for i := 0; i < 50; i++ {
		assert.Equal(t, want, apperr.Validation("product", fields).Error())
	}
}

func TestValidationMessage_NoFields(t *testing.T) {
	assert.Equal(t, "Validation failed", apperr.Validation("product", nil).Error())
}
