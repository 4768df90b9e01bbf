// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	Name  string           `json:"name" validate:"required"`
	Price *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
	Hex   string           `json:"hex_code" validate:"omitempty,hexcolor"`
}

func TestValidateStructDecimal(t *testing.T) {
	positive := decimal.RequireFromString("19.99")
	assert.NoError(t, ValidateStruct(&priced{Name: "shirt", Price: &positive}))
	assert.NoError(t, ValidateStruct(&priced{Name: "shirt"}))

	negative := decimal.RequireFromString("-0.01")
	errs := GetValidationErrors(ValidateStruct(&priced{Name: "shirt", Price: &negative}))
	require.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)
	assert.Equal(t, "gte", errs[0].Tag)
}

func TestGetValidationErrorsUsesJSONNames(t *testing.T) {
	errs := GetValidationErrors(ValidateStruct(&priced{Hex: "red"}))
	require.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.ElementsMatch(t, []string{"name", "hex_code"}, fields)
}

func TestGetValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
