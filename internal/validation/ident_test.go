package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCollection(t *testing.T) {
	assert.NoError(t, ValidateCollection("products"))
	assert.NoError(t, ValidateCollection("cash_sessions"))
	assert.NoError(t, ValidateCollection("a"))

	assert.Error(t, ValidateCollection(""))
	assert.Error(t, ValidateCollection("Products"))
	assert.Error(t, ValidateCollection("1products"))
	assert.Error(t, ValidateCollection("orders-archive"))
	assert.Error(t, ValidateCollection(strings.Repeat("a", 65)))
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, ValidateKey("p-1"))
	assert.NoError(t, ValidateKey(strings.Repeat("x", MaxKeyLen)))

	assert.Error(t, ValidateKey(""))
	assert.Error(t, ValidateKey(strings.Repeat("x", MaxKeyLen+1)))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("amina"))
	assert.NoError(t, ValidateUsername("shop-2"))
	assert.NoError(t, ValidateUsername("till_operator"))

	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("Amina"))
	assert.Error(t, ValidateUsername("9shop"))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 65)))
}
