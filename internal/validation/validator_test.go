package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type cuitField struct {
	Cuit string `json:"cuit" validate:"required,cuit"`
}

type accountField struct {
	Account string `json:"account" validate:"required,account_number"`
}

type statusField struct {
	Status string `json:"status" validate:"required,transfer_status"`
}

type currencyField struct {
	Currency string `json:"currency" validate:"required,currency_code"`
}

type referenceField struct {
	ReferenceID string `json:"reference_id" validate:"required,reference_id"`
}

type entityRefField struct {
	ID string `json:"id" validate:"required,entity_ref"`
}

type phoneField struct {
	Phone string `json:"phone" validate:"required,contact_phone"`
}

func TestValidateCuit(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(cuitField{Cuit: "30-71659554-0"}))
	assert.NoError(t, v.Struct(cuitField{Cuit: "20123456786"}))
	assert.Error(t, v.Struct(cuitField{Cuit: "30-71659554-9"}))
	assert.Error(t, v.Struct(cuitField{Cuit: "not-a-cuit"}))
	assert.Error(t, v.Struct(cuitField{}))
}

func TestValidateAccountNumber(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(accountField{Account: "12345"}))
	assert.NoError(t, v.Struct(accountField{Account: "123456789012"}))
	assert.Error(t, v.Struct(accountField{Account: "1234"}))
	assert.Error(t, v.Struct(accountField{Account: "1234567890123"}))
	assert.Error(t, v.Struct(accountField{Account: "12345abc"}))
}

func TestValidateTransferStatus(t *testing.T) {
	v := NewValidator().GetValidate()

	for _, status := range []string{"pending", "completed", "failed", "reversed"} {
		assert.NoError(t, v.Struct(statusField{Status: status}), "status %q should be accepted", status)
	}
	assert.Error(t, v.Struct(statusField{Status: "cancelled"}))
	// Statuses are stored lowercase; uppercase input must not slip through
	// only to be coerced to pending on insert
	assert.Error(t, v.Struct(statusField{Status: "COMPLETED"}))
	assert.Error(t, v.Struct(statusField{Status: "Pending"}))
}

func TestValidateCurrencyCode(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(currencyField{Currency: "ARS"}))
	assert.NoError(t, v.Struct(currencyField{Currency: "USD"}))
	assert.Error(t, v.Struct(currencyField{Currency: "ars"}))
	assert.Error(t, v.Struct(currencyField{Currency: "ARSS"}))
}

func TestValidateReferenceID(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(referenceField{ReferenceID: "INV-2024_001"}))
	assert.Error(t, v.Struct(referenceField{ReferenceID: "has spaces"}))
	assert.Error(t, v.Struct(referenceField{ReferenceID: strings.Repeat("a", 51)}))
}

func TestValidateEntityRef(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(entityRefField{ID: "42"}))
	assert.NoError(t, v.Struct(entityRefField{ID: "550e8400-e29b-41d4-a716-446655440000"}))
	assert.Error(t, v.Struct(entityRefField{ID: "12a"}))
	assert.Error(t, v.Struct(entityRefField{ID: "-5"}))
}

func TestValidateContactPhone(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(phoneField{Phone: "+54 11 4321-5678"}))
	assert.NoError(t, v.Struct(phoneField{Phone: "1143215678"}))
	assert.Error(t, v.Struct(phoneField{Phone: "phone"}))
	assert.Error(t, v.Struct(phoneField{Phone: "12"}))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
