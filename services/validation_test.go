package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testToday is the pinned clock for every validation test.
var testToday = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func validVisaForm() CheckoutForm {
	return CheckoutForm{
		ShippingAddress: "12 Salim Street, Erbil",
		DeliveryDate:    "2026-03-17",
		PaymentMethod:   "visa",
		CardNumber:      "4111111111111111",
		CardholderName:  "Dilan Ahmed",
		ExpiryMonth:     8,
		ExpiryYear:      2027,
		CVV:             "123",
	}
}

func TestValidateForm_ValidVisa(t *testing.T) {
	deliveryDate, verr := validateForm(validVisaForm(), testToday)
	assert.Nil(t, verr)
	assert.Equal(t, time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC), deliveryDate)
}

func TestValidateForm_ValidMastercard(t *testing.T) {
	form := validVisaForm()
	form.PaymentMethod = "mastercard"
	form.CardNumber = "5500000000000004"
	_, verr := validateForm(form, testToday)
	assert.Nil(t, verr)
}

func TestValidateForm_CardNumberWithSpaces(t *testing.T) {
	form := validVisaForm()
	form.CardNumber = "4111 1111 1111 1111"
	_, verr := validateForm(form, testToday)
	assert.Nil(t, verr)
}

func TestValidateForm_FieldRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CheckoutForm)
		wantField string
	}{
		{
			name:      "empty address",
			mutate:    func(f *CheckoutForm) { f.ShippingAddress = "  " },
			wantField: "shippingAddress",
		},
		{
			name:      "missing delivery date",
			mutate:    func(f *CheckoutForm) { f.DeliveryDate = "" },
			wantField: "deliveryDate",
		},
		{
			name:      "unparseable delivery date",
			mutate:    func(f *CheckoutForm) { f.DeliveryDate = "17/03/2026" },
			wantField: "deliveryDate",
		},
		{
			name:      "delivery date today",
			mutate:    func(f *CheckoutForm) { f.DeliveryDate = "2026-03-15" },
			wantField: "deliveryDate",
		},
		{
			name:      "delivery date in the past",
			mutate:    func(f *CheckoutForm) { f.DeliveryDate = "2026-03-01" },
			wantField: "deliveryDate",
		},
		{
			name:      "unsupported payment method",
			mutate:    func(f *CheckoutForm) { f.PaymentMethod = "amex" },
			wantField: "paymentMethod",
		},
		{
			name:      "empty card number",
			mutate:    func(f *CheckoutForm) { f.CardNumber = "" },
			wantField: "cardNumber",
		},
		{
			name:      "card number too short",
			mutate:    func(f *CheckoutForm) { f.CardNumber = "411111111111" },
			wantField: "cardNumber",
		},
		{
			name:      "card number with letters",
			mutate:    func(f *CheckoutForm) { f.CardNumber = "4111x1111111111" },
			wantField: "cardNumber",
		},
		{
			name: "mastercard number declared as visa",
			mutate: func(f *CheckoutForm) {
				f.PaymentMethod = "visa"
				f.CardNumber = "5500000000000004"
			},
			wantField: "cardNumber",
		},
		{
			name: "visa number declared as mastercard",
			mutate: func(f *CheckoutForm) {
				f.PaymentMethod = "mastercard"
				f.CardNumber = "4111111111111111"
			},
			wantField: "cardNumber",
		},
		{
			name:      "empty cardholder name",
			mutate:    func(f *CheckoutForm) { f.CardholderName = "" },
			wantField: "cardholderName",
		},
		{
			name:      "expiry month out of range",
			mutate:    func(f *CheckoutForm) { f.ExpiryMonth = 13 },
			wantField: "expiry",
		},
		{
			name:      "expiry year not four digits",
			mutate:    func(f *CheckoutForm) { f.ExpiryYear = 27 },
			wantField: "expiry",
		},
		{
			name: "expired last year",
			mutate: func(f *CheckoutForm) {
				f.ExpiryMonth = 12
				f.ExpiryYear = 2025
			},
			wantField: "expiry",
		},
		{
			name: "expired last month",
			mutate: func(f *CheckoutForm) {
				f.ExpiryMonth = 2
				f.ExpiryYear = 2026
			},
			wantField: "expiry",
		},
		{
			name:      "cvv too short",
			mutate:    func(f *CheckoutForm) { f.CVV = "12" },
			wantField: "cvv",
		},
		{
			name:      "cvv with letters",
			mutate:    func(f *CheckoutForm) { f.CVV = "12a" },
			wantField: "cvv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validVisaForm()
			tt.mutate(&form)
			_, verr := validateForm(form, testToday)
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidateForm_CurrentMonthExpiryIsValid(t *testing.T) {
	form := validVisaForm()
	form.ExpiryMonth = 3
	form.ExpiryYear = 2026
	_, verr := validateForm(form, testToday)
	assert.Nil(t, verr)
}

func TestValidateForm_TomorrowIsAccepted(t *testing.T) {
	form := validVisaForm()
	form.DeliveryDate = "2026-03-16"
	deliveryDate, verr := validateForm(form, testToday)
	assert.Nil(t, verr)
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), deliveryDate)
}

// With several invalid fields the reported error is the first one in
// the documented order, not an arbitrary one.
func TestValidateForm_FailFastOrder(t *testing.T) {
	form := validVisaForm()
	form.DeliveryDate = "2026-03-15"
	form.PaymentMethod = "amex"
	form.CVV = "x"

	_, verr := validateForm(form, testToday)
	require.NotNil(t, verr)
	assert.Equal(t, "deliveryDate", verr.Field)
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "1111", maskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "0004", maskCardNumber("5500000000000004"))
}
