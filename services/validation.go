package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/gulzar-store/gulzar-api/models"
)

const deliveryDateLayout = "2006-01-02"

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)
	visaPattern       = regexp.MustCompile(`^4[0-9]{12,15}$`)
	mastercardPattern = regexp.MustCompile(`^5[1-5][0-9]{14}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// validateForm checks every checkout field in a fixed order and returns
// a ValidationError for the first rule that fails, or the parsed
// delivery date when the whole form passes. Nothing is persisted until
// validation succeeds.
func validateForm(form CheckoutForm, today time.Time) (time.Time, *ValidationError) {
	if strings.TrimSpace(form.ShippingAddress) == "" {
		return time.Time{}, &ValidationError{Field: "shippingAddress", Reason: "shipping address is required"}
	}

	if strings.TrimSpace(form.DeliveryDate) == "" {
		return time.Time{}, &ValidationError{Field: "deliveryDate", Reason: "delivery date is required"}
	}
	deliveryDate, err := time.Parse(deliveryDateLayout, form.DeliveryDate)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "deliveryDate", Reason: "delivery date must be a valid date (YYYY-MM-DD)"}
	}
	// Flowers need at least one full day of lead time: ordering for
	// "today" is never accepted.
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !deliveryDate.After(todayDate) {
		return time.Time{}, &ValidationError{Field: "deliveryDate", Reason: "delivery date must be at least 1 day ahead"}
	}

	method := strings.ToLower(strings.TrimSpace(form.PaymentMethod))
	if method != models.PaymentMethodVisa && method != models.PaymentMethodMastercard {
		return time.Time{}, &ValidationError{Field: "paymentMethod", Reason: "payment method must be visa or mastercard"}
	}

	number := stripSpaces(form.CardNumber)
	if number == "" {
		return time.Time{}, &ValidationError{Field: "cardNumber", Reason: "card number is required"}
	}
	if !cardNumberPattern.MatchString(number) {
		return time.Time{}, &ValidationError{Field: "cardNumber", Reason: "card number must be 13 to 19 digits"}
	}

	switch method {
	case models.PaymentMethodVisa:
		if !visaPattern.MatchString(number) {
			return time.Time{}, &ValidationError{Field: "cardNumber", Reason: "card number does not match a visa card"}
		}
	case models.PaymentMethodMastercard:
		if !mastercardPattern.MatchString(number) {
			return time.Time{}, &ValidationError{Field: "cardNumber", Reason: "card number does not match a mastercard"}
		}
	}

	if strings.TrimSpace(form.CardholderName) == "" {
		return time.Time{}, &ValidationError{Field: "cardholderName", Reason: "cardholder name is required"}
	}

	if form.ExpiryMonth < 1 || form.ExpiryMonth > 12 {
		return time.Time{}, &ValidationError{Field: "expiry", Reason: "expiry month must be between 1 and 12"}
	}
	if form.ExpiryYear < 1000 || form.ExpiryYear > 9999 {
		return time.Time{}, &ValidationError{Field: "expiry", Reason: "expiry year must be a four digit year"}
	}
	// A card expiring in the current month is still valid.
	if form.ExpiryYear < today.Year() ||
		(form.ExpiryYear == today.Year() && form.ExpiryMonth < int(today.Month())) {
		return time.Time{}, &ValidationError{Field: "expiry", Reason: "card has expired"}
	}

	if !cvvPattern.MatchString(form.CVV) {
		return time.Time{}, &ValidationError{Field: "cvv", Reason: "cvv must be 3 or 4 digits"}
	}

	return deliveryDate, nil
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}

// maskCardNumber keeps only the last four digits. The full number is
// never persisted.
func maskCardNumber(number string) string {
	digits := stripSpaces(number)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
