package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/vaughan-dsouza/salesdesk/internal/apperr"
)

// DateLayout is the textual layout of Sale.Date.
const DateLayout = "2006-01-02"

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// ValidateSale checks a submitted sale and builds the record to store. The
// returned sale has no ID or CreatedAt yet. Field names in errors are prefixed
// with prefix, e.g. "bulk[2]." for bulk items.
func ValidateSale(in SaleInput, prefix string) (Sale, []apperr.FieldError) {
	var errs []apperr.FieldError
	fail := func(field, msg string) {
		errs = append(errs, apperr.FieldError{Field: prefix + field, Message: msg})
	}

	sale := Sale{
		Product: strings.TrimSpace(in.Product),
		User:    strings.TrimSpace(in.User),
		Date:    strings.TrimSpace(in.Date),
	}

	if sale.Product == "" {
		fail("product", "is required")
	}
	if sale.User == "" {
		fail("user", "is required")
	}
	if sale.Date == "" {
		fail("date", "is required")
	} else if date, ok := parseSaleDate(sale.Date); ok {
		sale.Date = date
	} else {
		fail("date", "must be a date in YYYY-MM-DD format")
	}

	if v, msg := positive(in.Quantity); msg != "" {
		fail("quantity", msg)
	} else {
		sale.Quantity = v
	}

	if v, msg := positive(in.Price); msg != "" {
		fail("price", msg)
	} else {
		sale.Price = v
	}

	if len(errs) > 0 {
		return Sale{}, errs
	}

	sale.Total = sale.Quantity * sale.Price
	return sale, nil
}

// parseSaleDate accepts YYYY-MM-DD or an RFC 3339 timestamp, which date
// pickers send, and returns the YYYY-MM-DD form. Timestamps use their UTC day.
func parseSaleDate(s string) (string, bool) {
	if _, err := time.Parse(DateLayout, s); err == nil {
		return s, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(DateLayout), true
	}
	return "", false
}

func positive(n *Number) (float64, string) {
	switch {
	case n == nil || n.Blank:
		return 0, "is required"
	case n.Invalid:
		return 0, "must be a number"
	case n.Value <= 0:
		return 0, "must be greater than zero"
	}
	return n.Value, ""
}

// ValidateBulk validates every item on its own and collects all field errors.
func ValidateBulk(items []SaleInput) ([]Sale, []apperr.FieldError) {
	if len(items) == 0 {
		return nil, []apperr.FieldError{{Field: "bulk", Message: "must contain at least one sale"}}
	}

	sales := make([]Sale, 0, len(items))
	var errs []apperr.FieldError
	for i, item := range items {
		sale, itemErrs := ValidateSale(item, fmt.Sprintf("bulk[%d].", i))
		if len(itemErrs) > 0 {
			errs = append(errs, itemErrs...)
			continue
		}
		sales = append(sales, sale)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return sales, nil
}

// ValidateRegistration checks a registration payload.
func ValidateRegistration(in RegisterInput) []apperr.FieldError {
	var errs []apperr.FieldError
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, apperr.FieldError{Field: "email", Message: "is required"})
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = append(errs, apperr.FieldError{Field: "email", Message: "must be a valid e-mail address"})
	}
	errs = append(errs, validatePassword("password", in.Password)...)
	return errs
}

// ValidateUserUpdate checks an update payload.
func ValidateUserUpdate(in UpdateUserInput) []apperr.FieldError {
	var errs []apperr.FieldError
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, apperr.FieldError{Field: "email", Message: "is required"})
	}
	if in.Password == "" {
		errs = append(errs, apperr.FieldError{Field: "password", Message: "is required"})
	}
	if in.NewEmail != "" {
		if _, err := mail.ParseAddress(in.NewEmail); err != nil {
			errs = append(errs, apperr.FieldError{Field: "newEmail", Message: "must be a valid e-mail address"})
		}
	}
	if in.NewPassword != "" {
		errs = append(errs, validatePassword("newPassword", in.NewPassword)...)
	}
	return errs
}

func validatePassword(field, password string) []apperr.FieldError {
	switch {
	case password == "":
		return []apperr.FieldError{{Field: field, Message: "is required"}}
	case len(password) > maxPasswordBytes:
		return []apperr.FieldError{{Field: field, Message: fmt.Sprintf("must be at most %d bytes", maxPasswordBytes)}}
	}
	return nil
}
