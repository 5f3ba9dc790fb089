package checkout

import (
	"regexp"

	"github.com/example/shopvista/internal/order"
)

var (
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks the delivery form and returns a field-name to message
// map. The map is recomputed wholesale on every call; an empty map means
// the form is valid.
func Validate(c order.Customer) map[string]string {
	errs := make(map[string]string)

	if len(c.Name) < 3 {
		errs["name"] = "Name must be at least 3 characters"
	}
	if !phoneRe.MatchString(c.Phone) {
		errs["phone"] = "Enter a valid 10-digit phone number"
	}
	if c.Email != "" && !emailRe.MatchString(c.Email) {
		errs["email"] = "Enter a valid email address"
	}
	if len(c.Address) < 5 {
		errs["address"] = "Entry is too short"
	}
	if c.Landmark == "" {
		errs["landmark"] = "Landmark is required"
	}
	if c.City == "" {
		errs["city"] = "City is required"
	}
	if !pincodeRe.MatchString(c.Pincode) {
		errs["pincode"] = "Enter a valid 6-digit pincode"
	}

	return errs
}
