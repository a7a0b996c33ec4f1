package create_reservation

import (
	"fmt"
	"strings"
)

// validateRequest only checks that the mandatory fields are present;
// formats are checked by the guards, in order
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SalonID) == "" {
		return fmt.Errorf("%w: salon is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RequesterEmail) == "" {
		return fmt.Errorf("%w: requester email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(string(req.Start)) == "" {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	return nil
}
