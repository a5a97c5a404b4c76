package auth

import (
	"fmt"
	"strings"
	"time"
)

// Role separates the regular household user from the admin who can
// inspect storage and run diagnostics.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the trivial phone-number identity the app works with.
type User struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizePhone canonicalizes an Indonesian phone number to its
// digits-only 62-prefixed form. "0812 3456 7890" and "+62812-3456-7890"
// normalize to the same identity.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()
	switch {
	case strings.HasPrefix(phone, "62"):
		// already canonical
	case strings.HasPrefix(phone, "0"):
		phone = "62" + phone[1:]
	}

	if len(phone) < 10 || len(phone) > 15 {
		return "", fmt.Errorf("invalid phone number %q", raw)
	}
	return phone, nil
}
