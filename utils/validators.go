package utils

import (
	"regexp"
)

var (
	phoneRegex   = regexp.MustCompile(`^01[3-9][0-9]{8}$`)
	nidRegex     = regexp.MustCompile(`^[0-9]{10}$|^[0-9]{13}$|^[0-9]{17}$`)
	chassisRegex = regexp.MustCompile(`^[A-Za-z0-9-]{4,50}$`)
)

// IsValidPhone checks a Bangladeshi mobile number (11 digits, 01X prefix).
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidNID checks a national ID number (10, 13 or 17 digits).
func IsValidNID(nid string) bool {
	return nidRegex.MatchString(nid)
}

// IsValidChassis checks a chassis number for lookup.
func IsValidChassis(chassis string) bool {
	return chassisRegex.MatchString(chassis)
}
