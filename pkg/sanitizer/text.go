package sanitizer

import "strings"

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaskEmail keeps the first character of the local part and the whole domain,
// so an address can be logged without exposing it. Values that are not a
// single local@domain pair are returned trimmed but otherwise unchanged.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return email
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
