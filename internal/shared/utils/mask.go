package utils

import "strings"

// MaskEmail keeps the first character of the local part and the domain:
// "alice@example.com" becomes "a***@example.com".
func MaskEmail(address string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(address), "@")
	if !ok {
		return "***"
	}
	if local != "" {
		local = local[:1]
	}
	return local + "***@" + domain
}

// MaskRecipients masks each entry of a comma separated mailbox list and
// drops empty entries.
func MaskRecipients(recipients string) string {
	var b strings.Builder
	for _, r := range strings.Split(recipients, ",") {
		if strings.TrimSpace(r) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(MaskEmail(r))
	}
	return b.String()
}
