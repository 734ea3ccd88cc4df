package utils

// ClampEnum returns value when it is one of allowed, otherwise def. Booking
// status and payment status writes are clamped rather than rejected: callers
// sending an out-of-domain value get the documented default silently.
func ClampEnum(value string, allowed []string, def string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return def
}
