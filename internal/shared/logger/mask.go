package logger

// MaskUsername hides all but the first character of a login name so
// credentials-adjacent identifiers do not land in logs verbatim.
// Example: moe -> m***
func MaskUsername(username string) string {
	if username == "" {
		return ""
	}
	return username[:1] + "***"
}
