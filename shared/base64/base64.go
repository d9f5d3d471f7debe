package base64

import "strings"

// IsDataURI reports whether the string is a base64 data URI.
func IsDataURI(file string) bool {
	return strings.HasPrefix(file, "data:") && strings.Contains(file, ";base64,")
}

// GetContentType extracts the MIME type from a data-URI encoded file
// ("data:image/png;base64,...."). Returns an empty string when the input is
// not a data URI.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// StripPrefix returns the raw base64 payload of a data URI, or the input
// unchanged when no prefix is present.
func StripPrefix(file string) string {
	idx := strings.Index(file, ";base64,")
	if idx == -1 {
		return file
	}

	return file[idx+len(";base64,"):]
}
