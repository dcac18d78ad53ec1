package capture

import "fmt"

// TruncateURL shortens a URL to at most maxLen bytes for progress output.
// The tail is kept since it carries the profile slug.
func TruncateURL(url string, maxLen int) string {
	switch {
	case maxLen <= 0:
		return ""
	case len(url) <= maxLen:
		return url
	case maxLen < 4:
		return url[:maxLen]
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats a byte count with a binary unit suffix.
func FormatBytes(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	size := float64(bytes) / 1024
	for _, unit := range []string{"KB", "MB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f GB", size)
}
