package util

import (
	"fmt"
	"strings"
)

// Normalize lowercases and trims a name so that lookups and unique keys ignore case and surrounding whitespace.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EscapeLike escapes the LIKE wildcards in s using backslash as the escape character.
func EscapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// TotalPages returns ceil(total / pageSize). pageSize must be positive.
func TotalPages(total int64, pageSize int) int {
	size := int64(pageSize)

	return int((total + size - 1) / size)
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
