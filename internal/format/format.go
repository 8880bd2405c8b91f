package format

import (
	"fmt"
	"strings"
	"time"
)

const mebibyte = 1024 * 1024

// FileSize renders a byte count in megabytes with two decimals, as shown
// next to attached files. Example: FileSize(2*1024*1024) => "2.00 MB"
func FileSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/mebibyte)
}

// MaxSizeMB renders a limit in whole megabytes, e.g. "10MB".
func MaxSizeMB(bytes int64) string {
	return fmt.Sprintf("%dMB", bytes/mebibyte)
}

// Copyright formats the footer notice.
func Copyright(year int, owner, rights string) string {
	return strings.TrimSpace(fmt.Sprintf("© %d %s. %s", year, owner, rights))
}

// FmtDate formats time in a locale-friendly short form.
func FmtDate(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "ja":
		return t.Format("2006年1月2日")
	default:
		return t.Format("Jan 2, 2006")
	}
}
