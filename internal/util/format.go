package util

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatPHP renders an amount as Philippine pesos, e.g. 1549.50 -> "₱1,549.50".
func FormatPHP(amount float64) string {
	return fmt.Sprintf("₱%s", humanize.CommafWithDigits(amount, 2))
}

// TruncateContent shortens a string for notification messages.
func TruncateContent(content string, maxLength int) string {
	if len(content) <= maxLength {
		return content
	}
	return content[:maxLength] + "..."
}

func BoolPointer(b bool) *bool {
	return &b
}

func StringPointer(s string) *string {
	return &s
}

func Int64Pointer(i int64) *int64 {
	return &i
}

func TimePointer(t time.Time) *time.Time {
	return &t
}
