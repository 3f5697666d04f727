package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPHP(t *testing.T) {
	require.Equal(t, "₱1,549.50", FormatPHP(1549.5))
	require.Equal(t, "₱85", FormatPHP(85))
	require.Equal(t, "₱1,000,000", FormatPHP(1000000))
}

func TestTruncateContent(t *testing.T) {
	require.Equal(t, "short", TruncateContent("short", 10))
	require.Equal(t, "long str...", TruncateContent("long string here", 8))
}
