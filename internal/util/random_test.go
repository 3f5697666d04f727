package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	orderNumber := GenerateOrderNumber()

	require.True(t, strings.HasPrefix(orderNumber, "ORD-"))
	require.Len(t, orderNumber, 14)

	for _, c := range orderNumber[4:] {
		require.Contains(t, orderNumberAlphabet, string(c))
	}
}

func TestGenerateOrderNumberIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		orderNumber := GenerateOrderNumber()
		require.False(t, seen[orderNumber])
		seen[orderNumber] = true
	}
}

func TestGenerateRandomSlug(t *testing.T) {
	slug := GenerateRandomSlug("Chicken Adobo (Spicy)")

	require.True(t, strings.HasPrefix(slug, "chicken-adobo-spicy-"))
	require.NotEqual(t, slug, GenerateRandomSlug("Chicken Adobo (Spicy)"))
}
