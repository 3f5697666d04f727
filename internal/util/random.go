package util

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

const (
	// Alphabet without easily confused characters (0/O, 1/I).
	orderNumberAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// GenerateOrderNumber generates a unique order number in the format "ORD-XXXXXXXXXX".
func GenerateOrderNumber() string {
	uuid := shortuuid.NewWithAlphabet(orderNumberAlphabet)

	return fmt.Sprintf("ORD-%s", uuid[:10])
}

// GenerateRandomSlug builds a URL slug from a menu item name with a short
// random suffix to keep it unique across renames.
func GenerateRandomSlug(name string) string {
	baseSlug := slug.Make(name)
	shortID := shortuuid.New()[:8]

	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}
