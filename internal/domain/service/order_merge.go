package service

import (
	"strings"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// MergePrecedence decides which side wins when a product key exists in both
// the stored cart and the incoming payload.
type MergePrecedence int

const (
	// PreferIncoming lets the incoming value replace the stored one.
	PreferIncoming MergePrecedence = iota
	// PreferStored keeps the stored value; incoming values only add new keys.
	PreferStored
)

// String returns the configuration name of the precedence.
func (p MergePrecedence) String() string {
	switch p {
	case PreferIncoming:
		return "incoming"
	case PreferStored:
		return "stored"
	default:
		return "unknown"
	}
}

// ParseMergePrecedence converts a configuration value into a MergePrecedence.
func ParseMergePrecedence(s string) (MergePrecedence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "incoming":
		return PreferIncoming, nil
	case "stored":
		return PreferStored, nil
	default:
		return 0, errors.Errorf("unknown merge precedence: %q", s)
	}
}

// MergeProducts overlays incoming onto stored and returns a new mapping.
// Every key of either side appears exactly once in the result. Values are
// replaced per key, never combined. Neither input is modified.
func MergeProducts(stored, incoming entity.Products, precedence MergePrecedence) entity.Products {
	merged := stored.Clone()
	for key, value := range incoming {
		if _, exists := merged[key]; exists && precedence == PreferStored {
			continue
		}
		merged[key] = value
	}

	return merged
}
