package utils

import (
	"encoding/json"
	"fmt"

	"restaurant-client/models"
)

// CanonicalForm returns a deterministic serialization of a customization
// set. Two sets with the same key/value pairs produce identical output
// regardless of insertion order: the value is marshaled, decoded back into
// plain maps and re-marshaled, and encoding/json emits map keys sorted at
// every nesting level.
func CanonicalForm(c models.Customizations) (string, error) {
	if len(c) == 0 {
		return "{}", nil
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("customizations not serializable: %w", err)
	}

	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return "", fmt.Errorf("customizations not serializable: %w", err)
	}

	canonical, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("customizations not serializable: %w", err)
	}
	return string(canonical), nil
}

// ItemKey derives the cart-line identity for a product and its
// customizations. No two items in a cart may share a key.
func ItemKey(productID string, c models.Customizations) (string, error) {
	form, err := CanonicalForm(c)
	if err != nil {
		return "", err
	}
	return productID + "|" + form, nil
}
