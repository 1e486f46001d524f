// Package gst implements the pure tax computation core: jurisdiction
// resolution and per-line CGST/SGST/IGST splitting.
package gst

import (
	"strings"

	"gstbill/internal/domain"
)

// Jurisdiction classifies a supply as intra-state or inter-state.
type Jurisdiction int

const (
	IntraState Jurisdiction = iota
	InterState
)

func (j Jurisdiction) String() string {
	if j == IntraState {
		return "intra-state"
	}
	return "inter-state"
}

// Resolve compares the buyer and seller states after case and whitespace
// normalization. A blank state on either side is rejected up front rather
// than silently classified as inter-state.
func Resolve(buyerState, sellerState string) (Jurisdiction, error) {
	buyer := normalizeState(buyerState)
	seller := normalizeState(sellerState)
	if buyer == "" {
		return InterState, domain.NewValidationError("customer_state", "customer state is required to determine place of supply")
	}
	if seller == "" {
		return InterState, domain.NewValidationError("seller_state", "company state is required to determine place of supply")
	}
	if buyer == seller {
		return IntraState, nil
	}
	return InterState, nil
}

// normalizeState lowercases and collapses interior whitespace so
// "Maharashtra " and "maharashtra" compare equal.
func normalizeState(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
