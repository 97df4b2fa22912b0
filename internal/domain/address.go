package domain

import "strings"

// NormalizeAddress canonicalizes a player address. Every read and write keyed
// by an address goes through here.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// NormalizeAddressPtr is NormalizeAddress for optional references
func NormalizeAddressPtr(address *string) *string {
	if address == nil {
		return nil
	}
	normalized := NormalizeAddress(*address)
	return &normalized
}
