package entity

import "strings"

// Stop is a delivery point to visit. Its position comes from, in order:
// KnownCoordinate, AddressText, the client directory entry for ClientID, FallbackRegion.
type Stop struct {
	ID              string      `json:"id"`
	AddressText     *string     `json:"addressText,omitempty"`
	KnownCoordinate *Coordinate `json:"knownCoordinate,omitempty"`
	FallbackRegion  *Region     `json:"fallbackRegion,omitempty"`
	ClientID        string      `json:"clientId,omitempty"`
}

// HasAddress reports whether the stop carries non-blank address text.
func (s Stop) HasAddress() bool {
	if s.AddressText == nil {
		return false
	}

	for _, r := range *s.AddressText {
		if r != ' ' && r != '\t' && r != '\n' {
			return true
		}
	}

	return false
}

// ClientProfile is the client record the order service syncs for address lookup.
type ClientProfile struct {
	ID         string
	Address    string
	City       string
	PostalCode string
	Region     Region
}

// FullAddress joins the non-empty address parts with ", ".
func (p ClientProfile) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.Address, p.City, p.PostalCode} {
		if s := strings.TrimSpace(part); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, ", ")
}
