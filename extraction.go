package aamva

import (
	"fmt"
	"strings"
)

// ExtractPayload locates the AAMVA payload inside raw scanner output.
//
// Keyboard-wedge scanners deliver the payload inside an envelope: key-up
// noise or a vendor prefix before the '@' compliance indicator, and trailing
// terminator/control bytes after the last record. ExtractPayload cuts the
// envelope away so the result can be handed to Parse. Payloads already clean
// pass through unchanged.
func ExtractPayload(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyInput
	}
	start := strings.IndexByte(raw, complianceIndicator)
	if start < 0 {
		// some wedges swallow the compliance indicator entirely - fall back
		// to the issuer marker...
		if start = strings.Index(raw, issuerMarker); start < 0 {
			return "", fmt.Errorf("%w: no compliance indicator in scan", ErrInvalidFormat)
		}
	}
	return strings.TrimRight(raw[start:], "\x00\x04\x1e\r\n\t "), nil
}
