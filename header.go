package aamva

import (
	"fmt"
	"strings"
)

// Header represents the parsed AAMVA payload header - the compliance
// preamble, issuer identification and the subfile directory that precede the
// data element records
type Header struct {
	IIN                 string // 6-digit Issuer Identification Number
	AAMVAVersion        int
	JurisdictionVersion int
	SubfileCount        int
	Subfiles            []SubfileDesignator
}

// SubfileDesignator is one entry of the header's subfile directory - "DL" or
// "ID" for the standard subfiles, jurisdiction-specific codes otherwise
type SubfileDesignator struct {
	Type   string // 2-character subfile type
	Offset int    // offset from the start of the payload
	Length int    // length of the subfile in bytes
}

const (
	complianceIndicator = '@'
	issuerMarker        = "ANSI "
	// the issuer marker must sit within the leading bytes - preamble bytes
	// vary across jurisdictions and keyboard wedges mangle control
	// characters, so the offset is not fixed
	maxMarkerLead = 24
	maxSubfiles   = 32
)

// validateHeader confirms the payload carries the AAMVA compliance/issuer
// header, parses it (including the subfile directory) and returns the
// remaining body for element scanning.
//
// Malformed input is a deterministic, permanent failure for that payload -
// there are no retries, the caller decides whether to re-scan.
func validateHeader(raw string) (Header, string, error) {
	if raw == "" {
		return Header{}, "", ErrEmptyInput
	}
	lead := raw
	if len(lead) > maxMarkerLead {
		lead = lead[:maxMarkerLead]
	}
	idx := strings.Index(lead, issuerMarker)
	if idx < 0 {
		return Header{}, "", fmt.Errorf("%w: missing %q issuer marker", ErrInvalidFormat, issuerMarker)
	}
	pos := idx + len(issuerMarker)
	if _, ok := digits(raw, pos, 6); !ok {
		return Header{}, "", fmt.Errorf("%w: missing issuer identification number", ErrInvalidFormat)
	}
	hdr := Header{IIN: raw[pos : pos+6]}
	pos += 6
	// version, jurisdiction version and subfile count are 2 digits each;
	// pre-2000 revisions omit the jurisdiction version...
	if v, ok := digits(raw, pos, 2); ok {
		hdr.AAMVAVersion = v
		pos += 2
	}
	if hdr.AAMVAVersion >= 2 {
		if v, ok := digits(raw, pos, 2); ok {
			hdr.JurisdictionVersion = v
			pos += 2
		}
	}
	if v, ok := digits(raw, pos, 2); ok {
		hdr.SubfileCount = v
		pos += 2
	}
	limit := hdr.SubfileCount
	if limit == 0 || limit > maxSubfiles {
		limit = maxSubfiles
	}
	for len(hdr.Subfiles) < limit {
		designator, ok := subfileDesignatorAt(raw, pos)
		if !ok {
			break
		}
		hdr.Subfiles = append(hdr.Subfiles, designator)
		pos += 10
	}
	return hdr, raw[pos:], nil
}

// subfileDesignatorAt reads a directory entry (2-character type, 4-digit
// offset, 4-digit length) at pos, reporting false when the text there is not
// one - the directory has no terminator, it simply stops matching
func subfileDesignatorAt(raw string, pos int) (SubfileDesignator, bool) {
	if pos+10 > len(raw) {
		return SubfileDesignator{}, false
	}
	typ := raw[pos : pos+2]
	if !isElementPrefix(typ) {
		return SubfileDesignator{}, false
	}
	offset, ok := digits(raw, pos+2, 4)
	if !ok {
		return SubfileDesignator{}, false
	}
	length, ok := digits(raw, pos+6, 4)
	if !ok {
		return SubfileDesignator{}, false
	}
	return SubfileDesignator{Type: typ, Offset: offset, Length: length}, true
}

// digits reads count ASCII digits at pos as a decimal value
func digits(raw string, pos, count int) (int, bool) {
	if pos+count > len(raw) {
		return 0, false
	}
	result := 0
	for i := pos; i < pos+count; i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, false
		}
		result = result*10 + int(raw[i]-'0')
	}
	return result, true
}
