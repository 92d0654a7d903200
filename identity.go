package aamva

import (
	"fmt"
	"iter"
	"strings"
)

// Identity is the normalized record decoded from a DL/ID payload.
//
// LastName/FirstName are required (at least one is always present - Parse
// fails otherwise); every other field is optional and empty when the issuer
// did not populate the corresponding element. Dates are canonical YYYY-MM-DD.
type Identity struct {
	Header         Header
	LastName       string
	FirstName      string
	MiddleName     string
	DateOfBirth    string
	StreetAddress  string
	City           string
	State          string // 2-letter jurisdiction code, as transmitted
	ZipCode        string
	LicenseNumber  string
	ExpirationDate string
	IssueDate      string
	Height         string // as transmitted, e.g. "068 in"
	EyeColor       string // ANSI D-20 code, e.g. "BRO"
	elements       map[ElementID]string
}

// Element retrieves the raw (un-normalized) value of any element present in
// the payload, including jurisdiction-specific elements outside the
// recognized set
func (id *Identity) Element(e ElementID) (value string, ok bool) {
	value, ok = id.elements[e]
	return value, ok
}

// extract consumes the element sequence once and assembles the Identity,
// dispatching on the closed ElementID set. A repeated ID keeps its last
// occurrence. Name resolution prefers the direct DCS/DAC/DAD elements and
// falls back to the composite DAA.
func extract(hdr Header, elements iter.Seq[DataElement], options *ParseOptions) (*Identity, error) {
	values := make(map[ElementID]string)
	var last, first, middle, fullName string
	result := &Identity{Header: hdr, elements: values}
	for el := range elements {
		value := strings.TrimSpace(el.Value)
		switch el.ID {
		case ElementFamilyName:
			last = nameCase(value)
		case ElementFirstName:
			first = nameCase(value)
		case ElementMiddleName:
			middle = nameCase(value)
		case ElementFullName:
			fullName = value
		case ElementDateOfBirth:
			result.DateOfBirth = resolveDate(value)
		case ElementStreetAddress:
			result.StreetAddress = nameCase(value)
		case ElementCity:
			result.City = nameCase(value)
		case ElementState:
			result.State = value
		case ElementPostalCode:
			result.ZipCode = trimZip(el.Value)
		case ElementCustomerID:
			result.LicenseNumber = value
		case ElementExpirationDate:
			result.ExpirationDate = resolveDate(value)
		case ElementIssueDate:
			result.IssueDate = resolveDate(value)
		case ElementHeight:
			result.Height = value
		case ElementEyeColor:
			result.EyeColor = value
		default:
			// unknown elements are expected - jurisdictions add their own -
			// but remain reachable via Element
			if options.ErrorOnUnknownElements {
				return nil, fmt.Errorf("%w: unknown element %q", ErrInvalidFormat, el.ID)
			}
		}
		values[el.ID] = el.Value
	}
	if last == "" && first == "" && fullName != "" {
		last, first, middle = splitFullName(fullName)
	}
	if last == "" && first == "" {
		return nil, ErrNoName
	}
	result.LastName, result.FirstName, result.MiddleName = last, first, middle
	if options.RequireDateOfBirth && result.DateOfBirth == "" {
		return nil, ErrUnresolvedDateOfBirth
	}
	return result, nil
}

// trimZip removes the fixed-width space padding AAMVA applies to postal
// codes, leaving the digit string itself untouched (no dash re-formatting)
func trimZip(raw string) string {
	return strings.TrimSpace(raw)
}
