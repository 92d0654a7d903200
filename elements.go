package aamva

import (
	"iter"
	"strings"
)

// ElementID is a 3-character AAMVA data element identifier (e.g. "DCS", "DBB")
type ElementID string

const (
	ElementFamilyName     ElementID = "DCS" // customer family name
	ElementFirstName      ElementID = "DAC" // customer first name
	ElementMiddleName     ElementID = "DAD" // customer middle name(s)
	ElementFullName       ElementID = "DAA" // composite name, "LAST,FIRST[,MIDDLE]"
	ElementDateOfBirth    ElementID = "DBB"
	ElementStreetAddress  ElementID = "DAG"
	ElementCity           ElementID = "DAI"
	ElementState          ElementID = "DAJ"
	ElementPostalCode     ElementID = "DAK"
	ElementCustomerID     ElementID = "DAQ" // license / ID number
	ElementExpirationDate ElementID = "DBA"
	ElementIssueDate      ElementID = "DBD"
	ElementHeight         ElementID = "DAU"
	ElementEyeColor       ElementID = "DAY"
)

// DataElement is a single (id, value) record scanned from the payload body
type DataElement struct {
	ID    ElementID
	Value string
}

const recordSeparators = "\r\n"

// scanElements yields one DataElement per structurally valid record in body.
//
// Records are delimited by the AAMVA record separator (CR; LF also occurs
// between elements within a subfile, so both delimit). The first 3 characters
// of a record are its element ID, the remainder its raw value. Candidates
// shorter than 3 characters or without an upper-case letter prefix are
// skipped silently - this tolerates subfile-designator repeats, trailing
// segment terminators and vendor padding records. The returned sequence is
// lazy and restartable; it holds no state beyond the scan position.
func scanElements(body string) iter.Seq[DataElement] {
	return func(yield func(DataElement) bool) {
		for pos := 0; pos < len(body); {
			var candidate string
			if end := strings.IndexAny(body[pos:], recordSeparators); end < 0 {
				candidate = body[pos:]
				pos = len(body)
			} else {
				candidate = body[pos : pos+end]
				pos += end + 1
			}
			candidate = strings.Trim(candidate, "\x1e ")
			// the first record of a subfile is often glued to its designator
			// ("DLDAQ...") - strip the designator, not the element...
			if len(candidate) >= 5 && (candidate[:2] == "DL" || candidate[:2] == "ID") &&
				(candidate[2] == 'D' || candidate[2] == 'Z') {
				candidate = candidate[2:]
			}
			if len(candidate) < 3 || !isElementPrefix(candidate[:3]) {
				continue
			}
			if !yield(DataElement{ID: ElementID(candidate[:3]), Value: candidate[3:]}) {
				return
			}
		}
	}
}

func isElementPrefix(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Recognized reports whether the element ID is in the closed set this
// decoder maps to Identity fields - anything else present in a payload is
// retained raw and otherwise ignored
func (e ElementID) Recognized() bool {
	switch e {
	case ElementFamilyName, ElementFirstName, ElementMiddleName, ElementFullName,
		ElementDateOfBirth, ElementStreetAddress, ElementCity, ElementState,
		ElementPostalCode, ElementCustomerID, ElementExpirationDate,
		ElementIssueDate, ElementHeight, ElementEyeColor:
		return true
	}
	return false
}
