// Package aamva decodes AAMVA DL/ID Card Design Standard barcode payloads -
// the text recovered from the PDF-417 symbol on North American driver's
// licenses and identification cards - into a normalized Identity record.
//
// The decoder is a single-pass, stateless pipeline: the payload header
// (compliance preamble, "ANSI " issuer marker, IIN, subfile directory) is
// validated, the body is scanned into data element records, and recognized
// elements are normalized into an Identity. Missing optional elements become
// absent fields rather than errors - issuer field sets vary by jurisdiction
// and by document revision, so the decoder favors partial success over
// rejection. Name casing, date resolution and postal-code trimming are
// applied per element.
//
//	identity, err := aamva.Parse(scanned, nil)
//	if err != nil {
//	    // re-scan - malformed payloads are a permanent failure for that scan
//	}
//	fmt.Println(identity.LastName, identity.DateOfBirth)
//
// Parse is safe for concurrent use; each call is independent and performs
// no I/O.
package aamva
