package aamva

// ParseOptions represents the parsing options passed to Parse
type ParseOptions struct {
	// ErrorOnUnknownElements determines whether element IDs outside the
	// recognized set cause an error on parse
	//
	// the default is false - unknown elements are retained raw (see
	// Identity.Element) and otherwise ignored, since issuers routinely add
	// jurisdiction-specific elements
	ErrorOnUnknownElements bool
	// RequireDateOfBirth determines whether a missing date of birth, or one
	// that resolves to no valid calendar date, fails the parse
	//
	// the default is false - the date of birth degrades to an absent field
	// like any other optional element
	//
	// callers feeding an age-verification flow will usually want true
	RequireDateOfBirth bool
}

// Parse decodes a raw AAMVA DL/ID barcode payload - the character string
// recovered from the PDF-417 symbol - into an Identity.
//
// if the ParseOptions supplied is nil, default (lenient) options are used.
//
// The payload must begin with the AAMVA compliance/issuer header; beyond
// that, missing optional elements become absent fields rather than errors -
// which elements are populated varies by jurisdiction and document revision.
func Parse(raw string, options *ParseOptions) (*Identity, error) {
	if options == nil {
		options = &ParseOptions{}
	}
	hdr, body, err := validateHeader(raw)
	if err != nil {
		return nil, err
	}
	return extract(hdr, scanElements(body), options)
}
