package aamva

import "time"

const isoDate = "2006-01-02"

// the AAMVA standard leaves the 8-digit date layout issuer-dependent -
// month-first (MMDDCCYY) is the common US case, a minority of issuers use
// calendar order (CCYYMMDD) - so layouts are tried in that order and the
// first real calendar date wins
var dateLayouts = []string{"01022006", "20060102"}

// resolveDate resolves a raw 8-digit AAMVA date field to canonical
// YYYY-MM-DD, or "" when neither layout yields a valid calendar date
func resolveDate(raw string) string {
	if len(raw) != 8 {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(isoDate)
		}
	}
	return ""
}
