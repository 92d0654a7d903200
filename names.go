package aamva

import "strings"

// nameCase renders an upper-case transmitted name in conventional mixed case.
//
// AAMVA names arrive all-caps; each whitespace- or hyphen-separated token is
// title-cased, with the "MC" surname particle ("MCDONALD" -> "McDonald") and
// post-apostrophe capitals ("O'BRIEN" -> "O'Brien") handled specially.
// Applying nameCase to an already-cased name is a no-op.
func nameCase(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || raw[i] == ' ' || raw[i] == '\t' || raw[i] == '-' {
			sb.WriteString(caseToken(raw[start:i]))
			if i < len(raw) {
				sb.WriteByte(raw[i])
			}
			start = i + 1
		}
	}
	return sb.String()
}

func caseToken(token string) string {
	if token == "" {
		return ""
	}
	// apostrophe-joined segments are cased independently...
	segments := strings.Split(token, "'")
	for i, segment := range segments {
		if len(segment) > 2 && strings.EqualFold(segment[:2], "mc") {
			segments[i] = "Mc" + titled(segment[2:])
		} else {
			segments[i] = titled(segment)
		}
	}
	return strings.Join(segments, "'")
}

func titled(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// splitFullName splits a composite DAA value ("LAST,FIRST[,MIDDLE]") into its
// cased parts - a missing segment comes back empty
func splitFullName(composite string) (last, first, middle string) {
	parts := strings.Split(composite, ",")
	last = nameCase(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		first = nameCase(strings.TrimSpace(parts[1]))
	}
	if len(parts) > 2 {
		middle = nameCase(strings.TrimSpace(parts[2]))
	}
	return last, first, middle
}
