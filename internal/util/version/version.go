package version

import "strings"

// Compare returns -1, 0 or +1 depending on whether a is lower than, equal to
// or greater than b.
//
// Both segments numeric: integer comparison ("1.10" > "1.9"). Otherwise the
// segments compare lexicographically ("1.0a" < "1.0b", "1.rc" > "1.2").
// Missing and empty segments count as "0", so "1" == "1.0" == "1.0.0" and
// "1..2" == "1.0.2".
func Compare(a, b string) int {
	as := segments(a)
	bs := segments(b)

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		if c := compareSegment(segmentAt(as, i), segmentAt(bs, i)); c != 0 {
			return c
		}
	}
	return 0
}

// AtLeast reports whether v satisfies the minimum version minVersion.
func AtLeast(v, minVersion string) bool {
	return Compare(v, minVersion) >= 0
}

func segments(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return strings.Split(v, ".")
}

func segmentAt(s []string, i int) string {
	if i < len(s) && s[i] != "" {
		return s[i]
	}
	return "0"
}

func compareSegment(a, b string) int {
	if isNumeric(a) && isNumeric(b) {
		return compareNumeric(a, b)
	}
	return strings.Compare(a, b)
}

// compareNumeric compares digit strings of arbitrary length without
// converting them, so oversized segments cannot overflow.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
