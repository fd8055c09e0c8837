package labels

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"k8s.io/apimachinery/pkg/util/validation"
)

// DefaultNamespace is the domain prefix put in front of every label key.
const DefaultNamespace = "ec2.amazonaws.com"

const (
	// replacement is written in place of every disallowed character.
	replacement = '-'

	// trimCutset is stripped from both ends of a sanitized token.
	trimCutset = "-_."

	pairSeparator = ","
)

// Tag is a single key/value pair as returned by the tagging API.
type Tag struct {
	Key   string
	Value string
}

// Tags is an ordered tag set. Order is significant: it is the order in which
// labels are emitted.
type Tags []Tag

// FilterTags returns the tags whose key starts with prefix, in their
// original order. An empty prefix keeps every tag. The input is not modified.
func FilterTags(tags Tags, prefix string) Tags {
	filtered := make(Tags, 0, len(tags))
	for _, tag := range tags {
		if strings.HasPrefix(tag.Key, prefix) {
			filtered = append(filtered, tag)
		}
	}
	return filtered
}

// Sanitize rewrites s into a label-safe token. Every code point outside
// [A-Za-z0-9._-] becomes a single '-', then leading and trailing '-', '_'
// and '.' are trimmed. Invalid UTF-8 is replaced one '-' per byte.
//
// The result may be empty.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isAllowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(replacement)
		}
		i += size
	}

	return strings.Trim(b.String(), trimCutset)
}

func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '_':
		return true
	}
	return false
}

// Label renders a single namespace/key=value pair with key and value
// sanitized.
func Label(namespace string, tag Tag) string {
	return namespace + "/" + Sanitize(tag.Key) + "=" + Sanitize(tag.Value)
}

// Format serializes tags into a comma-separated node label list, one
// namespace/key=value pair per tag in tag order. An empty tag set gives "".
func Format(tags Tags, namespace string) string {
	pairs := make([]string, 0, len(tags))
	for _, tag := range tags {
		pairs = append(pairs, Label(namespace, tag))
	}
	return strings.Join(pairs, pairSeparator)
}

// Validate checks every label Format would emit against the Kubernetes label
// syntax rules and returns one error per offending pair. It does not change
// what Format emits.
func Validate(tags Tags, namespace string) []error {
	var errs []error
	for _, tag := range tags {
		key := namespace + "/" + Sanitize(tag.Key)
		value := Sanitize(tag.Value)

		var problems []string
		problems = append(problems, validation.IsQualifiedName(key)...)
		problems = append(problems, validation.IsValidLabelValue(value)...)
		if len(problems) > 0 {
			errs = append(errs, fmt.Errorf("label %s=%s (from tag %q): %s",
				key, value, tag.Key, strings.Join(problems, "; ")))
		}
	}
	return errs
}

// ParsePairs builds an ordered tag set from key=value strings. Everything
// after the first '=' is the value; a pair without '=' gets an empty value.
func ParsePairs(pairs []string) Tags {
	tags := make(Tags, 0, len(pairs))
	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		tags = append(tags, Tag{Key: key, Value: value})
	}
	return tags
}
