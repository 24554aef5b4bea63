package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	hashTokenSeparator = ";"
	hashPairSeparator  = "="
)

var hashTokenPattern = regexp.MustCompile(`^([^=]+)=(.+)$`)

// SerializeRelationHash encodes a parameter combination as its canonical key:
// keys get an upper-case first letter, tokens "Key=Value" are sorted and joined with ";".
// The result does not depend on map iteration order.
func SerializeRelationHash(parameters map[string]string) string {
	tokens := make([]string, 0, len(parameters))
	for name, value := range parameters {
		tokens = append(tokens, NormalizeParameterName(name)+hashPairSeparator+value)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, hashTokenSeparator)
}

// DeserializeRelationHash decodes a relation hash. The empty hash is a variant without parameters.
func DeserializeRelationHash(hash string) (map[string]string, error) {
	parameters := make(map[string]string)
	if hash == "" {
		return parameters, nil
	}
	for _, token := range strings.Split(hash, hashTokenSeparator) {
		m := hashTokenPattern.FindStringSubmatch(token)
		if m == nil {
			return nil, fmt.Errorf("%w: token %q in hash %q", ErrInvalidRelationHash, token, hash)
		}
		parameters[m[1]] = m[2]
	}
	return parameters, nil
}

// NormalizeParameterName upper-cases the first letter of a parameter name.
func NormalizeParameterName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// checkHashable rejects names and values that would not survive a round trip.
func checkHashable(parameters map[string]string) error {
	for name, value := range parameters {
		if name == "" || strings.ContainsAny(name, hashTokenSeparator+hashPairSeparator) {
			return fmt.Errorf("%w: name %q", ErrInvalidParameter, name)
		}
		if value == "" || strings.Contains(value, hashTokenSeparator) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidParameter, name, value)
		}
	}
	return nil
}
