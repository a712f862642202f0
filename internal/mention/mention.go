// Package mention extracts @name tokens from message bodies.
package mention

import "regexp"

var tokenRe = regexp.MustCompile(`@(\w+)`)

// Extract returns the @name tokens found in body, in order of appearance,
// without the @ prefix. A token is @ followed by one or more word
// characters (letters, digits, underscore). Tokens are captured raw;
// resolving them against the identity directory happens at send time.
func Extract(body string) []string {
	matches := tokenRe.FindAllStringSubmatch(body, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}
