package errors

import (
	"net/url"
	"regexp"
	"strings"
)

// idSlugRegex matches Modrinth base62 ids, project slugs, and usernames.
var idSlugRegex = regexp.MustCompile("^[\\w!@$()`.+,\"\\-']{3,64}$")

// hexRegex matches lowercase or uppercase hexadecimal digests.
var hexRegex = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// hashLengths maps supported file hash algorithms to their hex digest length.
var hashLengths = map[string]int{
	"sha1":   40,
	"sha512": 128,
}

// ValidateID validates an id, slug, or username before it is placed in a URL path.
//
// The rules follow the remote service's slug constraints:
//   - 3 to 64 characters
//   - letters, digits, underscore and the punctuation !@$()`.+,"-'
//
// In particular this rejects empty strings, whitespace, and path separators.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id or slug cannot be empty")
	}
	if !idSlugRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid id or slug: %q", id)
	}
	return nil
}

// ValidateIDs validates a non-empty list of ids.
func ValidateIDs(ids []string) error {
	if len(ids) == 0 {
		return New(ErrCodeInvalidInput, "at least one id is required")
	}
	for _, id := range ids {
		if err := ValidateID(id); err != nil {
			return err
		}
	}
	return nil
}

// ValidateHash validates a file digest for the given algorithm ("sha1" or "sha512").
func ValidateHash(hash, algorithm string) error {
	want, ok := hashLengths[algorithm]
	if !ok {
		return New(ErrCodeInvalidInput, "unsupported hash algorithm: %q", algorithm)
	}
	if len(hash) != want || !hexRegex.MatchString(hash) {
		return New(ErrCodeInvalidInput, "invalid %s hash: %q", algorithm, hash)
	}
	return nil
}

// ValidateURL validates a base URL string.
// It must be absolute, use the http or https scheme, and name a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must include a host")
	}
	return nil
}
