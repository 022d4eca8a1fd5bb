// Package cookie parses Cookie request headers and serializes Set-Cookie values.
package cookie

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidName is returned when a cookie name is empty or not an RFC 6265 token.
var ErrInvalidName = errors.New("invalid cookie name")

// SameSite is the value of the SameSite attribute.
type SameSite string

const (
	SameSiteDefault SameSite = ""
	SameSiteLax     SameSite = "Lax"
	SameSiteStrict  SameSite = "Strict"
	SameSiteNone    SameSite = "None"
)

// Options are the Set-Cookie attributes. Zero values are omitted.
// A negative MaxAge emits Max-Age=0, which deletes the cookie.
type Options struct {
	MaxAge   int
	Expires  time.Time
	Domain   string
	Path     string
	HTTPOnly bool
	Secure   bool
	SameSite SameSite
}

// Parse reads a Cookie header into a name to value mapping.
// The first occurrence of a name wins. Values are percent-decoded when they
// decode cleanly and kept verbatim otherwise.
func Parse(header string) map[string]string {
	cookies := make(map[string]string)

	for _, pair := range strings.Split(header, ";") {
		name, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := cookies[name]; seen {
			continue
		}

		cookies[name] = decodeValue(strings.TrimSpace(value))
	}

	return cookies
}

func decodeValue(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	if !strings.Contains(value, "%") {
		return value
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}

// Serialize builds a Set-Cookie header value. Parse(Serialize(name, value, opts))[name] == value.
func Serialize(name, value string, opts Options) (string, error) {
	if !isToken(name) {
		return "", errors.Wrapf(ErrInvalidName, "%q", name)
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(url.PathEscape(value))

	switch {
	case opts.MaxAge > 0:
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(opts.MaxAge))
	case opts.MaxAge < 0:
		b.WriteString("; Max-Age=0")
	}
	if !opts.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(opts.Expires.UTC().Format(http.TimeFormat))
	}
	if opts.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(opts.Domain)
	}
	if opts.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(opts.Path)
	}
	if opts.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	if opts.Secure {
		b.WriteString("; Secure")
	}
	if opts.SameSite != SameSiteDefault {
		b.WriteString("; SameSite=")
		b.WriteString(string(opts.SameSite))
	}

	return b.String(), nil
}

func isToken(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= ' ' || c >= 0x7f || strings.IndexByte(`()<>@,;:\"/[]?={}`, c) >= 0 {
			return false
		}
	}

	return true
}
