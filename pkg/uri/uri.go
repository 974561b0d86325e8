// Package uri provides a mutable URI value that can be used wherever an href
// is expected. It stringifies to its canonical form, so the href guard checks
// exactly what ends up in the markup.
package uri

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// URI is a thin, chainable wrapper over url.URL.
type URI struct {
	u url.URL
}

// Parse parses raw into a URI.
func Parse(raw string) (*URI, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("uri: parse %q: %w", raw, err)
	}
	return &URI{u: *parsed}, nil
}

// MustParse is Parse that panics on error. Useful for literals.
func MustParse(raw string) *URI {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// String returns the canonical form of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.u.String()
}

// Protocol returns the scheme.
func (u *URI) Protocol() string { return u.u.Scheme }

// SetProtocol replaces the scheme.
func (u *URI) SetProtocol(protocol string) *URI {
	u.u.Scheme = strings.TrimSuffix(strings.ToLower(protocol), "://")
	return u
}

// User returns the username, if any.
func (u *URI) User() string {
	if u.u.User == nil {
		return ""
	}
	return u.u.User.Username()
}

// SetUser replaces the username, keeping any password.
func (u *URI) SetUser(user string) *URI {
	pass, hasPass := u.password()
	u.u.User = userinfo(user, pass, hasPass)
	return u
}

// Pass returns the password, if any.
func (u *URI) Pass() string {
	pass, _ := u.password()
	return pass
}

// SetPass replaces the password. An empty password removes it.
func (u *URI) SetPass(pass string) *URI {
	u.u.User = userinfo(u.User(), pass, pass != "")
	return u
}

// Domain returns the host without the port.
func (u *URI) Domain() string { return u.u.Hostname() }

// SetDomain replaces the host, keeping the port.
func (u *URI) SetDomain(domain string) *URI {
	u.u.Host = joinHost(domain, u.u.Port())
	return u
}

// Port returns the port, or 0 when none is set.
func (u *URI) Port() int {
	port, err := strconv.Atoi(u.u.Port())
	if err != nil {
		return 0
	}
	return port
}

// SetPort replaces the port. Zero removes it.
func (u *URI) SetPort(port int) *URI {
	p := ""
	if port > 0 {
		p = strconv.Itoa(port)
	}
	u.u.Host = joinHost(u.u.Hostname(), p)
	return u
}

// Path returns the decoded path.
func (u *URI) Path() string { return u.u.Path }

// SetPath replaces the path.
func (u *URI) SetPath(p string) *URI {
	u.u.Path = p
	u.u.RawPath = ""
	return u
}

// AppendPath joins p onto the current path with a single slash.
func (u *URI) AppendPath(p string) *URI {
	if p == "" {
		return u
	}
	base := u.u.Path
	if base == "" {
		base = "/"
	}
	joined := path.Join(base, p)
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return u.SetPath(joined)
}

// QueryParams returns the first value for every query key.
func (u *URI) QueryParams() map[string]string {
	values := u.u.Query()
	out := make(map[string]string, len(values))
	for key := range values {
		out[key] = values.Get(key)
	}
	return out
}

// SetQueryParam sets key to value. An empty value removes the key.
func (u *URI) SetQueryParam(key, value string) *URI {
	values := u.u.Query()
	if value == "" {
		values.Del(key)
	} else {
		values.Set(key, value)
	}
	u.u.RawQuery = values.Encode()
	return u
}

// SetQueryParams replaces the whole query string.
func (u *URI) SetQueryParams(params map[string]string) *URI {
	values := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		values.Set(key, value)
	}
	u.u.RawQuery = values.Encode()
	return u
}

// Fragment returns the fragment without the leading '#'.
func (u *URI) Fragment() string { return u.u.Fragment }

// SetFragment replaces the fragment.
func (u *URI) SetFragment(fragment string) *URI {
	u.u.Fragment = strings.TrimPrefix(fragment, "#")
	u.u.RawFragment = ""
	return u
}

func (u *URI) password() (string, bool) {
	if u.u.User == nil {
		return "", false
	}
	return u.u.User.Password()
}

func userinfo(user, pass string, hasPass bool) *url.Userinfo {
	switch {
	case user == "" && !hasPass:
		return nil
	case hasPass:
		return url.UserPassword(user, pass)
	default:
		return url.User(user)
	}
}

func joinHost(host, port string) string {
	if port == "" {
		if strings.Contains(host, ":") {
			return "[" + host + "]"
		}
		return host
	}
	return net.JoinHostPort(host, port)
}
