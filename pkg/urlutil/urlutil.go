package urlutil

import "net/url"

// Host extracts u's hostname, lowercased, for use as a dispatch key. It
// strips port and userinfo: two URLs that only differ in port or case
// still dispatch to the same host entry.
func Host(u *url.URL) string {
	return lowerASCII(u.Hostname())
}

// ParseHost parses raw as a bare host (optionally host:port) or a full
// URL and returns its lowercased hostname. It reports false if raw
// carries no host component at all.
func ParseHost(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
		return Host(u), true
	}
	if u, err := url.Parse("//" + raw); err == nil && u.Hostname() != "" {
		return Host(u), true
	}
	return "", false
}

// lowerASCII converts ASCII characters to lowercase without allocating
// when s is already lowercase.
func lowerASCII(s string) string {
	var needsLower bool
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			needsLower = true
			break
		}
	}
	if !needsLower {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
