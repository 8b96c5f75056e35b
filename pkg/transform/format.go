package transform

import (
	"net/url"
	"strings"
)

// NormalizeEmail lowercases and collapses repeated dots in the local part.
// Input that is not a single-@ address is only trimmed and lowercased.
var NormalizeEmail = String(func(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
})

// NormalizePhone keeps digits and the leading plus sign.
var NormalizePhone = String(func(phone string) string {
	cleaned := nonDigitRegex.ReplaceAllString(phone, "")
	if cleaned == "" {
		return ""
	}
	// Only a leading plus is meaningful.
	return cleaned[:1] + strings.ReplaceAll(cleaned[1:], "+", "")
})

// NormalizeURL assumes https, lowercases the host and drops a bare trailing slash.
// Unparseable input is returned trimmed.
var NormalizeURL = String(func(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsedURL.Host = strings.ToLower(parsedURL.Host)
	if parsedURL.Path == "/" {
		parsedURL.Path = ""
	}

	return parsedURL.String()
})
