// Package device classifies the calling device from its User-Agent.
package device

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"ainadeul/pkg/requestcontext"
)

const (
	ClassMobile  = "mobile"
	ClassDesktop = "desktop"
	ClassBot     = "bot"
	ClassUnknown = "unknown"
)

// Classify maps a User-Agent string to one of the device classes.
func Classify(userAgentString string) string {
	if strings.TrimSpace(userAgentString) == "" {
		return ClassUnknown
	}
	ua := useragent.New(userAgentString)
	switch {
	case ua.Bot():
		return ClassBot
	case ua.Mobile():
		return ClassMobile
	default:
		return ClassDesktop
	}
}

// DisplayName returns "Browser on OS" (e.g. "Chrome on macOS") for session listings.
func DisplayName(userAgentString string) string {
	if userAgentString == "" {
		return "Unknown Device"
	}

	ua := useragent.New(userAgentString)
	browser, _ := ua.Browser()
	os := ua.OS()

	if ua.Mobile() {
		if platform := ua.Platform(); platform != "" {
			return strings.TrimSpace(browser + " on " + platform)
		}
	}
	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}
	return strings.TrimSpace(browser + " on " + os)
}

// Middleware stores the device class in the request context. It must run after
// the metadata middleware, which extracts the User-Agent.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithDeviceClass(r.Context(), Classify(requestcontext.UserAgent(r.Context())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
