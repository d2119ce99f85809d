package device

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"ainadeul/pkg/requestcontext"
)

const (
	iPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	desktopUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	botUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassMobile, Classify(iPhoneUA))
	assert.Equal(t, ClassDesktop, Classify(desktopUA))
	assert.Equal(t, ClassBot, Classify(botUA))
	assert.Equal(t, ClassUnknown, Classify("  "))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Unknown Device", DisplayName(""))
	assert.Contains(t, DisplayName(desktopUA), "Chrome")
}

func TestMiddleware(t *testing.T) {
	var captured string
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = requestcontext.DeviceClass(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/places", nil)
	req = req.WithContext(requestcontext.WithClientMetadata(context.Background(), "10.0.0.1", iPhoneUA))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, ClassMobile, captured)
}
