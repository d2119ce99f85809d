// Package metadata records the caller's IP and User-Agent in the request
// context. The IP feeds the GeoIP current-location provider.
package metadata

import (
	"fmt"
	"net/http"
	"net/netip"
	"strings"

	"ainadeul/pkg/requestcontext"
)

// MaxForwardedLength bounds X-Forwarded-For and X-Real-IP before parsing.
const MaxForwardedLength = 500

const unknownIP = "unknown"

// Config lists the proxies allowed to report the client address. With no
// trusted proxies forwarding headers are ignored.
type Config struct {
	TrustedProxies []netip.Prefix
}

func DefaultConfig() *Config { return &Config{} }

// ParseTrustedProxies reads a comma separated list of CIDRs or bare
// addresses. Blank input yields an empty list.
func ParseTrustedProxies(csv string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.Contains(part, "/") {
			addr, err := netip.ParseAddr(part)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", part, err)
			}
			out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(part)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", part, err)
		}
		out = append(out, prefix.Masked())
	}
	return out, nil
}

type Middleware struct {
	trusted []netip.Prefix
}

func NewMiddleware(cfg *Config) *Middleware {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Middleware{trusted: cfg.TrustedProxies}
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), m.clientIP(r), r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP is the connection peer unless that peer is a trusted proxy, in
// which case the first X-Forwarded-For hop (or X-Real-IP) is used.
func (m *Middleware) clientIP(r *http.Request) string {
	peer, ok := peerAddr(r.RemoteAddr)
	if !ok {
		return unknownIP
	}
	if !m.trusts(peer) {
		return peer.String()
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if addr, ok := forwardedAddr(xff, first); ok {
			return addr.String()
		}
		return peer.String()
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if addr, ok := forwardedAddr(xri, xri); ok {
			return addr.String()
		}
	}
	return peer.String()
}

func forwardedAddr(header, candidate string) (netip.Addr, bool) {
	if len(header) > MaxForwardedLength {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(strings.TrimSpace(candidate))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func (m *Middleware) trusts(addr netip.Addr) bool {
	for _, p := range m.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// peerAddr parses RemoteAddr with or without a port.
func peerAddr(remote string) (netip.Addr, bool) {
	if remote == "" {
		return netip.Addr{}, false
	}
	if ap, err := netip.ParseAddrPort(remote); err == nil {
		return ap.Addr().Unmap(), true
	}
	addr, err := netip.ParseAddr(strings.Trim(remote, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
