package middlewares

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
)

type clientIpContextKey string

const ClientIpKey = clientIpContextKey("requestClientIp")

// ClientIpMiddleware resolves the address the rate limiter keys on and
// stores it in the request context. When trust-proxy is enabled the first
// entry of X-Forwarded-For wins, falling back to X-Real-Ip, then to the
// socket's remote address. Without a trusted proxy the headers are ignored
// since any client can set them.
func ClientIpMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := resolveClientIp(cfg, r)
			ctx := context.WithValue(r.Context(), ClientIpKey, ip)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientIp returns the resolved client address, empty if the middleware
// did not run.
func GetClientIp(ctx context.Context) string {
	ip, ok := ctx.Value(ClientIpKey).(string)
	if !ok {
		return ""
	}
	return ip
}

func resolveClientIp(cfg *config.Config, r *http.Request) string {
	if cfg.Server.TrustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			// The first entry is the original client, later entries are
			// the proxies the request passed through.
			first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
			if first != "" {
				return first
			}
		}
		if realIp := strings.TrimSpace(r.Header.Get("X-Real-Ip")); realIp != "" {
			return realIp
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
