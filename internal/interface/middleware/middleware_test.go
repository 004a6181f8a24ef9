package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def", "abc.def"},
		{"bearer   abc ", "abc"},
		{"Basic dXNlcjpwdw==", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			r := gin.New()
			var got string
			r.GET("/", BearerToken(), func(c *gin.Context) {
				got = Bearer(c)
				c.Status(http.StatusNoContent)
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBearer_WithoutMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer tok")
	assert.Equal(t, "tok", Bearer(c))
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	var got string
	r.GET("/", func(c *gin.Context) { got = c.GetString(CtxRequestIDKey) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, got, w.Header().Get(HeaderRequestID))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, incoming)
	serve(r, req)
	assert.Equal(t, incoming, got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "<script>")
	serve(r, req)
	assert.NotEqual(t, "<script>", got)
}

func clientIPEngine(t *testing.T, proxies []string, platform string) (*gin.Engine, *[]string, *[]bool) {
	t.Helper()
	r := gin.New()
	require.NoError(t, ConfigureClientIP(r, proxies, platform))
	r.Use(RealIP())
	keys, allowed := &[]string{}, &[]bool{}
	r.POST("/api/chat", func(c *gin.Context) {
		*keys = append(*keys, KeyByIPAndPath()(c))
		*allowed = append(*allowed, AllowPrivateIP()(c))
	})
	return r, keys, allowed
}

func fromPeer(peer string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.RemoteAddr = peer + ":40000"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestRealIP_UntrustedPeerCannotSpoof(t *testing.T) {
	r, keys, allowed := clientIPEngine(t, nil, "")

	serve(r, fromPeer("203.0.113.9", map[string]string{"X-Forwarded-For": "1.1.1.1"}))
	serve(r, fromPeer("203.0.113.9", map[string]string{"X-Forwarded-For": "2.2.2.2"}))
	serve(r, fromPeer("203.0.113.9", map[string]string{"X-Forwarded-For": "10.0.0.1", "X-Real-IP": "127.0.0.1"}))
	serve(r, fromPeer("203.0.113.9", map[string]string{"CF-Connecting-IP": "192.168.1.1"}))

	for _, k := range *keys {
		assert.Equal(t, "rl:path:/api/chat:ip:203.0.113.9", k)
	}
	for _, a := range *allowed {
		assert.False(t, a)
	}
}

func TestRealIP_TrustedProxyForwards(t *testing.T) {
	r, keys, _ := clientIPEngine(t, []string{"10.0.0.0/8"}, "")

	serve(r, fromPeer("10.1.2.3", map[string]string{"X-Forwarded-For": "198.51.100.7"}))
	serve(r, fromPeer("203.0.113.9", map[string]string{"X-Forwarded-For": "198.51.100.7"}))

	require.Len(t, *keys, 2)
	assert.Equal(t, "rl:path:/api/chat:ip:198.51.100.7", (*keys)[0])
	assert.Equal(t, "rl:path:/api/chat:ip:203.0.113.9", (*keys)[1])
}

func TestRealIP_CloudflarePlatform(t *testing.T) {
	r, keys, _ := clientIPEngine(t, nil, "cloudflare")
	serve(r, fromPeer("203.0.113.9", map[string]string{"CF-Connecting-IP": "198.51.100.7"}))
	require.Len(t, *keys, 1)
	assert.Equal(t, "rl:path:/api/chat:ip:198.51.100.7", (*keys)[0])
}

func TestConfigureClientIP_Invalid(t *testing.T) {
	assert.Error(t, ConfigureClientIP(gin.New(), []string{"not-an-ip"}, ""))
	assert.Error(t, ConfigureClientIP(gin.New(), nil, "akamai"))
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()
	for ip, want := range map[string]bool{"127.0.0.1": true, "10.1.2.3": true, "192.168.0.9": true, "203.0.113.7": false, "bogus": false} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set(CtxRealIPKey, ip)
		assert.Equal(t, want, allow(c), ip)
	}
}

func TestKeyByBearer(t *testing.T) {
	r := gin.New()
	var keys []string
	r.POST("/api/chat", BearerToken(), func(c *gin.Context) { keys = append(keys, KeyByBearer()(c)) })

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	serve(r, req)
	serve(r, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	require.Len(t, keys, 2)
	assert.Contains(t, keys[0], "rl:path:/api/chat:tok:")
	assert.NotContains(t, keys[0], "secret-token")
	assert.Equal(t, "rl:path:/api/chat:anon:ip:192.0.2.1", keys[1])
}

func TestRateLimit_PassThrough(t *testing.T) {
	for name, mw := range map[string]gin.HandlerFunc{
		"nil redis": RateLimit(nil, 1, time.Minute, KeyByIP(), nil),
		"zero max":  RateLimit(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), 0, time.Minute, KeyByIP(), nil),
	} {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", mw, func(c *gin.Context) { c.Status(http.StatusOK) })
			for i := 0; i < 3; i++ {
				assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
			}
		})
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer func() { _ = rdb.Close() }()

	r := gin.New()
	r.GET("/", RateLimit(rdb, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}
