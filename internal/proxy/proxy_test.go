package proxy_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/Sepsepi/blakeaddr/internal/proxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	t.Parallel()
	logger := slog.Default()

	t.Run("empty configuration", func(t *testing.T) {
		t.Parallel()
		pool := proxy.NewPool("", logger)

		assert.False(t, pool.Enabled())
		assert.Zero(t, pool.Count())
		assert.Nil(t, pool.Random())
		assert.Nil(t, pool.Next())
		assert.Nil(t, pool.SessionProxy())
	})

	t.Run("authenticated and open proxies", func(t *testing.T) {
		t.Parallel()
		pool := proxy.NewPool("p1.example.com:8000:user:secret, p2.example.com:9000", logger)

		require.True(t, pool.Enabled())
		assert.Equal(t, 2, pool.Count())
	})

	t.Run("malformed entries are skipped", func(t *testing.T) {
		t.Parallel()
		pool := proxy.NewPool("justahost, p1.example.com:8000", logger)

		assert.Equal(t, 1, pool.Count())
		assert.Equal(t, "http://p1.example.com:8000", pool.Next().Server)
	})
}

func TestPool_Next_RoundRobin(t *testing.T) {
	t.Parallel()
	pool := proxy.NewPool("a.example.com:1:u:p,b.example.com:2:u:p", slog.Default())

	first := pool.Next()
	second := pool.Next()
	third := pool.Next()

	require.NotNil(t, first)
	assert.Equal(t, "http://a.example.com:1", first.Server)
	assert.Equal(t, "http://b.example.com:2", second.Server)
	assert.Equal(t, first.Server, third.Server)
}

func TestPool_SessionProxy(t *testing.T) {
	t.Parallel()
	pool := proxy.NewPool("a.example.com:1:user:secret", slog.Default())

	prx := pool.SessionProxy()
	require.NotNil(t, prx)
	assert.Equal(t, "user", prx.Username)
	assert.True(t, strings.HasPrefix(prx.Password, "secret_session-batch_"), "password %q", prx.Password)

	// A second session must not stack suffixes onto the stored password.
	again := pool.SessionProxy()
	require.NotNil(t, again)
	assert.True(t, strings.HasPrefix(again.Password, "secret_session-batch_"), "password %q", again.Password)
	assert.Equal(t, 1, strings.Count(again.Password, "_session-"))
}
