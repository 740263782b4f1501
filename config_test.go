package srarq

import (
	"context"
	"testing"
	"time"

	"github.com/srarq/srarq/internal/protocol"
	"github.com/srarq/srarq/logging"

	"github.com/stretchr/testify/require"
)

func TestConfigValidation(t *testing.T) {
	require.NoError(t, validateConfig(nil))
	require.NoError(t, validateConfig(&Config{}))
	require.NoError(t, validateConfig(&Config{InitialWindowSize: 8, MaxWindowSize: 8}))

	for _, tc := range []struct {
		name   string
		config *Config
	}{
		{name: "negative initial window", config: &Config{InitialWindowSize: -1}},
		{name: "negative max window", config: &Config{MaxWindowSize: -1}},
		{name: "initial window above max window", config: &Config{InitialWindowSize: 9, MaxWindowSize: 8}},
		{name: "initial window above protocol limit", config: &Config{InitialWindowSize: protocol.MaxWindowSize + 1}},
		{name: "negative RTT margin", config: &Config{RTTMargin: -time.Millisecond}},
		{name: "negative handshake timeout", config: &Config{HandshakeTimeout: -time.Second}},
		{name: "negative idle timeout", config: &Config{MaxIdleTimeout: -time.Second}},
		{name: "negative message size", config: &Config{MaxMessageSize: -1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, validateConfig(tc.config))
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	c := populateConfig(nil)
	require.Equal(t, protocol.InitialWindowSize, c.InitialWindowSize)
	require.Equal(t, protocol.MaxWindowSize, c.MaxWindowSize)
	require.Equal(t, 5*time.Millisecond, c.RTTMargin)
	require.Equal(t, 10*time.Second, c.HandshakeTimeout)
	require.Equal(t, 20*time.Second, c.MaxIdleTimeout)
	require.Equal(t, 1024, c.MaxMessageSize)
	require.Nil(t, c.Tracer)
}

func TestConfigPopulation(t *testing.T) {
	var called bool
	c := populateConfig(&Config{
		InitialWindowSize: 2,
		MaxWindowSize:     protocol.MaxWindowSize * 2,
		RTTMargin:         time.Millisecond,
		HandshakeTimeout:  time.Second,
		MaxIdleTimeout:    2 * time.Second,
		MaxMessageSize:    64,
		Tracer: func(context.Context, logging.Perspective) *logging.SessionTracer {
			called = true
			return nil
		},
	})
	require.Equal(t, protocol.WindowSize(2), c.InitialWindowSize)
	require.Equal(t, protocol.MaxWindowSize, c.MaxWindowSize)
	require.Equal(t, time.Millisecond, c.RTTMargin)
	require.Equal(t, time.Second, c.HandshakeTimeout)
	require.Equal(t, 2*time.Second, c.MaxIdleTimeout)
	require.Equal(t, 64, c.MaxMessageSize)
	require.NotNil(t, c.Tracer)
	c.Tracer(context.Background(), logging.PerspectiveSender)
	require.True(t, called)
}

func TestConfigInitialWindowLimitedByMaxWindow(t *testing.T) {
	c := populateConfig(&Config{MaxWindowSize: 2})
	require.Equal(t, protocol.WindowSize(2), c.InitialWindowSize)
	require.Equal(t, protocol.WindowSize(2), c.MaxWindowSize)
}

func TestConfigClone(t *testing.T) {
	c1 := &Config{MaxIdleTimeout: time.Second}
	c2 := c1.Clone()
	c2.MaxIdleTimeout = time.Minute
	require.Equal(t, time.Second, c1.MaxIdleTimeout)
}
