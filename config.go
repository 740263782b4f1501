package srarq

import (
	"errors"

	"github.com/srarq/srarq/internal/protocol"
)

// Clone clones a Config
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

func validateConfig(config *Config) error {
	if config == nil {
		return nil
	}
	if config.InitialWindowSize < 0 {
		return errors.New("invalid value for Config.InitialWindowSize")
	}
	if config.MaxWindowSize < 0 {
		return errors.New("invalid value for Config.MaxWindowSize")
	}
	if config.InitialWindowSize > protocol.MaxWindowSize ||
		(config.MaxWindowSize > 0 && config.InitialWindowSize > config.MaxWindowSize) {
		return errors.New("Config.InitialWindowSize exceeds the maximum window size")
	}
	if config.RTTMargin < 0 {
		return errors.New("invalid value for Config.RTTMargin")
	}
	if config.HandshakeTimeout < 0 || config.MaxIdleTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	if config.MaxMessageSize < 0 {
		return errors.New("invalid value for Config.MaxMessageSize")
	}
	return nil
}

// populateConfig populates fields in the Config with their default values, if none are set
// it may be called with nil
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	maxWindow := config.MaxWindowSize
	if maxWindow == 0 || maxWindow > protocol.MaxWindowSize {
		maxWindow = protocol.MaxWindowSize
	}
	initialWindow := config.InitialWindowSize
	if initialWindow == 0 {
		initialWindow = min(protocol.InitialWindowSize, maxWindow)
	}
	rttMargin := protocol.DefaultRTTMargin
	if config.RTTMargin != 0 {
		rttMargin = config.RTTMargin
	}
	handshakeTimeout := protocol.DefaultHandshakeTimeout
	if config.HandshakeTimeout != 0 {
		handshakeTimeout = config.HandshakeTimeout
	}
	idleTimeout := protocol.DefaultIdleTimeout
	if config.MaxIdleTimeout != 0 {
		idleTimeout = config.MaxIdleTimeout
	}
	maxMessageSize := protocol.MaxMessageSize
	if config.MaxMessageSize != 0 {
		maxMessageSize = config.MaxMessageSize
	}

	return &Config{
		InitialWindowSize: initialWindow,
		MaxWindowSize:     maxWindow,
		RTTMargin:         rttMargin,
		HandshakeTimeout:  handshakeTimeout,
		MaxIdleTimeout:    idleTimeout,
		MaxMessageSize:    maxMessageSize,
		Tracer:            config.Tracer,
	}
}
