package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd",
		"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
		"-i", "issuer", "-u", "audience", "-t", "24",
	}

	config := &Config{}
	parseFlags(config)

	assert.Equal(t, "127.0.0.1:9090", config.EndpointAddrGRPC)
	assert.Equal(t, "db", config.DatabaseDSN)
	assert.Equal(t, "secret", config.SecretKey)
	assert.Equal(t, "issuer", config.TokenIssuer)
	assert.Equal(t, "audience", config.TokenAudience)
	assert.Equal(t, 24*time.Hour, config.SessionTokenValidityDuration)
}

func TestParseFlags_DefaultsPreservedWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, ":50051", config.EndpointAddrGRPC)
	assert.Equal(t, 7*24*time.Hour, config.SessionTokenValidityDuration)
}
