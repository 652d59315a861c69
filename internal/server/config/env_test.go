package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_OverlaysValues(t *testing.T) {
	t.Setenv("ENDPOINT_ADDR_GRPC", "env.example:7000")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("SESSION_TOKEN_VALIDITY_DURATION", "48h")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "env.example:7000", cfg.EndpointAddrGRPC)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 48*time.Hour, cfg.SessionTokenValidityDuration)

	// untouched vars keep their defaults
	assert.Equal(t, "userdir", cfg.TokenIssuer)
}
