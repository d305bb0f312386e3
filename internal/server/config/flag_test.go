package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
	os.Args = []string{"cmd", "-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "30"}

	config := &Config{}
	require.NotPanics(t, func() { parseFlags(config) })

	assert.Equal(t, "127.0.0.1:9090", config.EndpointAddrHTTP)
	assert.Equal(t, "db", config.DatabaseDSN)
	assert.Equal(t, "secret", config.SecretKey)
	assert.Equal(t, 30*time.Minute, config.AccessTokenValidityDuration)
}

func TestParseFlags_KeepsExistingValues(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"cmd"}

	config := &Config{
		EndpointAddrHTTP:            ":7070",
		DatabaseDSN:                 "keep",
		SecretKey:                   "keep-key",
		AccessTokenValidityDuration: 10 * time.Minute,
	}
	parseFlags(config)

	assert.Equal(t, ":7070", config.EndpointAddrHTTP)
	assert.Equal(t, "keep", config.DatabaseDSN)
	assert.Equal(t, "keep-key", config.SecretKey)
	assert.Equal(t, 10*time.Minute, config.AccessTokenValidityDuration)
}
