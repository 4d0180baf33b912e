package postgres

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/pkg/config"
)

func TestNewPoolConfig_AplicaLimites(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: 5432, User: "app", DBName: "shop", SSLMode: "disable", MaxConns: 8, MinConns: 2}

	pc, err := newPoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, "shop", pc.ConnConfig.Database)
	assert.NotNil(t, pc.AfterConnect)
}

func TestNewPoolConfig_MinMayorQueMaxSeIgnora(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://app@db:5432/shop", MaxConns: 4, MinConns: 9}

	pc, err := newPoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, int32(0), pc.MinConns)
}

func TestNewPoolConfig_DSNInvalido(t *testing.T) {
	_, err := newPoolConfig(config.DBConfig{DatabaseURL: "postgres://app@db:notaport/shop"})
	assert.Error(t, err)
}

func TestLookupIPv4_Literales(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), net.DefaultResolver, "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = lookupIPv4(context.Background(), net.DefaultResolver, "::1")
	assert.Error(t, err)
}
