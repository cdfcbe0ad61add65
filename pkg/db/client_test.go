package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulmenon/labtrack-backend/pkg/config"
)

func TestNewRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{}, nil)
	require.Error(t, err)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{
		DSN:    "host=localhost",
		Driver: "oracle",
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNewOpensSQLiteDriver(t *testing.T) {
	ctx := context.Background()

	client, err := New(ctx, config.DBConfig{
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		Driver: DriverSQLite,
	}, nil)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping(ctx))
	assert.NotNil(t, client.DB())
}
