package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nopLogger{})
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Http.Port)
	assert.Equal(t, 5*time.Second, cfg.Http.ReadTimeout)
	assert.Equal(t, CatalogBackendMemory, cfg.Catalog.Backend)
	assert.Equal(t, int64(1), cfg.Order.DemoUserID)

	// Опциональные секции выключены без соответствующих переменных
	assert.Nil(t, cfg.Db)
	assert.Nil(t, cfg.Redis)
	assert.Nil(t, cfg.Kafka)
	assert.Nil(t, cfg.Minio)
}

func TestLoad_PostgresBackendRequiresCredentials(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", CatalogBackendPostgres)

	_, err := Load(nopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_USER")
}

func TestLoad_PostgresBackend(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", CatalogBackendPostgres)
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "catalog")

	cfg, err := Load(nopLogger{})
	require.NoError(t, err)

	require.NotNil(t, cfg.Db)
	assert.Equal(t, "localhost", cfg.Db.Host)
	assert.Equal(t, "5432", cfg.Db.Port)
	assert.Equal(t, "disable", cfg.Db.SSLMode)
}

func TestLoad_InvalidCatalogBackend(t *testing.T) {
	t.Setenv("CATALOG_BACKEND", "sqlite")

	_, err := Load(nopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_BACKEND")
}

func TestLoad_OptionalSections(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")

	cfg, err := Load(nopLogger{})
	require.NoError(t, err)

	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3*time.Minute, cfg.Redis.ProductTTL)

	require.NotNil(t, cfg.Kafka)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "order.placed", cfg.Kafka.Topic)

	require.NotNil(t, cfg.Minio)
	assert.Equal(t, 15*time.Minute, cfg.Minio.URLExpiry)
}

func TestLoad_DemoUserOverride(t *testing.T) {
	t.Setenv("DEMO_USER_ID", "42")

	cfg, err := Load(nopLogger{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Order.DemoUserID)
}
