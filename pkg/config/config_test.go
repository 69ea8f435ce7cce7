package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 1000, cfg.Audit.Limit)
	assert.Empty(t, cfg.Report.CronSchedule, "la exportación programada está deshabilitada por defecto")
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "S3")
	v.Set("S3_BUCKET", "granja")
	v.Set("HTTP_PORT", "9090")
	v.Set("S3_PATH_STYLE", "true")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DriverS3, cfg.Storage.Driver)
	assert.Equal(t, "granja", cfg.S3.Bucket)
	assert.True(t, cfg.S3.PathStyle)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestFromViper_S3SinBucket(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "s3")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "redis")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "granja", Password: "p@ss:w/rd", DBName: "farm", SSLMode: "disable"}
	assert.Equal(t, "postgres://granja:p%40ss%3Aw%2Frd@db:5432/farm?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
