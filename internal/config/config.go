package config

const defaultSqlDsn = "host=127.0.0.1 user=postgres password=postgres dbname=jobpulse port=5432 sslmode=disable TimeZone=UTC"

type DBConfig struct {
	DSN          string `yaml:"dsn"`
	MaxIdleConns int    `yaml:"maxIdleConns"`
	MaxOpenConns int    `yaml:"maxOpenConns"`
	MaxLifetime  int    `yaml:"maxLifetime"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

type Config struct {
	Addr      string     `yaml:"addr"`
	SSLCert   string     `yaml:"sslCert"`
	SSLKey    string     `yaml:"sslKey"`
	StaticDir string     `yaml:"staticDir"`
	DB        DBConfig   `yaml:"db"`
	CORS      CORSConfig `yaml:"cors"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:      "127.0.0.1:8081",
		StaticDir: "./dashboard/build",
		DB: DBConfig{
			DSN:          defaultSqlDsn,
			MaxIdleConns: 100,
			MaxOpenConns: 1000,
			MaxLifetime:  60,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
	}
}
