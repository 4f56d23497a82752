package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	Port string
}

// PostgresConfig holds the orders database connection settings.
type PostgresConfig struct {
	DSN string
}

// MySQLConfig holds the customers database connection settings.
type MySQLConfig struct {
	DSN string
}

// MongoConfig holds the catalog database connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// RetryConfig bounds the startup connect loop of every store adapter.
type RetryConfig struct {
	Attempts int
	Interval time.Duration
}

// LoadOrderDBConfig assembles the Postgres DSN for the orders service from the
// legacy environment variables (DB_HOST, DB_USER, DB_PASS, POSTGRES_DB).
func LoadOrderDBConfig() PostgresConfig {
	host := GetEnv("DB_HOST", "localhost")
	user := GetEnv("DB_USER", "admin")
	pass := GetEnv("DB_PASS", "segredo")
	name := GetEnv("POSTGRES_DB", "pedidos_db")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:5432/%s?sslmode=disable", user, pass, host, name)
	return PostgresConfig{DSN: dsn}
}

// LoadCustomerDBConfig assembles the MySQL DSN for the customers service.
func LoadCustomerDBConfig() MySQLConfig {
	host := GetEnv("DB_HOST", "localhost")
	user := GetEnv("DB_USER", "root")
	pass := GetEnv("DB_PASS", "segredo")
	name := GetEnv("MYSQL_DATABASE", "clientes_db")
	// parseTime so DATETIME/TIMESTAMP columns scan into time.Time
	dsn := fmt.Sprintf("%s:%s@tcp(%s:3306)/%s?parseTime=true", user, pass, host, name)
	return MySQLConfig{DSN: dsn}
}

// LoadCatalogDBConfig reads the MongoDB settings for the catalog service.
func LoadCatalogDBConfig() MongoConfig {
	return MongoConfig{
		URI:      GetEnv("DB_URI", "mongodb://localhost:27017/catalogo"),
		Database: GetEnv("DB_NAME", "catalogo"),
	}
}

func LoadServerConfig(defaultPort string) ServerConfig {
	port := defaultPort
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}
	return ServerConfig{Port: ":" + port}
}

// LoadRetryConfig bounds the store connect loop run before a service starts
// accepting traffic.
func LoadRetryConfig() RetryConfig {
	attempts := GetEnvAsInt("DB_CONNECT_ATTEMPTS", 10)
	intervalSec := GetEnvAsInt("DB_CONNECT_INTERVAL_SECONDS", 3)
	return RetryConfig{
		Attempts: attempts,
		Interval: time.Duration(intervalSec) * time.Second,
	}
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	strValue := GetEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
