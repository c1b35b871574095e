package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port             string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	JWTSecret        string
	WorkerCount      int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "8898",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		JWTSecret:        "development-secret",
		WorkerCount:      4,
	}

	envPort := os.Getenv("PORT")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envJWTSecret := os.Getenv("JWT_SECRET")
	envWorkerCount := os.Getenv("WORKER_COUNT")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envJWTSecret) != 0 {
		env.JWTSecret = envJWTSecret
	}

	if len(envWorkerCount) != 0 {
		count, err := strconv.Atoi(envWorkerCount)
		if err != nil {
			return nil, err
		}
		env.WorkerCount = count
	}

	return &env, nil
}
