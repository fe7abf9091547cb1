package env

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

var Env map[string]string

// ErrNoEnvFile is returned when none of the expected .env locations exists
var ErrNoEnvFile = errors.New("no .env file found in any of the expected locations")

func GetEnv(key, def string) string {
	// First check our loaded Env map
	if val, ok := Env[key]; ok {
		return val
	}
	// Fallback to OS environment variables (for Docker/tests)
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// SetupEnvFile loads the first .env file found from the working directory upwards
func SetupEnvFile() error {
	// Look for .env file in project root
	envFiles := []string{
		".env",          // Current directory
		"../../.env",    // From cmd/newsfox to project root
		"../../../.env", // Fallback for deeper nesting
	}

	var err error
	for _, envFile := range envFiles {
		Env, err = godotenv.Read(envFile)
		if err == nil {
			// Successfully loaded env file
			return nil
		}
	}

	return ErrNoEnvFile
}

// MustSetupEnvFile is SetupEnvFile for binaries that cannot run without configuration
func MustSetupEnvFile() {
	if err := SetupEnvFile(); err != nil {
		panic(err)
	}
}

func IsDev() bool {
	return GetEnv("APP_ENV", "prod") == "dev"
}
