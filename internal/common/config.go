package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Ledger   LedgerConfig
	Storage  StorageConfig
	Extract  ExtractConfig
	// EncryptionKey is the single symmetric deployment secret. Per-document
	// keys are derived from it with a fresh scrypt salt on every encryption.
	EncryptionKey string
}

// DatabaseConfig holds metadata store configuration.
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds gRPC server configuration.
type ServerConfig struct {
	GRPCAddr string
}

// LedgerConfig holds ledger RPC configuration.
type LedgerConfig struct {
	RPCURL          string
	ContractAddress string
	// UploaderAddress is the node-held signing account transactions are sent
	// from. It must hold the uploader role on the contract.
	UploaderAddress string
	// PermissionTimeout bounds the hasRole call; it is deliberately shorter
	// than AnchorTimeout since a role read should be fast.
	PermissionTimeout time.Duration
	AnchorTimeout     time.Duration
	ReceiptInterval   time.Duration
}

// StorageConfig holds content-addressed store configuration.
type StorageConfig struct {
	APIURL      string
	PutTimeout  time.Duration
	GetTimeout  time.Duration
	MaxAttempts int
	BackoffBase time.Duration
}

// ExtractConfig holds text extraction configuration.
type ExtractConfig struct {
	Pdftotext   string
	MaxFileSize int64
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Ledger: LedgerConfig{
			RPCURL:            getEnv("RPC_URL", ""),
			ContractAddress:   getEnv("CONTRACT_ADDRESS", ""),
			UploaderAddress:   getEnv("UPLOADER_ADDRESS", ""),
			PermissionTimeout: getEnvAsDuration("LEDGER_PERMISSION_TIMEOUT", 5*time.Second),
			AnchorTimeout:     getEnvAsDuration("LEDGER_ANCHOR_TIMEOUT", 90*time.Second),
			ReceiptInterval:   getEnvAsDuration("LEDGER_RECEIPT_INTERVAL", 2*time.Second),
		},
		Storage: StorageConfig{
			APIURL:      getEnv("IPFS_API_URL", "http://127.0.0.1:5001"),
			PutTimeout:  getEnvAsDuration("STORE_PUT_TIMEOUT", 30*time.Second),
			GetTimeout:  getEnvAsDuration("STORE_GET_TIMEOUT", 30*time.Second),
			MaxAttempts: getEnvAsInt("STORE_MAX_ATTEMPTS", 3),
			BackoffBase: getEnvAsDuration("STORE_BACKOFF_BASE", 200*time.Millisecond),
		},
		Extract: ExtractConfig{
			Pdftotext:   getEnv("PDFTOTEXT_BIN", "pdftotext"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 5<<20),
			Timeout:     getEnvAsDuration("EXTRACT_TIMEOUT", 60*time.Second),
		},
		EncryptionKey: getEnv("ENCRYPTION_KEY", ""),
	}
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate enforces the required secrets and endpoints. The process refuses
// to start when any of these is absent.
func (c *Config) Validate() error {
	required := []struct{ name, value string }{
		{"DB_URL", c.Database.DSN},
		{"RPC_URL", c.Ledger.RPCURL},
		{"CONTRACT_ADDRESS", c.Ledger.ContractAddress},
		{"UPLOADER_ADDRESS", c.Ledger.UploaderAddress},
		{"ENCRYPTION_KEY", c.EncryptionKey},
		{"IPFS_API_URL", c.Storage.APIURL},
		{"GRPC_ADDR", c.Server.GRPCAddr},
	}
	for _, r := range required {
		if r.value == "" {
			return NewAppError(ErrInput, "CONFIG_ERROR", r.name+" is required", nil)
		}
	}
	return nil
}
