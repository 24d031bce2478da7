package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	} `mapstructure:"server"`

	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`

	Organisation struct {
		Name    string `mapstructure:"name"`
		Address string `mapstructure:"address"`
		Email   string `mapstructure:"email"`
	} `mapstructure:"organisation"`

	Client struct {
		Name    string `mapstructure:"name"`
		Via     string `mapstructure:"via"`
		JobType string `mapstructure:"job_type"`
	} `mapstructure:"client"`

	Dirs struct {
		IntakeLogs    string `mapstructure:"intake_logs"`
		PhotoEvidence string `mapstructure:"photo_evidence"`
		Certificates  string `mapstructure:"certificates"`
		Reports       string `mapstructure:"reports"`
	} `mapstructure:"dirs"`
}

// ComplianceStandards are printed on every certificate and report.
var ComplianceStandards = []string{
	"ISO 9001:2015 Quality Management",
	"WEEE Regulations 2013",
	"UK GDPR 2018",
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "ewaste_db")
	v.SetDefault("organisation.name", "Recycle-IT! CIC")
	v.SetDefault("organisation.address", "Bolton, UK")
	v.SetDefault("organisation.email", "recycle.it.cic@gmail.com")
	v.SetDefault("client.name", "Learning by Questions (LBQ)")
	v.SetDefault("client.via", "Logical BI Limited")
	v.SetDefault("client.job_type", "Free Secure Destruction Service")
	v.SetDefault("dirs.intake_logs", "intake_logs")
	v.SetDefault("dirs.photo_evidence", "photo_evidence")
	v.SetDefault("dirs.certificates", "certificates")
	v.SetDefault("dirs.reports", "reports")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override database settings from DB_* environment variables
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Database.Port = n
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}

	return &cfg
}

// DatabaseURL builds the pgx connection string from the database settings.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// EnsureDirs creates the artifact directories. Front ends call this once at
// startup; nothing is created as an import side effect.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{
		c.Dirs.IntakeLogs,
		c.Dirs.PhotoEvidence,
		c.Dirs.Certificates,
		c.Dirs.Reports,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// ResolveDirs rebases the artifact directories onto the given root. The CLI
// uses this to keep one job's artifacts under a single folder.
func (c *Config) ResolveDirs(root string) {
	if root == "" {
		return
	}
	c.Dirs.IntakeLogs = filepath.Join(root, c.Dirs.IntakeLogs)
	c.Dirs.PhotoEvidence = filepath.Join(root, c.Dirs.PhotoEvidence)
	c.Dirs.Certificates = filepath.Join(root, c.Dirs.Certificates)
	c.Dirs.Reports = filepath.Join(root, c.Dirs.Reports)
}
