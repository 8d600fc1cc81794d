package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	NATS       NATSConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Log        LogConfig
	Storage    StorageConfig
	Gemini     GeminiConfig
	Fal        FalConfig
	ElevenLabs ElevenLabsConfig
	Sheets     SheetsConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NATSConfig สำหรับ task event pub/sub
type NATSConfig struct {
	URL string // nats://localhost:4222
}

// RedisConfig สำหรับ save locks และ resolved-URL cache
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
	Enabled  bool // ปิดได้ใน dev (fallback เป็น in-process lock)
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

type StorageConfig struct {
	Type     string // local, s3
	BasePath string // สำหรับ local: ./blobs
	BaseURL  string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8080/blobs)

	// ขนาด blob สูงสุดที่รับเข้า cache (bytes)
	MaxBlobSize int64

	// อายุ blob กำพร้าก่อนถูก cleanup (ชั่วโมง)
	OrphanTTLHours int

	S3 S3Config
}

type S3Config struct {
	Endpoint  string // minio:9000 หรือ xxx.r2.cloudflarestorage.com
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool   // false สำหรับ MinIO local, true สำหรับ R2
	Region    string // auto สำหรับ R2
	PublicURL string // URL สำหรับเข้าถึงไฟล์ public (optional)
}

// GeminiConfig สำหรับ LLM content generation
type GeminiConfig struct {
	APIKey string
	Model  string // เช่น gemini-2.0-flash
}

// FalConfig สำหรับ media generation API (image/video)
type FalConfig struct {
	APIKey       string
	BaseURL      string // https://queue.fal.run
	PollInterval int    // วินาที
	PollTimeout  int    // วินาที
}

// ElevenLabsConfig สำหรับ text-to-speech
type ElevenLabsConfig struct {
	APIKey string
	Model  string // eleven_multilingual_v2
}

// SheetsConfig สำหรับ Google Sheets service account
type SheetsConfig struct {
	CredentialsJSON string // raw service-account JSON
	CredentialsFile string // หรือ path ไปยังไฟล์ credentials
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	}

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	maxBlobSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_BLOB_SIZE", "104857600"), 10, 64) // 100MB default
	orphanTTL, _ := strconv.Atoi(getEnv("STORAGE_ORPHAN_TTL_HOURS", "72"))
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisEnabled := getEnv("REDIS_ENABLED", "true") == "true"

	falPollInterval, _ := strconv.Atoi(getEnv("FAL_POLL_INTERVAL", "2"))
	falPollTimeout, _ := strconv.Atoi(getEnv("FAL_POLL_TIMEOUT", "300"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Character Studio API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "character_studio"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			Enabled:  redisEnabled,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Storage: StorageConfig{
			Type:           getEnv("STORAGE_TYPE", "local"),
			BasePath:       getEnv("STORAGE_BASE_PATH", "./blobs"),
			BaseURL:        getEnv("STORAGE_BASE_URL", "http://localhost:8080/blobs"),
			MaxBlobSize:    maxBlobSize,
			OrphanTTLHours: orphanTTL,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "studio-blobs"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", "auto"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Fal: FalConfig{
			APIKey:       getEnv("FAL_API_KEY", ""),
			BaseURL:      getEnv("FAL_BASE_URL", "https://queue.fal.run"),
			PollInterval: falPollInterval,
			PollTimeout:  falPollTimeout,
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey: getEnv("ELEVENLABS_API_KEY", ""),
			Model:  getEnv("ELEVENLABS_MODEL", "eleven_multilingual_v2"),
		},
		Sheets: SheetsConfig{
			CredentialsJSON: getEnv("GOOGLE_SA_CREDENTIALS_JSON", ""),
			CredentialsFile: getEnv("GOOGLE_SA_CREDENTIALS_FILE", ""),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// ParseCSV แปลง comma-separated string เป็น slice
func ParseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
