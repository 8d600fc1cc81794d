package di

import (
	"context"
	"fmt"
	"time"

	"github.com/creative-sdg/multitulza-sub000/application/serviceimpl"
	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/domain/repositories"
	"github.com/creative-sdg/multitulza-sub000/domain/services"
	"github.com/creative-sdg/multitulza-sub000/infrastructure/elevenlabs"
	"github.com/creative-sdg/multitulza-sub000/infrastructure/falai"
	"github.com/creative-sdg/multitulza-sub000/infrastructure/gemini"
	"github.com/creative-sdg/multitulza-sub000/infrastructure/messaging"
	natspkg "github.com/creative-sdg/multitulza-sub000/infrastructure/nats"
	"github.com/creative-sdg/multitulza-sub000/infrastructure/postgres"
	redispkg "github.com/creative-sdg/multitulza-sub000/infrastructure/redis"
	sheetspkg "github.com/creative-sdg/multitulza-sub000/infrastructure/sheets"
	"github.com/creative-sdg/multitulza-sub000/infrastructure/storage"
	"github.com/creative-sdg/multitulza-sub000/infrastructure/websocket"
	"github.com/creative-sdg/multitulza-sub000/interfaces/api/handlers"
	"github.com/creative-sdg/multitulza-sub000/pkg/config"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
	"github.com/creative-sdg/multitulza-sub000/pkg/scheduler"
	"github.com/creative-sdg/multitulza-sub000/pkg/settings"
	"github.com/creative-sdg/multitulza-sub000/pkg/tasks"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB           *gorm.DB
	RedisClient  *redispkg.Client // lock ข้าม process สำหรับ history save (optional ใน dev)
	NATSClient   *natspkg.Client
	Storage      ports.StoragePort // Port/Adapter pattern
	GeminiClient *gemini.Client
	FalClient    *falai.Client
	TTSClient    *elevenlabs.Client
	SheetsClient *sheetspkg.Client // optional - ต้องมี credentials

	// Task registry (in-process state ของ generation tasks)
	TaskRegistry *tasks.Registry

	// Repositories
	UserRepository    repositories.UserRepository
	BlobRepository    repositories.BlobRepository
	HistoryRepository repositories.HistoryRepository
	SettingRepository repositories.SettingRepository

	// Services
	UserService      services.UserService
	CharacterService services.CharacterService
	MediaService     services.MediaService
	BlobService      services.BlobService
	HistoryService   services.HistoryService
	SpeechService    services.SpeechService
	TextBlockService services.TextBlockService
	SettingService   services.SettingService

	// Settings Cache
	SettingsCache *settings.SettingsCache

	// WebSocket & Broadcasting
	NATSSubscriber  *natspkg.Subscriber
	TaskBroadcaster *websocket.TaskBroadcaster

	// Messaging Ports (Clean Architecture interfaces)
	TaskEventPublisher  ports.TaskEventPublisherPort
	TaskEventSubscriber ports.TaskEventSubscriberPort

	// Background maintenance (orphan blob cleanup, registry pruning)
	Scheduler scheduler.MaintenanceScheduler
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initProviders(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initTaskBroadcaster(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis - ปิดได้ใน dev (history lock fallback เป็น in-process)
	if c.Config.Redis.Enabled && c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (falling back to in-process lock)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	} else {
		logger.Info("Redis disabled, using in-process lock")
	}

	// NATS - ไม่มีก็รันได้ client แค่ไม่ได้ WebSocket push ต้อง poll เอา
	natsConfig := natspkg.ClientConfig{
		URL: c.Config.NATS.URL,
	}
	natsClient, err := natspkg.NewClient(natsConfig)
	if err != nil {
		logger.Warn("NATS client initialization failed (task events disabled)", "error", err)
	} else {
		c.NATSClient = natsClient
		logger.Info("NATS client initialized", "url", c.Config.NATS.URL)
		c.initMessagingPorts()
	}

	// Initialize Storage (Port/Adapter pattern)
	if err := c.initStorage(); err != nil {
		return err
	}

	// Task registry
	c.TaskRegistry = tasks.NewRegistry()

	return nil
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		// S3-Compatible Storage (MinIO / Cloudflare R2)
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

// initProviders สร้าง client ของ AI providers
// Gemini/fal/ElevenLabs เป็น core ของระบบ ไม่มี key = start ไม่ได้
// Sheets เป็น optional เพราะ dev ส่วนใหญ่ไม่มี service account
func (c *Container) initProviders() error {
	geminiClient, err := gemini.NewClient(c.Config.Gemini.APIKey, c.Config.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	c.GeminiClient = geminiClient
	logger.Info("Gemini client initialized", "model", c.Config.Gemini.Model)

	falClient, err := falai.NewClient(c.Config.Fal)
	if err != nil {
		return fmt.Errorf("failed to initialize fal.ai client: %w", err)
	}
	c.FalClient = falClient
	logger.Info("fal.ai client initialized", "base_url", c.Config.Fal.BaseURL)

	ttsClient, err := elevenlabs.NewClient(c.Config.ElevenLabs)
	if err != nil {
		return fmt.Errorf("failed to initialize ElevenLabs client: %w", err)
	}
	c.TTSClient = ttsClient
	logger.Info("ElevenLabs client initialized")

	if c.Config.Sheets.CredentialsJSON != "" || c.Config.Sheets.CredentialsFile != "" {
		sheetsClient, err := sheetspkg.NewClient(context.Background(), c.Config.Sheets)
		if err != nil {
			logger.Warn("Sheets client initialization failed (text blocks disabled)", "error", err)
		} else {
			c.SheetsClient = sheetsClient
			logger.Info("Sheets client initialized")
		}
	} else {
		logger.Warn("Sheets credentials not configured (text blocks disabled)")
	}

	return nil
}

// initMessagingPorts สร้าง messaging adapters (Clean Architecture)
func (c *Container) initMessagingPorts() {
	c.TaskEventPublisher = messaging.NewNATSTaskPublisher(c.NATSClient.Conn())

	natsSubscriber := natspkg.NewSubscriber(c.NATSClient.Conn())
	c.NATSSubscriber = natsSubscriber // เก็บ concrete type สำหรับ cleanup
	c.TaskEventSubscriber = messaging.NewNATSTaskSubscriber(natsSubscriber)

	logger.Info("Messaging ports initialized")
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.BlobRepository = postgres.NewBlobRepository(c.DB)
	c.HistoryRepository = postgres.NewHistoryRepository(c.DB)
	c.SettingRepository = postgres.NewSettingRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	// Settings cache ต้องมาก่อน service อื่นเพราะเกือบทุกตัวอ่าน settings
	c.SettingsCache = settings.InitCache(c.SettingRepository)
	c.SettingService = serviceimpl.NewSettingService(c.SettingRepository, c.SettingsCache)

	ctx := context.Background()
	if err := c.SettingService.SeedDefaults(ctx); err != nil {
		logger.Warn("Failed to seed default settings", "error", err)
	}

	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.BlobService = serviceimpl.NewBlobService(c.BlobRepository, c.Storage, c.Config.Storage)
	c.CharacterService = serviceimpl.NewCharacterService(c.GeminiClient, c.BlobService, c.SettingsCache)
	c.MediaService = serviceimpl.NewMediaService(c.TaskRegistry, c.FalClient, c.BlobService, c.TaskEventPublisher, c.SettingsCache)
	c.SpeechService = serviceimpl.NewSpeechService(c.TTSClient, c.BlobService, c.SettingsCache)

	// History save lock: Redis ข้าม process, ไม่มีก็ใช้ mutex ใน process
	var locker serviceimpl.Locker
	if c.RedisClient != nil {
		locker = c.RedisClient
	} else {
		locker = serviceimpl.NewLocalLocker()
	}
	c.HistoryService = serviceimpl.NewHistoryService(c.HistoryRepository, locker, c.SettingsCache)

	var textSource ports.TextSourcePort
	if c.SheetsClient != nil {
		textSource = c.SheetsClient
	}
	c.TextBlockService = serviceimpl.NewTextBlockService(textSource, c.SettingsCache)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initTaskBroadcaster() error {
	if c.TaskEventSubscriber == nil {
		logger.Warn("Task event subscriber not available, WebSocket push disabled")
		return nil
	}

	c.TaskBroadcaster = websocket.NewTaskBroadcaster(c.TaskEventSubscriber)
	if err := c.TaskBroadcaster.Start(); err != nil {
		logger.Warn("Failed to start task broadcaster", "error", err)
		c.TaskBroadcaster = nil
		return nil
	}

	logger.Info("Task broadcaster started (NATS -> WebSocket)")
	return nil
}

func (c *Container) initScheduler() error {
	c.Scheduler = scheduler.NewMaintenanceScheduler()

	// Orphan blobs: อายุเกิน TTL และไม่มี history อ้างถึง ลบทุกชั่วโมง
	err := c.Scheduler.AddJob("blob-orphan-cleanup", "0 * * * *", func() {
		removed, err := c.BlobService.CleanupOrphans(context.Background())
		if err != nil {
			logger.Warn("Orphan blob cleanup failed", "error", err)
			return
		}
		if removed > 0 {
			logger.Info("Orphan blobs cleaned up", "removed", removed)
		}
	})
	if err != nil {
		logger.Warn("Failed to register orphan cleanup job", "error", err)
	}

	// Terminal tasks ค้างใน registry เกิน 1 ชั่วโมงถูก prune ทิ้ง
	err = c.Scheduler.AddJob("task-registry-prune", "*/10 * * * *", func() {
		pruned := c.TaskRegistry.PruneFinished(time.Hour)
		if pruned > 0 {
			logger.Info("Finished tasks pruned", "count", pruned)
		}
	})
	if err != nil {
		logger.Warn("Failed to register task prune job", "error", err)
	}

	// Settings ที่แก้ใน DB ตรงๆ (ไม่ผ่าน API) จะถูกเห็นหลัง TTL หมดอายุ
	err = c.Scheduler.AddJob("settings-reload", "*/5 * * * *", func() {
		if !c.SettingsCache.NeedsReload() {
			return
		}
		if err := c.SettingsCache.Reload(context.Background()); err != nil {
			logger.Warn("Settings reload failed", "error", err)
		}
	})
	if err != nil {
		logger.Warn("Failed to register settings reload job", "error", err)
	}

	c.Scheduler.Start()
	logger.Info("Maintenance scheduler started")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.Scheduler != nil && c.Scheduler.IsRunning() {
		c.Scheduler.Stop()
		logger.Info("Maintenance scheduler stopped")
	}

	if c.TaskBroadcaster != nil {
		if err := c.TaskBroadcaster.Stop(); err != nil {
			logger.Warn("Failed to stop task broadcaster", "error", err)
		} else {
			logger.Info("Task broadcaster stopped")
		}
	}

	if c.NATSSubscriber != nil {
		c.NATSSubscriber.Stop()
		logger.Info("NATS subscriber stopped")
	}

	if c.NATSClient != nil {
		c.NATSClient.Close()
		logger.Info("NATS connection closed")
	}

	if c.GeminiClient != nil {
		if err := c.GeminiClient.Close(); err != nil {
			logger.Warn("Failed to close Gemini client", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:      c.UserService,
		CharacterService: c.CharacterService,
		MediaService:     c.MediaService,
		BlobService:      c.BlobService,
		HistoryService:   c.HistoryService,
		SpeechService:    c.SpeechService,
		TextBlockService: c.TextBlockService,
		SettingService:   c.SettingService,
		SettingsCache:    c.SettingsCache,
		JWTSecret:        c.Config.JWT.Secret,
	}
}
