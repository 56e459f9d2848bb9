package main

import (
	"net/http"

	gsessions "github.com/gorilla/sessions"
	"go.uber.org/zap"

	"commune/internal/config"
	"commune/internal/model"
	"commune/internal/pkg"
	"commune/internal/repository"
	"commune/internal/repository/mysql"
	"commune/internal/repository/redis"
	"commune/internal/router"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	pkg.TokenSecret = []byte(cfg.TokenSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		logger.Fatal("mysql connect failed", zap.Error(err))
	}
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Community{},
		&model.Member{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	var sessionRecords repository.SessionStore
	if cfg.RedisAddr != "" {
		if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			logger.Fatal("redis connect failed", zap.Error(err))
		}
		defer redis.Close()
		sessionRecords = &redis.SessionRepository{}
	}

	var producer *pkg.KafkaProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		if err != nil {
			logger.Fatal("kafka producer failed", zap.Error(err))
		}
		defer producer.Close()
	}

	store := gsessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &gsessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	r := router.New(router.Deps{
		Users:        &mysql.UserRepository{DB: mysql.DB},
		Roles:        &mysql.RoleRepository{DB: mysql.DB},
		Communities:  &mysql.CommunityRepository{DB: mysql.DB},
		Members:      &mysql.MemberRepository{DB: mysql.DB},
		Sessions:     sessionRecords,
		Store:        store,
		Producer:     producer,
		SMTP:         cfg.SMTP,
		AllowOrigins: cfg.AllowOrigins,
		Log:          logger,
	})

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
