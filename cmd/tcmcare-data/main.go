package main

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tcmcare-data/internal/config"
	httpapi "tcmcare-data/internal/http"
	"tcmcare-data/internal/repository"
	"tcmcare-data/internal/service"
	"tcmcare-data/internal/store"

	"tcmcare-data/pkg/database"
	"tcmcare-data/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "tcmcare-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 结果缓存：Redis 不可用或未启用时退回进程内缓存
	var kv store.KV = store.NewMemoryKV()
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err == nil {
			kv = store.NewRedisKV(redisClient)
			log.Info("Redis cache enabled", zap.String("addr", cfg.Redis.Addr))
		} else {
			log.Warn("Redis unavailable, using in-memory cache", zap.Error(err))
			_ = redisClient.Close()
			redisClient = nil
		}
		pingCancel()
	}

	// 存储：优先 Postgres，连接失败退回内存（带内置样例目录数据）
	var db *sql.DB
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for tcmcare-data")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory storage", zap.Error(err))
		}
	}

	var (
		results     repository.ResultsRepository
		records     repository.TongueRecordsRepository
		ingredients repository.IngredientsRepository
		recipes     repository.RecipesRepository
		acupoints   repository.AcupointsRepository
		exercises   repository.ExercisesRepository
		courses     repository.CoursesRepository
		routines    repository.RoutinesRepository
		checkins    repository.CheckinsRepository
	)
	if db != nil {
		results = repository.NewPostgresResultsRepository(db)
		records = repository.NewPostgresTongueRecordsRepository(db)
		ingredients = repository.NewPostgresIngredientsRepository(db)
		recipes = repository.NewPostgresRecipesRepository(db)
		acupoints = repository.NewPostgresAcupointsRepository(db)
		exercises = repository.NewPostgresExercisesRepository(db)
		courses = repository.NewPostgresCoursesRepository(db)
		routines = repository.NewPostgresRoutinesRepository(db)
		checkins = repository.NewPostgresCheckinsRepository(db)
	} else {
		results = repository.NewMemoryResultsRepository()
		records = repository.NewMemoryTongueRecordsRepository()
		ingredients = repository.NewMemoryIngredientsRepository()
		recipes = repository.NewMemoryRecipesRepository()
		acupoints = repository.NewMemoryAcupointsRepository()
		exercises = repository.NewMemoryExercisesRepository()
		courses = repository.NewMemoryCoursesRepository()
		routines = repository.NewMemoryRoutinesRepository()
		checkins = repository.NewMemoryCheckinsRepository()
	}

	assets := service.NewAssetClient(cfg.Assets, log)

	now := time.Now
	newID := uuid.NewString
	constitutionSvc := service.NewConstitutionService(results, ingredients, kv, log, now, newID)
	tongueSvc := service.NewTongueService(records, results, log, now, newID)
	catalogSvc := service.NewCatalogService(ingredients, recipes, acupoints, assets, log)
	contentSvc := service.NewContentService(exercises, courses, routines, assets, log)
	checkinSvc := service.NewCheckinService(checkins, log, now, newID)
	wellnessSvc := service.NewWellnessService(ingredients, recipes, log, now)

	router := httpapi.NewRouter(log)
	router.RegisterConstitutionRoutes(httpapi.NewConstitutionHandler(constitutionSvc, log))
	router.RegisterTongueRoutes(httpapi.NewTongueHandler(tongueSvc, log))
	router.RegisterCatalogRoutes(httpapi.NewCatalogHandler(catalogSvc, log))
	router.RegisterContentRoutes(httpapi.NewContentHandler(contentSvc, log))
	router.RegisterCheckinRoutes(httpapi.NewCheckinHandler(checkinSvc, log))
	router.RegisterWellnessRoutes(httpapi.NewWellnessHandler(wellnessSvc, log))
	router.RegisterHealthRoutes(httpapi.NewHealthHandler(db, kv, log))

	// pprof 只在需要排查时通过同端口访问
	router.HandleHandler("/debug/pprof/", http.HandlerFunc(pprof.Index))
	router.HandleHandler("/debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
	router.HandleHandler("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	router.HandleHandler("/debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
	router.HandleHandler("/debug/pprof/trace", http.HandlerFunc(pprof.Trace))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case <-errCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
