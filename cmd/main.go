package main

import (
	"center-docs-server/config"
	_ "center-docs-server/docs"
	"center-docs-server/internal/handler"
	"center-docs-server/internal/metrics"
	"center-docs-server/internal/repository"
	"center-docs-server/internal/security"
	"center-docs-server/internal/service"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Center-docs-server
// @version 1.0
// @description REST API de gestión documental de centros: versiones, aprobaciones y recordatorios de vencimiento

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("error cargando la configuración: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("no se pudo conectar a la base de datos: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("error cerrando la base de datos: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("error conectando a Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("error cerrando Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	cacheTTL := time.Duration(cfg.TTL.S3AndRedis) * time.Second

	userRepo := repository.NewUserRepository(db)
	docRepo := repository.NewDocumentRepository(db)
	versionRepo := repository.NewVersionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, cacheTTL)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("error creando el servicio S3: %v", err)
	}

	jwtService := security.NewJWTService(&cfg.JWT)
	userService := service.NewUserService(userRepo, jwtService, &cfg.Admin)
	docService := service.NewDocumentService(docRepo, auditRepo)
	approvalService := service.NewApprovalService(versionRepo, docRepo, cacheRepo, auditRepo, s3Service, cacheTTL)
	reminderService := service.NewReminderService(userRepo, notificationRepo, incidentRepo, auditRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	incidentService := service.NewIncidentService(incidentRepo, auditRepo)
	schedulerService := service.NewSchedulerService(db, docRepo, reminderService, &cfg.Scheduler)

	authHandler := handler.NewAuthenticationHandler(userService)
	docHandler := handler.NewDocumentHandler(docService)
	versionHandler := handler.NewVersionHandler(approvalService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	incidentHandler := handler.NewIncidentHandler(incidentService)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(registry)

	router.Use(config.DBMiddleware(db))
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	setupAuthRoutes(router, authHandler, jwtService, cfg)
	setupDocumentRoutes(router, docHandler, versionHandler, jwtService, cfg)
	setupNotificationRoutes(router, notificationHandler, incidentHandler, jwtService, cfg)

	go schedulerService.Run(ctx)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
			r.Get("/me", h.Me)
		})
		r.Post("/", h.Login)
	})

	r.Post("/api/register", h.Register)
}

func setupDocumentRoutes(r chi.Router, dh *handler.DocumentHandler, vh *handler.VersionHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/documents", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))

		r.With(security.RequireCapability(security.CapCreateDocument)).Post("/", dh.CreateDocument)

		r.Route("/{doc_id}", func(r chi.Router) {
			r.With(security.RequireCapability(security.CapReadDocuments)).Get("/", dh.GetDocument)
			r.With(security.RequireCapability(security.CapReadDocuments)).Get("/versions", vh.ListVersions)
			r.With(security.RequireCapability(security.CapCreateVersion)).Post("/versions", vh.CreateVersion)
			r.With(security.RequireCapability(security.CapReadDocuments)).Get("/current-version", vh.GetCurrentVersion)
		})
	})

	r.Route("/api/versions/{version_id}", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.With(security.RequireCapability(security.CapDecideVersion)).Post("/approve", vh.ApproveVersion)
		r.With(security.RequireCapability(security.CapDecideVersion)).Post("/reject", vh.RejectVersion)
		r.With(security.RequireCapability(security.CapReadDocuments)).Get("/download", vh.DownloadVersion)
	})

	r.Group(func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Use(security.RequireCapability(security.CapDecideVersion))
		r.Get("/api/pending-approvals", vh.ListPendingApprovals)
		r.Get("/api/approved-versions", vh.ListApprovedVersions)
		r.Get("/api/rejected-versions", vh.ListRejectedVersions)
	})
}

func setupNotificationRoutes(r chi.Router, nh *handler.NotificationHandler, ih *handler.IncidentHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Use(security.RequireCapability(security.CapReadNotifications))
		r.Get("/", nh.ListNotifications)
		r.Post("/{notification_id}/read", nh.MarkNotificationRead)
	})

	r.Route("/api/incidents", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Get("/", ih.ListIncidents)
		r.With(security.RequireCapability(security.CapResolveIncident)).Post("/{incident_id}/resolve", ih.ResolveIncident)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("servidor escuchando en " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("error del servidor: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("señal %v recibida, deteniendo el servidor", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("error deteniendo el servidor: %v", err)
	} else {
		log.Println("servidor detenido correctamente")
	}
}
