package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redect/members-api/internal/config"
	"github.com/redect/members-api/internal/logging"
	"github.com/redect/members-api/internal/media"
	miniorepo "github.com/redect/members-api/internal/repository/minio"
	"github.com/redect/members-api/internal/repository/postgres"
	"github.com/redect/members-api/internal/service"
	transport "github.com/redect/members-api/internal/transport/http"
	"github.com/redect/members-api/internal/transport/mail"
	"github.com/redect/members-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		if writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr); err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	minioClient, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect minio: %v", err)
	}
	storage := miniorepo.NewStorage(minioClient, cfg.MinIOPublicURL, cfg.MinIOUseSSL)
	if err := storage.EnsureBucket(ctx, cfg.MinIOBucketFiles); err != nil {
		log.Fatalf("ensure bucket %s: %v", cfg.MinIOBucketFiles, err)
	}

	sessionTTL := parseDurationOr(cfg.SessionTTL, 24*time.Hour)
	resetTTL := parseDurationOr(cfg.PasswordResetTTL, time.Hour)
	sweepInterval := parseDurationOr(cfg.ResetSweepInterval, time.Hour)

	users := postgres.NewUserRepo(db)
	sessions := postgres.NewSessionRepo(db)
	resets := postgres.NewPasswordResetRepo(db)
	news := postgres.NewNewsRepo(db)
	portfolio := postgres.NewPortfolioRepo(db)
	certificates := postgres.NewCertificateRepo(db)
	files := postgres.NewFileRepo(db)
	payments := postgres.NewPaymentRepo(db)

	jwtManager := util.NewJWTManager(cfg.JWTSecret, sessionTTL)
	mailer := mail.NewPasswordResetMailer(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.FrontendBaseURL,
	)

	authService := service.NewAuthService(users, sessions, resets, mailer, jwtManager, cfg.GoogleAudience, resetTTL)
	newsService := service.NewNewsService(news)
	portfolioService := service.NewPortfolioService(portfolio)
	certificateService := service.NewCertificateService(certificates)
	paymentService := service.NewPaymentService(payments)
	fileService := service.NewFileService(files, storage, service.FileServiceConfig{
		Bucket:            cfg.MinIOBucketFiles,
		MaxBytes:          cfg.UploadMaxBytes,
		ImageProcessor:    media.NewImageProcessor(cfg.ImageMaxDimension),
		ImageMaxDimension: cfg.ImageMaxDimension,
	})

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterPages(e, cfg.FrontendBaseURL)
	transport.RegisterSwagger(e)
	transport.RegisterAuth(e, authService)
	transport.RegisterAdmin(e, authService)
	transport.RegisterNews(e, newsService, authService)
	transport.RegisterPortfolio(e, portfolioService, authService)
	transport.RegisterCertificates(e, certificateService, authService)
	transport.RegisterPayments(e, paymentService, authService)
	transport.RegisterFiles(e, fileService, authService)

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sweepExpiredResets(sweepCtx, authService, sweepInterval)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopSweep()
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}

// sweepExpiredResets periodically clears reset tokens that expired unused.
func sweepExpiredResets(ctx context.Context, auth *service.AuthService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := auth.PurgeExpiredResets(ctx)
			if err != nil {
				log.Printf("reset token sweep: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("reset token sweep: removed %d expired tokens", removed)
			}
		}
	}
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
