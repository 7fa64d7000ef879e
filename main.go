package main

import (
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"quickly/api/rest"
	"quickly/config"
	"quickly/converter"
	"quickly/service"
	"quickly/shared/log"
	"quickly/upstream"
)

const (
	exitCodeBindErr         = 1
	exitCodeMissingUpstream = 3
)

func main() {
	_ = godotenv.Load()

	serviceConfig := config.New()

	logger := log.InitLogger(serviceConfig.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	if serviceConfig.Upstream == "" {
		logger.Error("`QUICKLY_UPSTREAM` is not set!")
		os.Exit(exitCodeMissingUpstream)
	}

	fetcher, err := newFetcher(serviceConfig, logger)
	if err != nil {
		logger.Error("Failed to create origin fetcher", zap.Error(err))
		os.Exit(exitCodeMissingUpstream)
	}

	transformer := converter.New(converter.MustStrategy(logger), logger)
	imageService := service.NewImageService(fetcher, transformer, logger)

	app := fiber.New(fiber.Config{AppName: serviceConfig.AppName})
	app.Use(
		recover.New(),
		fiberzap.New(fiberzap.Config{Logger: logger}),
		compress.New(compress.Config{Level: compress.LevelBestSpeed}),
		etag.New(),
	)

	rest.NewImageController(app, serviceConfig, imageService, logger)

	logger.Info("Server listening", zap.String("bind", serviceConfig.BindAddr()))

	if err = app.Listen(serviceConfig.BindAddr()); err != nil {
		logger.Error("Unable to bind", zap.String("bind", serviceConfig.BindAddr()), zap.Error(err))
		os.Exit(exitCodeBindErr)
	}
}

func newFetcher(conf *config.Config, logger *zap.Logger) (service.Fetcher, error) {
	if !strings.HasPrefix(conf.Upstream, "s3://") {
		return upstream.NewHTTPFetcher(conf.Upstream, conf.FetchTimeout, logger), nil
	}

	awsSession, err := session.NewSession(&aws.Config{
		Region:      aws.String(conf.S3Region),
		Credentials: credentials.NewStaticCredentials(conf.S3AccessKey, conf.S3SecretKey, ""),
		Endpoint:    &conf.S3Endpoint,
	})
	if err != nil {
		return nil, err
	}

	return upstream.NewS3Fetcher(s3.New(awsSession), conf.Upstream, logger)
}
