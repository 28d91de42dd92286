package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	appcontext "github.com/ujenziiq/ujenziiq-go/internal/app_context"
	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/database"
	"github.com/ujenziiq/ujenziiq-go/internal/env"
	"github.com/ujenziiq/ujenziiq-go/internal/mailer"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
	"github.com/ujenziiq/ujenziiq-go/internal/notifier"
	ratelimiter "github.com/ujenziiq/ujenziiq-go/internal/rate_limiter"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/route"
	"github.com/ujenziiq/ujenziiq-go/internal/sms"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := minio.New(cfg.Minio.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.ACCESS_KEY, cfg.Minio.SECRET_KEY, ""),
		Secure: cfg.Minio.USE_SSL,
	})
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	smsClient := sms.NewHTTPGateway(cfg.SMS, logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, s3)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		SMS:        smsClient,
		Notifier:   notifier.NewNotifier(repo, mail, smsClient, logger),
		JWTService: jwtService,
		S3:         s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RecoveryMiddleware)
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/health", _controller.Index.Health)

	rApi := r.Group("/api")
	rApi.GET("", _controller.Index.ApiIndex)

	route.Auth(rApi, _controller.Auth)
	route.Users(rApi, _controller.User, _middleware)
	route.Projects(rApi, _controller.Project, _middleware)
	route.Tasks(rApi, _controller.Task, _middleware)
	route.Materials(rApi, _controller.Material, _middleware)
	route.ResourceAllocations(rApi, _controller.ResourceAllocation, _middleware)
	route.SafetyIncidents(rApi, _controller.Safety, _middleware)
	route.ProjectImages(rApi, _controller.ProjectImage, _middleware)
	route.ProgressReports(rApi, _controller.ProgressReport, _middleware)
	route.Notifications(rApi, _controller.Notification, _middleware)
	route.Messages(rApi, _controller.Message, _middleware)
	route.Comments(rApi, _controller.Comment, _middleware)
	route.SMSLogs(rApi, _controller.SMSLog, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
