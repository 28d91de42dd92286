package appcontext

import (
	"github.com/minio/minio-go/v7"
	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"github.com/ujenziiq/ujenziiq-go/internal/mailer"
	"github.com/ujenziiq/ujenziiq-go/internal/notifier"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/sms"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// SMS sends text messages through the configured gateway.
	SMS sms.Client

	// Notifier fans persisted notifications out to email and SMS.
	Notifier *notifier.Notifier

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	S3 *minio.Client
}
