// Package notifier fans a stored Notification out to the channels a user has
// opted in to: email always, SMS for users without smartphones. Delivery is
// best-effort; failures are logged and never fail the originating request.
package notifier

import (
	"context"

	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"github.com/ujenziiq/ujenziiq-go/internal/mailer"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"github.com/ujenziiq/ujenziiq-go/internal/repository"
	"github.com/ujenziiq/ujenziiq-go/internal/sms"
	"go.uber.org/zap"
)

type Notifier struct {
	repo   *repository.Repository
	mailer mailer.Client
	sms    sms.Client
	logger *zap.SugaredLogger
}

func NewNotifier(repo *repository.Repository, mail mailer.Client, smsClient sms.Client, logger *zap.SugaredLogger) *Notifier {
	return &Notifier{repo: repo, mailer: mail, sms: smsClient, logger: logger}
}

type notificationMailData struct {
	Username    string
	Title       string
	Message     string
	ProjectName string
}

// Dispatch delivers an already-persisted notification to its user.
func (n *Notifier) Dispatch(ctx context.Context, notification *model.Notification) {
	user, err := n.repo.User.GetById(ctx, nil, notification.UserID)
	if err != nil {
		n.logger.Errorf("Notification %s: failed to load user %s: %v", notification.ID, notification.UserID, err)
		return
	}

	n.sendEmail(notification, user)
	n.sendSMS(ctx, notification, user)
}

func (n *Notifier) sendEmail(notification *model.Notification, user *model.User) {
	if user.Email == "" {
		return
	}

	data := notificationMailData{
		Username: user.Username,
		Title:    notification.Title,
		Message:  notification.Message,
	}

	if _, err := n.mailer.Send(mailer.NOTIFICATION_TEMPLATE, user.Username, user.Email, data); err != nil {
		n.logger.Errorf("Notification %s: failed to send email to %s: %v", notification.ID, user.Email, err)
	}
}

func (n *Notifier) sendSMS(ctx context.Context, notification *model.Notification, user *model.User) {
	if !user.ReceiveSMSNotifications || user.PhoneNumber == "" || !n.sms.Enabled() {
		return
	}

	status := constant.SMSStatusSent
	if err := n.sms.Send(user.PhoneNumber, notification.Title+": "+notification.Message); err != nil {
		status = constant.SMSStatusFailed
	}

	log := &model.SMSLog{
		UserID:         user.ID,
		PhoneNumber:    user.PhoneNumber,
		Message:        notification.Title + ": " + notification.Message,
		NotificationID: &notification.ID,
		Status:         status,
	}
	if _, err := n.repo.SMSLog.Create(ctx, nil, log); err != nil {
		n.logger.Errorf("Notification %s: failed to record sms log: %v", notification.ID, err)
	}

	if status == constant.SMSStatusSent {
		if err := n.repo.Notification.MarkSMSSent(ctx, nil, notification.ID); err != nil {
			n.logger.Errorf("Notification %s: failed to mark sms sent: %v", notification.ID, err)
		}
	}
}
