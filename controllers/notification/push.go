package notificationControllers

import (
	"context"
	"net/http"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
)

// Notifier wraps the FCM messaging client. A nil *Notifier means push
// dispatch is not configured and callers must degrade gracefully.
type Notifier struct {
	client *messaging.Client
}

func NewNotifier(ctx context.Context, credentialsFile string) (*Notifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &Notifier{client: client}, nil
}

// SendToToken pushes the fixed notification payload to a single device and
// returns the provider message id.
func (n *Notifier) SendToToken(ctx context.Context, token string) (string, error) {
	return n.client.Send(ctx, &messaging.Message{
		Notification: &messaging.Notification{Title: "title", Body: "body"},
		Data: map[string]string{
			"score": "850",
			"time":  "2:45",
		},
		Token: token,
	})
}

// BroadcastProductAdded notifies subscribers of the products topic that a
// new product is available.
func (n *Notifier) BroadcastProductAdded(ctx context.Context, productName string) (string, error) {
	return n.client.Send(ctx, &messaging.Message{
		Notification: &messaging.Notification{Title: "New product added", Body: productName},
		Topic:        "products",
	})
}

type PushInput struct {
	Token string `json:"token" binding:"required"`
}

// POST /send-push-notification
func SendPushNotification(notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if notifier == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Push notifications are not configured"})
			return
		}

		var input PushInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		messageID, err := notifier.SendToToken(c.Request.Context(), input.Token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, messageID)
	}
}
