package routes

import (
	"github.com/gin-gonic/gin"
	notificationControllers "github.com/hrshere/daksh-prototype/controllers/notification"
	paymentControllers "github.com/hrshere/daksh-prototype/controllers/payment"
	"github.com/hrshere/daksh-prototype/middleware"
)

// SetupPaymentRoutes registers the external-provider bridges. Both are
// rate limited per client IP.
func SetupPaymentRoutes(r *gin.Engine, payment *paymentControllers.Client, notifier *notificationControllers.Notifier) {
	r.POST("/create-payment-intent",
		middleware.RateLimiter(),
		paymentControllers.CreatePaymentIntent(payment),
	)

	r.POST("/send-push-notification",
		middleware.RateLimiter(),
		notificationControllers.SendPushNotification(notifier),
	)
}
