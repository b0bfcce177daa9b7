package routes

import (
	"github.com/gin-gonic/gin"
	notificationControllers "github.com/hrshere/daksh-prototype/controllers/notification"
	orderControllers "github.com/hrshere/daksh-prototype/controllers/order"
	paymentControllers "github.com/hrshere/daksh-prototype/controllers/payment"
	"gorm.io/gorm"
)

// Dependencies carries the external-provider clients constructed in main.
// Any of them may be nil when the provider is not configured.
type Dependencies struct {
	Payment  *paymentControllers.Client
	Notifier *notificationControllers.Notifier
	Mailer   *orderControllers.Mailer
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, deps Dependencies) {
	SetupCatalogRoutes(r, db)
	SetupProductRoutes(r, db, deps.Notifier)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db, deps.Mailer)
	SetupPaymentRoutes(r, deps.Payment, deps.Notifier)
}
