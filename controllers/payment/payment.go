package paymentControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Client holds a Stripe API client built from an injected secret key, so
// no credential lives at package scope.
type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

type PaymentIntentInput struct {
	Amount int64 `json:"amount" binding:"required,gt=0"` // minor currency units
}

// POST /create-payment-intent
func CreatePaymentIntent(pc *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payments are not configured"})
			return
		}

		var input PaymentIntentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		intent, err := pc.api.PaymentIntents.New(&stripe.PaymentIntentParams{
			Amount:   stripe.Int64(input.Amount),
			Currency: stripe.String(string(stripe.CurrencyUSD)),
		})
		if err != nil {
			// Provider errors are surfaced verbatim to the caller.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"client_secret": intent.ClientSecret})
	}
}
