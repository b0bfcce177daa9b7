package orderControllers

import (
	"fmt"
	"strings"

	"github.com/hrshere/daksh-prototype/models"
	gomail "gopkg.in/gomail.v2"
)

// Mailer sends order confirmations through SMTP. A nil *Mailer means email
// is not configured and dispatch is skipped.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *Mailer) SendOrderConfirmation(to string, order models.Order) error {
	var b strings.Builder
	b.WriteString("Dear Customer,\n\nThank you for your purchase!\n\nOrder Details:\n")
	fmt.Fprintf(&b, "Total Quantity: %d\n", order.TotalQuantity)
	fmt.Fprintf(&b, "Total Price: $%v\n", order.TotalPrice)
	b.WriteString("Order Products:\n")
	for _, line := range order.OrderProducts {
		fmt.Fprintf(&b, "- Product ID: %d, Quantity: %d\n", line.ProductID, line.Quantity)
	}
	b.WriteString("\nThank you for shopping with us!")

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Order Confirmation")
	msg.SetBody("text/plain", b.String())

	return m.dialer.DialAndSend(msg)
}
