package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/beracah/beracah-BE/internal/util"
	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/wneessen/go-mail"
)

const (
	smtpGmailHost = "smtp.gmail.com"
	smtpGmailPort = 587

	senderEmailName = "Beracah Kitchen"
)

type GmailSender struct {
	client      *mail.Client
	fromAddress string
	storeInbox  string
}

func NewGmailSender(username, password, storeInbox string) (*GmailSender, error) {
	client, err := mail.NewClient(smtpGmailHost, mail.WithPort(smtpGmailPort), mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username), mail.WithPassword(password))
	if err != nil {
		return nil, err
	}
	if err = client.DialWithContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	return &GmailSender{
		client:      client,
		fromAddress: username,
		storeInbox:  storeInbox,
	}, nil
}

// SendOrderReceipt mails a copy of the order to the store inbox.
func (sender *GmailSender) SendOrderReceipt(order db.Order, items []db.OrderItem) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(senderEmailName, sender.fromAddress); err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}
	if err := msg.To(sender.storeInbox); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}

	msg.Subject(fmt.Sprintf("New order %s (%s)", order.OrderNumber, order.ServiceType))

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h3>Order %s</h3>", order.OrderNumber))
	body.WriteString(fmt.Sprintf("<p>Customer: %s (%s)</p>", order.CustomerName, order.ContactNumber))
	body.WriteString("<ul>")
	for _, item := range items {
		body.WriteString(fmt.Sprintf("<li>%d x %s: %s</li>",
			item.Quantity, item.MenuItemName, util.FormatPHP(item.TotalPrice)))
	}
	body.WriteString("</ul>")
	body.WriteString(fmt.Sprintf("<p>Total: <b>%s</b></p>", util.FormatPHP(order.Total)))
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	if err := sender.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
