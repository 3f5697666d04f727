package notification

import (
	"fmt"

	"github.com/beracah/beracah-BE/internal/util"
	"github.com/bwmarrin/discordgo"
	db "github.com/beracah/beracah-BE/internal/db/sqlc"
)

// DiscordNotifier pushes new-order alerts into the staff Discord channel.
type DiscordNotifier struct {
	discord   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	discord, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordNotifier{
		discord:   discord,
		channelID: channelID,
	}, nil
}

// NotifyNewOrder sends a one-line summary of a freshly placed order.
func (n *DiscordNotifier) NotifyNewOrder(order db.Order, itemCount int) error {
	message := fmt.Sprintf("🛎️ New %s order %s | %s | %d item(s) | %s | paid via %s",
		order.ServiceType,
		order.OrderNumber,
		order.CustomerName,
		itemCount,
		util.FormatPHP(order.Total),
		order.PaymentMethod,
	)

	if order.ServiceType == db.ServiceTypeDelivery && order.Address != nil {
		message += fmt.Sprintf(" | deliver to: %s", util.TruncateContent(*order.Address, 80))
	}

	_, err := n.discord.ChannelMessageSend(n.channelID, message)
	return err
}

// NotifyDeliveryUpdate reports a delivery status change for a tracked order.
func (n *DiscordNotifier) NotifyDeliveryUpdate(orderNumber, deliveryStatus string) error {
	message := fmt.Sprintf("🛵 Order %s delivery update: %s", orderNumber, deliveryStatus)

	_, err := n.discord.ChannelMessageSend(n.channelID, message)
	return err
}
