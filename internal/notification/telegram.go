package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

// TelegramNotifier pushes booking activity and class reminders to the studio
// front-desk chat. With no token or chat id configured it degrades to a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, d *domain.BookingDetail) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+"Class: %s\n"+"Starts (UTC): %s\n"+"Client: %s (%s)",
		d.ClassName, d.StartTime.Format("02.01.2006 15:04"), d.UserName, d.UserEmail,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, d *domain.BookingDetail) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Class: %s\n"+"Starts (UTC): %s\n"+"Client: %s (%s)",
		d.ClassName, d.StartTime.Format("02.01.2006 15:04"), d.UserName, d.UserEmail,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyClassReminder(ctx context.Context, rem *domain.ClassReminder) {
	text := fmt.Sprintf(
		"*Class starting soon*\n\n"+"Class: %s with %s\n"+"Starts (UTC): %s\n"+"Booked: %d of %d",
		rem.Class.Name, rem.Class.Instructor,
		rem.Class.StartTime.Format("02.01.2006 15:04"),
		rem.Booked, rem.Class.TotalSlots,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
