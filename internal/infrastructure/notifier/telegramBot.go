package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"auksion_bot/internal/domain/entity"
)

// TelegramBot доставляет заявки в админский чат и алерты по избранному
// самим пользователям.
type TelegramBot struct {
	bot         *telego.Bot
	adminChatID int64
}

func NewTelegramBot(bot *telego.Bot, adminChatID int64) *TelegramBot {
	return &TelegramBot{
		bot:         bot,
		adminChatID: adminChatID,
	}
}

// Run обрабатывает оба канала до закрытия контекста.
func (b *TelegramBot) Run(
	ctx context.Context,
	inquiries <-chan entity.Inquiry,
	alerts <-chan entity.LotAlert,
) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case inquiry, ok := <-inquiries:
			if !ok {
				return nil
			}

			if err := b.SendInquiry(ctx, inquiry); err != nil {
				logger(ctx).Error("failed to send inquiry", "error", err)
			}
		case alert, ok := <-alerts:
			if !ok {
				return nil
			}

			if err := b.SendAlert(ctx, alert); err != nil {
				logger(ctx).Error("failed to send alert", "error", err)
			}
		}
	}
}

// SendInquiry отправляет заявку по лоту в админский чат.
func (b *TelegramBot) SendInquiry(ctx context.Context, inquiry entity.Inquiry) error {
	text := fmt.Sprintf(
		"🆕 <b>YANGI ARIZA!</b>\n\n"+
			"👤 <b>Foydalanuvchi:</b>\n"+
			"├─ ID: %d\n"+
			"├─ Ism: %s\n"+
			"└─ Username: @%s\n\n"+
			"📦 <b>Lot:</b>\n"+
			"├─ ID: %d\n"+
			"├─ Nomi: %s\n"+
			"├─ Narx: %s\n"+
			"└─ Link: %s\n\n"+
			"📅 <b>Sana:</b> %s\n\n"+
			"💬 <b>Izoh:</b>\n%s",
		inquiry.UserID,
		inquiry.FullName,
		inquiry.Username,
		inquiry.LotID,
		inquiry.LotName,
		entity.FormatPrice(inquiry.LotPrice),
		inquiry.LotLink(),
		inquiry.CreatedAt.Format("02.01.2006 15:04"),
		inquiry.Comment,
	)

	msg := tu.Message(
		tu.ID(b.adminChatID),
		text,
	).WithParseMode(telego.ModeHTML)

	_, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendAlert уведомляет пользователя об изменении отслеживаемого лота.
func (b *TelegramBot) SendAlert(ctx context.Context, alert entity.LotAlert) error {
	var text string

	switch alert.Reason {
	case entity.AlertAuctionClosed:
		text = fmt.Sprintf(
			"🔔 <b>Auksion yakunlandi</b>\n\n"+
				"📦 %s\n"+
				"💰 Yakuniy narx: %s",
			alert.Lot.Name,
			entity.FormatPrice(alert.Lot.EffectivePrice()),
		)
	default:
		text = fmt.Sprintf(
			"🔔 <b>Narx o'zgardi</b>\n\n"+
				"📦 %s\n"+
				"💰 %s → %s",
			alert.Lot.Name,
			entity.FormatPrice(alert.OldPrice),
			entity.FormatPrice(alert.Lot.EffectivePrice()),
		)
	}

	msg := tu.Message(
		tu.ID(alert.UserID),
		text,
	).WithParseMode(telego.ModeHTML)

	_, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение в админский чат.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.adminChatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}
