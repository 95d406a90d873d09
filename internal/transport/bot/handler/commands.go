package handler

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/rs/xid"

	"auksion_bot/internal/domain/entity"
	service "auksion_bot/internal/domain/service/lots"
	"auksion_bot/internal/transport/bot/session"
	"auksion_bot/internal/transport/bot/view"
	"auksion_bot/pkg/logx"
)

//nolint:gochecknoglobals
var digitsRe = regexp.MustCompile(`\d+`)

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string, keyboard *telego.InlineKeyboardMarkup) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: chatID},
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})
	return err
}

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	_ = h.sessions.Clear(ctx, msg.Chat.ID)

	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage, nil)
}

func (h *Handler) OnAuksion(ctx *th.Context, msg telego.Message) error {
	_ = h.sessions.Clear(ctx, msg.Chat.ID)

	return h.sendHTML(ctx, msg.Chat.ID, view.MenuTitle, mainMenuKeyboard())
}

func (h *Handler) OnFavorites(ctx *th.Context, msg telego.Message) error {
	return h.showFavorites(ctx, msg.Chat.ID, msg.From.ID, 1)
}

func (h *Handler) OnSearch(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.SearchMenu, searchMenuKeyboard())
}

func (h *Handler) OnStats(ctx *th.Context, msg telego.Message) error {
	lotCount, userCount := h.svc.Stats()

	listingCount, err := h.listings.Count(ctx)
	if err != nil {
		logger(ctx).Error("listings.Count", logx.Error(err))
	}

	text := fmt.Sprintf(`📊 <b>Holat</b>

📦 <b>Keshdagi lotlar:</b> %d
⭐ <b>Sevimlilari bor foydalanuvchilar:</b> %d
📋 <b>E'lonlar:</b> %d`,
		lotCount,
		userCount,
		listingCount,
	)

	return h.sendHTML(ctx, msg.Chat.ID, text, nil)
}

// OnText обрабатывает свободный ввод: активный шаг диалога хранится в сессии.
func (h *Handler) OnText(ctx *th.Context, msg telego.Message) error {
	sess, err := h.sessions.Get(ctx, msg.Chat.ID)
	if err != nil {
		logger(ctx).Error("sessions.Get", logx.Error(err))

		return h.sendHTML(ctx, msg.Chat.ID, view.SomethingWrong, nil)
	}

	switch sess.State {
	case session.StateSearchQuery:
		return h.processSearchQuery(ctx, msg, sess)
	case session.StateInquiryComment:
		return h.processInquiryComment(ctx, msg, sess)
	case session.StateNone:
	}

	return nil
}

func (h *Handler) processSearchQuery(ctx *th.Context, msg telego.Message, sess session.Session) error {
	query := strings.TrimSpace(msg.Text)

	var (
		lots       []entity.Lot
		searchInfo string
		err        error
	)

	switch sess.SearchType {
	case session.SearchLotID:
		lotID, _ := strconv.ParseInt(digitsRe.FindString(query), 10, 64)
		searchInfo = fmt.Sprintf("ID: #%d", lotID)

		lot, detailErr := h.svc.LotDetail(ctx, lotID)
		if detailErr == nil {
			lots = []entity.Lot{lot}
		}

	case session.SearchPrice:
		minPrice, maxPrice, ok := service.ParsePriceRange(query)
		if !ok {
			// остаёмся в том же шаге, пользователь вводит заново
			return h.sendHTML(ctx, msg.Chat.ID, view.BadPriceFormat, nil)
		}

		searchInfo = fmt.Sprintf("Narx: %s - %s", entity.FormatPrice(minPrice), entity.FormatPrice(maxPrice))
		lots, err = h.svc.SearchByPrice(ctx, minPrice, maxPrice)

	case session.SearchLocation:
		searchInfo = "Joylashuv: " + query
		lots, err = h.svc.SearchByLocation(ctx, query)

	default:
		searchInfo = "Qidiruv: " + query
		lots, err = h.svc.SearchText(ctx, query)
	}

	if err != nil {
		logger(ctx).Error("search failed", logx.Error(err))

		return h.sendHTML(ctx, msg.Chat.ID, view.SomethingWrong, nil)
	}

	_ = h.sessions.Clear(ctx, msg.Chat.ID)

	return h.sendHTML(ctx, msg.Chat.ID,
		view.SearchResults(searchInfo, len(lots)),
		searchResultsKeyboard(lots),
	)
}

func (h *Handler) processInquiryComment(ctx *th.Context, msg telego.Message, sess session.Session) error {
	lot, err := h.svc.LotDetail(ctx, sess.LotID)
	if err != nil {
		_ = h.sessions.Clear(ctx, msg.Chat.ID)

		return h.sendHTML(ctx, msg.Chat.ID, view.LotNotFound, nil)
	}

	username := ""
	fullName := ""

	if msg.From != nil {
		username = msg.From.Username
		fullName = strings.TrimSpace(msg.From.FirstName + " " + msg.From.LastName)
	}

	inquiry := entity.Inquiry{
		ID:        xid.New().String(),
		UserID:    msg.From.ID,
		FullName:  fullName,
		Username:  username,
		Comment:   strings.TrimSpace(msg.Text),
		LotID:     lot.ID,
		LotName:   lot.Name,
		LotPrice:  lot.EffectivePrice(),
		CreatedAt: time.Now(),
	}

	select {
	case h.inquiries <- inquiry:
	case <-ctx.Done():
		return ctx.Err()
	}

	_ = h.sessions.Clear(ctx, msg.Chat.ID)

	return h.sendHTML(ctx, msg.Chat.ID, view.InquiryAccepted, nil)
}

func (h *Handler) showFavorites(ctx *th.Context, chatID, userID int64, page int) error {
	favPage, err := h.svc.Favorites(ctx, userID, page)
	if err != nil {
		logger(ctx).Error("svc.Favorites", logx.Error(err))

		return h.sendHTML(ctx, chatID, view.SomethingWrong, nil)
	}

	if len(favPage.Items) == 0 {
		return h.sendHTML(ctx, chatID, view.FavoritesEmpty, mainMenuKeyboard())
	}

	text := fmt.Sprintf("⭐ <b>SEVIMLILAR</b> (%d-sahifa / %d)", page, favPage.TotalPages)

	return h.sendHTML(ctx, chatID, text, favoritesKeyboard(favPage.Items, page, favPage.TotalPages))
}
