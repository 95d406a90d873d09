package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"auksion_bot/internal/domain/catalog"
	"auksion_bot/internal/domain/entity"
	service "auksion_bot/internal/domain/service/lots"
	"auksion_bot/internal/transport/bot/session"
	"auksion_bot/internal/transport/bot/view"
	"auksion_bot/pkg/logx"
)

func (h *Handler) editHTML(
	ctx *th.Context,
	query telego.CallbackQuery,
	text string,
	keyboard *telego.InlineKeyboardMarkup,
) error {
	_, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		// пользователь нажал ту же кнопку: Telegram не даёт сохранить
		// сообщение без изменений
		logger(ctx).Debug("EditMessageText", logx.Error(err))
	}

	return h.answer(ctx, query.ID, "")
}

func (h *Handler) answer(ctx *th.Context, queryID, text string) error {
	cb := tu.CallbackQuery(queryID)
	if text != "" {
		cb = cb.WithText(text)
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, cb)
}

func (h *Handler) OnMenuCallback(ctx *th.Context, query telego.CallbackQuery) error {
	_ = h.sessions.Clear(ctx, query.Message.GetChat().ID)

	return h.editHTML(ctx, query, view.MenuTitle, mainMenuKeyboard())
}

// OnCategoryCallback — выбор группы. Формат: "auk:cat:<mainKey>".
func (h *Handler) OnCategoryCallback(ctx *th.Context, query telego.CallbackQuery) error {
	mainKey := strings.TrimPrefix(query.Data, "auk:cat:")

	mc, ok := catalog.MainCategoryByKey(mainKey)
	if !ok {
		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	text := fmt.Sprintf("%s <b>%s</b>\n\nBo'limni tanlang:", mc.Emoji, mc.Title)

	return h.editHTML(ctx, query, text, subCategoryKeyboard(mainKey))
}

// OnSubCategoryCallback — выбор суб-категории. Формат: "auk:sub:<main>:<sub>".
func (h *Handler) OnSubCategoryCallback(ctx *th.Context, query telego.CallbackQuery) error {
	parts := strings.Split(query.Data, ":")
	if len(parts) != 4 {
		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	mainKey, subKey := parts[2], parts[3]
	text := catalog.Breadcrumb(mainKey, subKey) + "\n\n🌍 Viloyatni tanlang:"

	return h.editHTML(ctx, query, text, regionKeyboard(mainKey, subKey))
}

// OnListCallback — страница лотов. Формат: "auk:list:<main>:<sub>:<region>:<page>".
func (h *Handler) OnListCallback(ctx *th.Context, query telego.CallbackQuery) error {
	parts := strings.Split(query.Data, ":")
	if len(parts) != 6 {
		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	mainKey, subKey, regionKey := parts[2], parts[3], parts[4]

	page, err := strconv.Atoi(parts[5])
	if err != nil || page < 1 {
		page = 1
	}

	lots, err := h.svc.ListCategory(ctx, mainKey, subKey, regionKey, page)
	if err != nil {
		logger(ctx).Error("svc.ListCategory", logx.Error(err))

		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	if len(lots) == 0 && page == 1 {
		return h.editHTML(ctx, query, view.NoLots, regionKeyboard(mainKey, subKey))
	}

	region, _ := catalog.RegionByKey(regionKey)

	text := fmt.Sprintf("%s\n📍 %s\n\n%d-sahifa, lotni tanlang:",
		catalog.Breadcrumb(mainKey, subKey),
		region.Title,
		page,
	)

	hasNext := len(lots) == service.DefaultPerPage

	return h.editHTML(ctx, query, text,
		lotListKeyboard(lots, mainKey, subKey, regionKey, page, hasNext))
}

// OnLotCallback — карточка лота. Формат: "auk:lot:<id>".
func (h *Handler) OnLotCallback(ctx *th.Context, query telego.CallbackQuery) error {
	lotID, err := strconv.ParseInt(strings.TrimPrefix(query.Data, "auk:lot:"), 10, 64)
	if err != nil {
		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	lot, err := h.svc.LotDetail(ctx, lotID)
	if err != nil {
		return h.answer(ctx, query.ID, view.LotNotFound)
	}

	isFav := h.svc.IsFavorite(query.From.ID, lotID)

	return h.editHTML(ctx, query, view.LotCard(lot), lotCardKeyboard(lotID, isFav, "auk:menu"))
}

// OnFavoriteCallback — добавление/удаление закладки.
// Формат: "auk:fav:add:<id>" / "auk:fav:del:<id>".
func (h *Handler) OnFavoriteCallback(ctx *th.Context, query telego.CallbackQuery) error {
	parts := strings.Split(query.Data, ":")
	if len(parts) != 4 {
		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	lotID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	var notice string

	if parts[2] == "add" {
		h.svc.AddFavorite(query.From.ID, lotID)
		notice = view.FavoriteAdded
	} else {
		h.svc.RemoveFavorite(query.From.ID, lotID)
		notice = view.FavoriteRemoved
	}

	if err := h.answer(ctx, query.ID, notice); err != nil {
		return err
	}

	// перерисовываем кнопку на карточке
	lot, err := h.svc.LotDetail(ctx, lotID)
	if err != nil {
		return nil //nolint:nilerr // карточка уже недоступна, уведомление отправлено
	}

	_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        view.LotCard(lot),
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: lotCardKeyboard(lotID, h.svc.IsFavorite(query.From.ID, lotID), "auk:menu"),
	})
	if err != nil {
		logger(ctx).Debug("EditMessageText", logx.Error(err))
	}

	return nil
}

// OnFavoritesPageCallback — список закладок. Формат: "auk:favs:<page>".
func (h *Handler) OnFavoritesPageCallback(ctx *th.Context, query telego.CallbackQuery) error {
	page, err := strconv.Atoi(strings.TrimPrefix(query.Data, "auk:favs:"))
	if err != nil || page < 1 {
		page = 1
	}

	if err := h.answer(ctx, query.ID, ""); err != nil {
		return err
	}

	favPage, err := h.svc.Favorites(ctx, query.From.ID, page)
	if err != nil {
		logger(ctx).Error("svc.Favorites", logx.Error(err))

		return nil
	}

	if len(favPage.Items) == 0 {
		return h.editFavoritesEmpty(ctx, query)
	}

	text := fmt.Sprintf("⭐ <b>SEVIMLILAR</b> (%d-sahifa / %d)", page, favPage.TotalPages)

	_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: favoritesKeyboard(favPage.Items, page, favPage.TotalPages),
	})
	if err != nil {
		logger(ctx).Debug("EditMessageText", logx.Error(err))
	}

	return nil
}

func (h *Handler) editFavoritesEmpty(ctx *th.Context, query telego.CallbackQuery) error {
	_, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        view.FavoritesEmpty,
		ReplyMarkup: mainMenuKeyboard(),
	})
	if err != nil {
		logger(ctx).Debug("EditMessageText", logx.Error(err))
	}

	return nil
}

// OnSearchMenuCallback открывает меню поиска либо ставит шаг диалога.
// Форматы: "auk:search" и "auk:search:<type>".
func (h *Handler) OnSearchMenuCallback(ctx *th.Context, query telego.CallbackQuery) error {
	if query.Data == "auk:search" {
		_ = h.sessions.Clear(ctx, query.Message.GetChat().ID)

		return h.editHTML(ctx, query, view.SearchMenu, searchMenuKeyboard())
	}

	searchType := strings.TrimPrefix(query.Data, "auk:search:")

	if searchType == session.SearchPrice {
		return h.editHTML(ctx, query, "💰 <b>NARX BO'YICHA QIDIRUV</b>\n\nNarx oralig'ini tanlang:", priceRangeKeyboard())
	}

	prompt := view.AskSearchText

	switch searchType {
	case session.SearchLotID:
		prompt = view.AskSearchID
	case session.SearchLocation:
		prompt = view.AskSearchLocation
	}

	err := h.sessions.Set(ctx, query.Message.GetChat().ID, session.Session{
		State:      session.StateSearchQuery,
		SearchType: searchType,
	})
	if err != nil {
		logger(ctx).Error("sessions.Set", logx.Error(err))

		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	return h.editHTML(ctx, query, prompt, nil)
}

// OnPriceCallback — выбранный пресет диапазона. Формат: "auk:price:<min>-<max>"
// либо "auk:price:custom".
func (h *Handler) OnPriceCallback(ctx *th.Context, query telego.CallbackQuery) error {
	rangeStr := strings.TrimPrefix(query.Data, "auk:price:")

	if rangeStr == "custom" {
		err := h.sessions.Set(ctx, query.Message.GetChat().ID, session.Session{
			State:      session.StateSearchQuery,
			SearchType: session.SearchPrice,
		})
		if err != nil {
			logger(ctx).Error("sessions.Set", logx.Error(err))

			return h.answer(ctx, query.ID, view.SomethingWrong)
		}

		return h.editHTML(ctx, query, view.AskSearchPrice, nil)
	}

	bounds := strings.SplitN(rangeStr, "-", 2)
	if len(bounds) != 2 {
		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	minPrice, _ := strconv.ParseFloat(bounds[0], 64)
	maxPrice, _ := strconv.ParseFloat(bounds[1], 64)

	lots, err := h.svc.SearchByPrice(ctx, minPrice, maxPrice)
	if err != nil {
		logger(ctx).Error("svc.SearchByPrice", logx.Error(err))

		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	searchInfo := fmt.Sprintf("Narx: %s - %s",
		entity.FormatPrice(minPrice), entity.FormatPrice(maxPrice))

	return h.editHTML(ctx, query,
		view.SearchResults(searchInfo, len(lots)),
		searchResultsKeyboard(lots),
	)
}

// OnApplyCallback — старт заявки по лоту. Формат: "auk:apply:<id>".
func (h *Handler) OnApplyCallback(ctx *th.Context, query telego.CallbackQuery) error {
	lotID, err := strconv.ParseInt(strings.TrimPrefix(query.Data, "auk:apply:"), 10, 64)
	if err != nil {
		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	err = h.sessions.Set(ctx, query.Message.GetChat().ID, session.Session{
		State: session.StateInquiryComment,
		LotID: lotID,
	})
	if err != nil {
		logger(ctx).Error("sessions.Set", logx.Error(err))

		return h.answer(ctx, query.ID, view.SomethingWrong)
	}

	return h.editHTML(ctx, query, view.AskInquiryComment, nil)
}
