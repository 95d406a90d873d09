package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"auksion_bot/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminIDs []int64) {
	// Команды доступны всем пользователям
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))
	bh.HandleMessage(h.OnAuksion, th.CommandEqual("auksion"))
	bh.HandleMessage(h.OnFavorites, th.CommandEqual("sevimlilar"))
	bh.HandleMessage(h.OnSearch, th.CommandEqual("qidiruv"))

	// Админские команды
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminIDs))
	adminGroup.HandleMessage(h.OnStats, th.CommandEqual("stats"))

	// Свободный ввод: шаги поиска и заявки. Регистрируется после команд,
	// чтобы не перехватывать их.
	bh.HandleMessage(h.OnText, th.AnyMessage())

	// Навигация по кнопкам
	bh.HandleCallbackQuery(h.OnMenuCallback, th.CallbackDataEqual("auk:menu"))
	bh.HandleCallbackQuery(h.OnCategoryCallback, th.CallbackDataPrefix("auk:cat:"))
	bh.HandleCallbackQuery(h.OnSubCategoryCallback, th.CallbackDataPrefix("auk:sub:"))
	bh.HandleCallbackQuery(h.OnListCallback, th.CallbackDataPrefix("auk:list:"))
	bh.HandleCallbackQuery(h.OnLotCallback, th.CallbackDataPrefix("auk:lot:"))
	bh.HandleCallbackQuery(h.OnFavoriteCallback, th.CallbackDataPrefix("auk:fav:"))
	bh.HandleCallbackQuery(h.OnFavoritesPageCallback, th.CallbackDataPrefix("auk:favs:"))
	bh.HandleCallbackQuery(h.OnSearchMenuCallback, th.CallbackDataPrefix("auk:search"))
	bh.HandleCallbackQuery(h.OnPriceCallback, th.CallbackDataPrefix("auk:price:"))
	bh.HandleCallbackQuery(h.OnApplyCallback, th.CallbackDataPrefix("auk:apply:"))
}
