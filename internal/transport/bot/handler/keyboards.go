package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"auksion_bot/internal/domain/catalog"
	"auksion_bot/internal/domain/entity"
)

func mainMenuKeyboard() *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(catalog.MainCategories())+2)

	for _, mc := range catalog.MainCategories() {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(mc.Emoji+" "+mc.Title).
				WithCallbackData("auk:cat:"+mc.Key),
		))
	}

	rows = append(rows,
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🔍 Qidiruv").WithCallbackData("auk:search"),
			tu.InlineKeyboardButton("⭐ Sevimlilar").WithCallbackData("auk:favs:1"),
		),
	)

	return tu.InlineKeyboard(rows...)
}

func subCategoryKeyboard(mainKey string) *telego.InlineKeyboardMarkup {
	subs := catalog.SubCategoriesOf(mainKey)
	rows := make([][]telego.InlineKeyboardButton, 0, len(subs)+1)

	for _, sc := range subs {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(sc.Emoji+" "+sc.Title).
				WithCallbackData(fmt.Sprintf("auk:sub:%s:%s", mainKey, sc.Key)),
		))
	}

	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("🔙 Orqaga").WithCallbackData("auk:menu"),
	))

	return tu.InlineKeyboard(rows...)
}

func regionKeyboard(mainKey, subKey string) *telego.InlineKeyboardMarkup {
	regions := catalog.Regions()
	rows := make([][]telego.InlineKeyboardButton, 0, len(regions)/2+2)

	// "all" отдельной строкой, остальные по два в ряд
	all := regions[0]
	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton(all.Emoji+" "+all.Title).
			WithCallbackData(fmt.Sprintf("auk:list:%s:%s:%s:1", mainKey, subKey, all.Key)),
	))

	rest := regions[1:]
	for i := 0; i < len(rest); i += 2 {
		row := []telego.InlineKeyboardButton{
			tu.InlineKeyboardButton(rest[i].Emoji + " " + rest[i].Title).
				WithCallbackData(fmt.Sprintf("auk:list:%s:%s:%s:1", mainKey, subKey, rest[i].Key)),
		}

		if i+1 < len(rest) {
			row = append(row,
				tu.InlineKeyboardButton(rest[i+1].Emoji+" "+rest[i+1].Title).
					WithCallbackData(fmt.Sprintf("auk:list:%s:%s:%s:1", mainKey, subKey, rest[i+1].Key)),
			)
		}

		rows = append(rows, row)
	}

	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("🔙 Orqaga").WithCallbackData("auk:cat:"+mainKey),
	))

	return tu.InlineKeyboard(rows...)
}

// lotListKeyboard — лоты страницы плюс пагинация. hasNext определяется по
// полноте страницы: точного числа страниц апстрим не отдаёт.
func lotListKeyboard(
	lots []entity.Lot,
	mainKey, subKey, regionKey string,
	page int,
	hasNext bool,
) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(lots)+2)

	for _, lot := range lots {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(fmt.Sprintf("📦 #%d %s", lot.ID, entity.FormatPrice(lot.EffectivePrice()))).
				WithCallbackData(fmt.Sprintf("auk:lot:%d", lot.ID)),
		))
	}

	var nav []telego.InlineKeyboardButton

	if page > 1 {
		nav = append(nav, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("auk:list:%s:%s:%s:%d", mainKey, subKey, regionKey, page-1)))
	}

	if hasNext {
		nav = append(nav, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("auk:list:%s:%s:%s:%d", mainKey, subKey, regionKey, page+1)))
	}

	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("🔙 Orqaga").
			WithCallbackData(fmt.Sprintf("auk:sub:%s:%s", mainKey, subKey)),
	))

	return tu.InlineKeyboard(rows...)
}

func lotCardKeyboard(lotID int64, isFavorite bool, backData string) *telego.InlineKeyboardMarkup {
	favButton := tu.InlineKeyboardButton("⭐ Sevimlilarga").
		WithCallbackData(fmt.Sprintf("auk:fav:add:%d", lotID))
	if isFavorite {
		favButton = tu.InlineKeyboardButton("🗑 Sevimlilardan o'chirish").
			WithCallbackData(fmt.Sprintf("auk:fav:del:%d", lotID))
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(favButton),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📤 Ariza yuborish").
				WithCallbackData(fmt.Sprintf("auk:apply:%d", lotID)),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🔙 Orqaga").WithCallbackData(backData),
		),
	)
}

func searchMenuKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🔤 Matn bo'yicha").WithCallbackData("auk:search:text"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🔢 Lot ID bo'yicha").WithCallbackData("auk:search:id"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("💰 Narx oralig'i").WithCallbackData("auk:search:price"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📍 Joylashuv").WithCallbackData("auk:search:location"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🔙 Orqaga").WithCallbackData("auk:menu"),
		),
	)
}

func priceRangeKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("💵 100M so'mdan kam").WithCallbackData("auk:price:0-100000000"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("💵 100M - 500M").WithCallbackData("auk:price:100000000-500000000"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("💵 500M - 1B").WithCallbackData("auk:price:500000000-1000000000"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("💵 1B - 5B").WithCallbackData("auk:price:1000000000-5000000000"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("💵 5B dan yuqori").WithCallbackData("auk:price:5000000000-999999999999"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✍️ Qo'lda kiritish").WithCallbackData("auk:price:custom"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🔙 Orqaga").WithCallbackData("auk:search"),
		),
	)
}

func searchResultsKeyboard(lots []entity.Lot) *telego.InlineKeyboardMarkup {
	limit := len(lots)
	if limit > 10 {
		limit = 10
	}

	rows := make([][]telego.InlineKeyboardButton, 0, limit+1)

	for _, lot := range lots[:limit] {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(fmt.Sprintf("📦 #%d %s", lot.ID, entity.FormatPrice(lot.EffectivePrice()))).
				WithCallbackData(fmt.Sprintf("auk:lot:%d", lot.ID)),
		))
	}

	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("🔙 Bosh menyu").WithCallbackData("auk:menu"),
	))

	return tu.InlineKeyboard(rows...)
}

func favoritesKeyboard(lots []entity.Lot, page, totalPages int) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(lots)+2)

	for _, lot := range lots {
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(fmt.Sprintf("📦 #%d %s", lot.ID, entity.FormatPrice(lot.EffectivePrice()))).
				WithCallbackData(fmt.Sprintf("auk:lot:%d", lot.ID)),
		))
	}

	var nav []telego.InlineKeyboardButton

	if page > 1 {
		nav = append(nav, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("auk:favs:%d", page-1)))
	}

	if page < totalPages {
		nav = append(nav, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("auk:favs:%d", page+1)))
	}

	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("🔙 Bosh menyu").WithCallbackData("auk:menu"),
	))

	return tu.InlineKeyboard(rows...)
}
