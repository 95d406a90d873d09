// Package view — тексты и шаблоны сообщений бота. Пользовательские тексты
// на узбекском, как на самом e-auksion.uz.
package view

import (
	"fmt"
	"strings"

	"auksion_bot/internal/domain/entity"
)

const StartMessage = `👋 <b>Assalomu alaykum!</b>

Bu bot orqali e-auksion.uz lotlarini ko'rishingiz mumkin:

🏛 Kategoriyalar bo'yicha lotlar
🔍 Qidiruv (matn, ID, narx, joylashuv)
⭐ Sevimlilar va narx kuzatuvi
📤 Lot bo'yicha ariza yuborish

Boshlash uchun /auksion buyrug'ini yuboring.`

const (
	MenuTitle = "🏛 <b>E-AUKSION</b>\n\nKategoriyani tanlang:"

	SearchMenu = "🔍 <b>QIDIRUV</b>\n\n" +
		"Qidiruv turini tanlang:\n\n" +
		"🔤 <b>Matn:</b> Lot nomida qidirish\n" +
		"🔢 <b>ID:</b> Lot raqami bo'yicha\n" +
		"💰 <b>Narx:</b> Narx oralig'i\n" +
		"📍 <b>Joylashuv:</b> Viloyat/tuman"

	AskSearchText     = "🔤 Qidiruv so'zini kiriting:"
	AskSearchID       = "🔢 Lot raqamini kiriting:"
	AskSearchLocation = "📍 Viloyat yoki tuman nomini kiriting:\n\n<i>Misol: Toshkent, Samarqand, Buxoro</i>"
	AskSearchPrice    = "💰 Narx oralig'ini kiriting:\n\n<i>Format: 100M-500M yoki 1B-5B</i>"
	AskInquiryComment = "💬 Izohingizni yozing (telefon raqamingizni qoldiring):"

	NoLots           = "❌ Bu kategoriyada hozircha lotlar yo'q."
	LotNotFound      = "❌ Lot topilmadi yoki o'chirilgan."
	SomethingWrong   = "❌ Xatolik yuz berdi. Keyinroq urinib ko'ring."
	BadPriceFormat   = "❌ Narx formati noto'g'ri!\n\nFormat: 100M-500M yoki 1B-5B\nQaytadan kiriting:"
	NothingFound     = "❌ Hech narsa topilmadi.\n\nBoshqa so'z bilan qidiring yoki kategoriyalardan tanlang."
	FavoriteAdded    = "⭐ Sevimlilarga qo'shildi"
	FavoriteRemoved  = "🗑 Sevimlilardan o'chirildi"
	FavoritesEmpty   = "⭐ Sevimlilaringiz hozircha bo'sh."
	InquiryAccepted  = "✅ <b>Arizangiz muvaffaqiyatli yuborildi!</b>\n\nTez orada administrator siz bilan bog'lanadi. Rahmat! 🙏"
)

// LotListItem — строка выдачи в списке лотов.
func LotListItem(lot entity.Lot) string {
	return fmt.Sprintf("📦 %s — %s", lot.Name, entity.FormatPrice(lot.EffectivePrice()))
}

// LotCard собирает детальную карточку лота.
func LotCard(lot entity.Lot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📦 <b>%s</b>\n", lot.Name)

	if lot.LotNumber != "" {
		fmt.Fprintf(&sb, "🔢 Lot: %s\n", lot.LotNumber)
	}

	fmt.Fprintf(&sb, "🆔 ID: %d\n\n", lot.ID)

	fmt.Fprintf(&sb, "💰 <b>Boshlang'ich narx:</b> %s\n", entity.FormatPrice(lot.StartPrice))

	if lot.CurrentPrice > 0 && lot.CurrentPrice != lot.StartPrice {
		fmt.Fprintf(&sb, "💵 <b>Joriy narx:</b> %s\n", entity.FormatPrice(lot.CurrentPrice))
	}

	if lot.MinIncrement > 0 {
		fmt.Fprintf(&sb, "📈 <b>Qadam:</b> %s\n", entity.FormatPrice(lot.MinIncrement))
	}

	if lot.EstimatedValue != nil {
		fmt.Fprintf(&sb, "📊 <b>Baholangan:</b> %s\n", entity.FormatPrice(*lot.EstimatedValue))
	}

	fmt.Fprintf(&sb, "\n🏷 Kategoriya: %s\n", lot.Category)
	fmt.Fprintf(&sb, "📌 Holat: %s\n", lot.Status)

	if lot.Location != "" {
		fmt.Fprintf(&sb, "📍 Manzil: %s\n", lot.Location)
	}

	if lot.AuctionStart != nil {
		fmt.Fprintf(&sb, "📅 Boshlanish: %s\n", lot.AuctionStart.Format("02.01.2006 15:04"))
	}

	if len(lot.Properties) > 0 {
		sb.WriteString("\n<b>Xususiyatlar:</b>\n")

		for _, key := range []string{"area", "year_built", "region", "district", "balance_holder"} {
			if v, ok := lot.Properties[key]; ok {
				fmt.Fprintf(&sb, "• %s: %s\n", propertyLabel(key), v)
			}
		}
	}

	if len(lot.Images) > 0 {
		fmt.Fprintf(&sb, "\n📸 Rasmlar: %d ta\n", len(lot.Images))
	}

	if lot.Description != "" {
		fmt.Fprintf(&sb, "\nℹ️ %s\n", lot.Description)
	}

	return sb.String()
}

func propertyLabel(key string) string {
	switch key {
	case "area":
		return "Maydoni"
	case "year_built":
		return "Qurilgan yili"
	case "region":
		return "Viloyat"
	case "district":
		return "Tuman"
	case "balance_holder":
		return "Balansda saqlovchi"
	}

	return key
}

// SearchResults — заголовок выдачи поиска.
func SearchResults(searchInfo string, found int) string {
	if found == 0 {
		return fmt.Sprintf("🔍 <b>%s</b>\n\n%s", searchInfo, NothingFound)
	}

	return fmt.Sprintf("🔍 <b>%s</b>\n\n✅ Topildi: %d ta lot\n\nLotni tanlang:", searchInfo, found)
}
