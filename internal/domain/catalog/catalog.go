// Package catalog хранит статичную таксономию e-auksion.uz: группы, категории
// и регионы с их числовыми id апстрима. Это данные конфигурации, а не логика:
// часть id подобрана эмпирически и помечена Unconfirmed, чтобы их можно было
// поправить без изменения кода.
package catalog

import (
	"context"
	"log/slog"
	"strings"
)

// MainCategory — группа первого уровня (confiscant_groups_id).
type MainCategory struct {
	Key     string
	Emoji   string
	Title   string
	GroupID string
}

// SubCategory — категория второго уровня внутри группы.
type SubCategory struct {
	Key   string
	Emoji string
	Title string
}

// Filter — пара идентификаторов, обязательная в каждом листинговом запросе.
type Filter struct {
	GroupID    string
	CategoryID int
	// Unconfirmed: id не подтверждён апстримом, подобран по выдаче
	Unconfirmed bool
}

//nolint:gochecknoglobals // статичные данные каталога
var mainCategories = []MainCategory{
	{Key: "davlat_aktivlari", Emoji: "🏛", Title: "Davlat aktivlari", GroupID: "5"},
	{Key: "kochmas_mulk", Emoji: "🏠", Title: "Ko'chmas mulk", GroupID: "1"},
	{Key: "yer_uchastkalari", Emoji: "🌍", Title: "Yer uchaskalari", GroupID: "6"},
	{Key: "dehqon_yer", Emoji: "🌾", Title: "Dehqon xo'jaligiga mo'ljallangan yer", GroupID: "24"},
	{Key: "qishloq_yer", Emoji: "🚜", Title: "Qishloq xo'jaligiga mo'ljallangan yer", GroupID: "33"},
	{Key: "yer_qari", Emoji: "💎", Title: "Yer qa'ri uchastkasidan foydalanish", GroupID: "10"},
	{Key: "daryo_tozalash", Emoji: "🌊", Title: "Daryo o'zanlarini tozalash", GroupID: "9"},
	{Key: "kochma_savdo", Emoji: "🛒", Title: "Ko'chma savdo joylari", GroupID: "23"},
	{Key: "elektr_stansiya", Emoji: "⚡", Title: "Elektr stansiyalarini qurish", GroupID: "27"},
	{Key: "mikromarkazlar", Emoji: "🏘", Title: "Mikromarkazlar", GroupID: "28"},
}

//nolint:gochecknoglobals
var subCategories = map[string][]SubCategory{
	"davlat_aktivlari": {
		{Key: "davlat_obyekt", Emoji: "🏢", Title: "Davlat obyekti"},
		{Key: "davlat_obyekt_tanlov", Emoji: "📋", Title: "Davlat obyekti (Tanlov)"},
	},
	"kochmas_mulk": {
		{Key: "kop_qavatli", Emoji: "🏢", Title: "Ko'p qavatli turar-joylar"},
		{Key: "turar_joy_uchastka", Emoji: "🏡", Title: "Turar-joy uchastkasi (hovli)"},
		{Key: "qishloq_yer", Emoji: "🌾", Title: "Qishloq xo'jalik yerlari"},
		{Key: "noturar_joy", Emoji: "🏭", Title: "Noturar-joy obyektlari"},
		{Key: "tugallanmagan_kop", Emoji: "🏗", Title: "Qurilishi tugallanmagan ko'p qavatli"},
		{Key: "tugallanmagan_uchastka", Emoji: "🏗", Title: "Qurilishi tugallanmagan turar-joy uchastkalari"},
		{Key: "tugallanmagan_bino", Emoji: "🏗", Title: "Qurilishi tugallanmagan binolar"},
		{Key: "bosh_yer", Emoji: "📍", Title: "Bo'sh yerlar"},
		{Key: "boshqa_mulk", Emoji: "📦", Title: "Boshqa turdagi ko'chmas mulklar"},
		{Key: "ozogroservis", Emoji: "🌱", Title: "O'zagroservis AJ ko'chmas mulklari"},
		{Key: "ozagrokimyo", Emoji: "🧪", Title: "O'zagrokimyohimoya AJ bino-inshootlari"},
		{Key: "davlat_obyekt_km", Emoji: "🏛", Title: "Davlat obyekti"},
	},
	"yer_uchastkalari": {
		{Key: "tadbirkorlik", Emoji: "🏪", Title: "Tadbirkorlik va shaharsozlik uchun"},
		{Key: "yakka_uy", Emoji: "🏡", Title: "Yakka tartibda uy-joy qurish"},
		{Key: "kop_qavatli_uy", Emoji: "🏢", Title: "Ko'p qavatli uy-joy qurish"},
		{Key: "yoshlar_zona", Emoji: "👥", Title: "Yoshlar sanoat zonalari"},
		{Key: "ormon_fond", Emoji: "🌲", Title: "O'rmon fondi yer uchastkalari"},
		{Key: "yangi_toshkent", Emoji: "🏙", Title: "Yangi Toshkent loyihasi"},
		{Key: "ekoturizm", Emoji: "🏞", Title: "Ekoturizmni tashkil etish"},
		{Key: "kichik_sanoat", Emoji: "🏭", Title: "Kichik sanoat zonalari"},
		{Key: "erkin_zona", Emoji: "🌐", Title: "Erkin iqtisodiy zonalari"},
		{Key: "yangi_ozbekiston_kop", Emoji: "🏙", Title: "Yangi O'zbekiston (ko'p qavatli)"},
		{Key: "turistik_rekreatsion", Emoji: "🏖", Title: "Turistik rekreatsion zona"},
		{Key: "turistik_zona", Emoji: "🗿", Title: "Turistik zona"},
		{Key: "yangi_ozbekiston_xizmat", Emoji: "🏪", Title: "Yangi O'zbekiston xizmat joylari"},
		{Key: "maxsus_sanoat", Emoji: "🏭", Title: "Maxsus sanoat zonalari"},
		{Key: "xalqaro_yol", Emoji: "🛣", Title: "Xalqaro yo'llar bo'yidagi xizmat joylari"},
		{Key: "nodavlat_talim", Emoji: "🎓", Title: "Nodavlat ta'lim muassasalari"},
		{Key: "vm63", Emoji: "🏘", Title: "Uy-joy qurish (VM-63)"},
		{Key: "mikromarkaz_yer", Emoji: "🏘", Title: "Mikromarkazlar uchun"},
		{Key: "elektromobil", Emoji: "🔌", Title: "Elektromobillar quvvatlantirish"},
		{Key: "master_reja", Emoji: "📐", Title: "Master-reja asosida savdoga chiqarilgan"},
		{Key: "hudud_master", Emoji: "🗺", Title: "Hududlar uchun master-reja"},
		{Key: "renovatsiya", Emoji: "🔨", Title: "Renovatsiya loyihalari"},
		{Key: "olis_hudud", Emoji: "🏜", Title: "Olis va cho'l hududlardagi yoshlar zonalari"},
		{Key: "bosh_yer_uch", Emoji: "📍", Title: "Bo'sh yerlar"},
	},
	"dehqon_yer": {
		{Key: "ijaraga_berish", Emoji: "📋", Title: "Dehqon xo'jaligi yuritish uchun ijara"},
		{Key: "kooperativ", Emoji: "🤝", Title: "Qishloq xo'jaligi kooperativini tashkil etish"},
		{Key: "yoshlar_dehqon", Emoji: "👥", Title: "Yoshlarga dehqon xo'jaligi"},
		{Key: "yangi_ozlash_pf10", Emoji: "🆕", Title: "Yangi o'zlashtirilayotgan yerlar (PF-10)"},
	},
	"qishloq_yer": {
		{Key: "qishloq_ijara", Emoji: "📋", Title: "Qishloq xo'jaligi maqsadlari uchun ijara"},
		{Key: "ekin_pf18", Emoji: "🌾", Title: "Qishloq xo'jaligi ekinlarini yetishtirish (PF-18)"},
		{Key: "qishloq_yangi_pf10", Emoji: "🆕", Title: "Yangi o'zlashtirilayotgan yerlar (PF-10)"},
	},
	"yer_qari": {
		{Key: "oltin_izlash", Emoji: "💰", Title: "Qimmatbaho metallarni izlovchilar usulida"},
		{Key: "strategik", Emoji: "💎", Title: "Strategik turdagi foydali qazilmalar"},
		{Key: "noruda", Emoji: "⛏", Title: "Noruda foydali qazilmalar"},
		{Key: "uglevodorod", Emoji: "🛢", Title: "Uglevodorod foydali qazilmasi"},
	},
	"daryo_tozalash": {
		{Key: "daryo_ozan", Emoji: "🌊", Title: "Daryolar o'zanlarini tozalash"},
	},
	"kochma_savdo": {
		{Key: "kochma_obyekt", Emoji: "🛒", Title: "Ko'chma savdo obyektlari"},
	},
	"elektr_stansiya": {
		{Key: "gidroelektr", Emoji: "💧", Title: "Gidroelektr stansiyalarini qurish"},
	},
	"mikromarkazlar": {
		{Key: "mulk_ijara", Emoji: "🏢", Title: "Mikromarkazlar uchun davlat mulkini ijara"},
		{Key: "yer_mikromarkaz", Emoji: "🌍", Title: "Mikromarkazlar uchun yer uchastkasi"},
	},
}

//nolint:gochecknoglobals
var filters = map[string]Filter{
	"davlat_obyekt":        {GroupID: "5", CategoryID: 27},
	"davlat_obyekt_tanlov": {GroupID: "5", CategoryID: 121},

	"kop_qavatli":            {GroupID: "1", CategoryID: 3},
	"turar_joy_uchastka":     {GroupID: "1", CategoryID: 2},
	"qishloq_yer":            {GroupID: "1", CategoryID: 161},
	"noturar_joy":            {GroupID: "1", CategoryID: 1, Unconfirmed: true},
	"tugallanmagan_kop":      {GroupID: "1", CategoryID: 6, Unconfirmed: true},
	"tugallanmagan_uchastka": {GroupID: "1", CategoryID: 5, Unconfirmed: true},
	"tugallanmagan_bino":     {GroupID: "1", CategoryID: 4, Unconfirmed: true},
	"bosh_yer":               {GroupID: "1", CategoryID: 39, Unconfirmed: true},
	"boshqa_mulk":            {GroupID: "1", CategoryID: 68, Unconfirmed: true},
	"ozogroservis":           {GroupID: "1", CategoryID: 143, Unconfirmed: true},
	"ozagrokimyo":            {GroupID: "1", CategoryID: 99, Unconfirmed: true},
	"davlat_obyekt_km":       {GroupID: "1", CategoryID: 27, Unconfirmed: true},

	"tadbirkorlik":            {GroupID: "6", CategoryID: 46},
	"yakka_uy":                {GroupID: "6", CategoryID: 97, Unconfirmed: true},
	"kop_qavatli_uy":          {GroupID: "6", CategoryID: 48, Unconfirmed: true},
	"yoshlar_zona":            {GroupID: "6", CategoryID: 69, Unconfirmed: true},
	"ormon_fond":              {GroupID: "6", CategoryID: 124, Unconfirmed: true},
	"yangi_toshkent":          {GroupID: "6", CategoryID: 123, Unconfirmed: true},
	"ekoturizm":               {GroupID: "6", CategoryID: 50, Unconfirmed: true},
	"kichik_sanoat":           {GroupID: "6", CategoryID: 72, Unconfirmed: true},
	"erkin_zona":              {GroupID: "6", CategoryID: 73, Unconfirmed: true},
	"yangi_ozbekiston_kop":    {GroupID: "6", CategoryID: 90, Unconfirmed: true},
	"turistik_rekreatsion":    {GroupID: "6", CategoryID: 74, Unconfirmed: true},
	"turistik_zona":           {GroupID: "6", CategoryID: 106, Unconfirmed: true},
	"yangi_ozbekiston_xizmat": {GroupID: "6", CategoryID: 92, Unconfirmed: true},
	"maxsus_sanoat":           {GroupID: "6", CategoryID: 120, Unconfirmed: true},
	"xalqaro_yol":             {GroupID: "6", CategoryID: 94, Unconfirmed: true},
	"nodavlat_talim":          {GroupID: "6", CategoryID: 95, Unconfirmed: true},
	"vm63":                    {GroupID: "6", CategoryID: 37, Unconfirmed: true},
	"mikromarkaz_yer":         {GroupID: "6", CategoryID: 98, Unconfirmed: true},
	"elektromobil":            {GroupID: "6", CategoryID: 104, Unconfirmed: true},
	"master_reja":             {GroupID: "6", CategoryID: 110, Unconfirmed: true},
	"hudud_master":            {GroupID: "6", CategoryID: 160, Unconfirmed: true},
	"renovatsiya":             {GroupID: "6", CategoryID: 181, Unconfirmed: true},
	"olis_hudud":              {GroupID: "6", CategoryID: 182, Unconfirmed: true},
	"bosh_yer_uch":            {GroupID: "6", CategoryID: 39, Unconfirmed: true},

	"ijaraga_berish":   {GroupID: "24", CategoryID: 126},
	"kooperativ":       {GroupID: "24", CategoryID: 127, Unconfirmed: true},
	"yoshlar_dehqon":   {GroupID: "24", CategoryID: 132, Unconfirmed: true},
	"yangi_ozlash_pf10": {GroupID: "24", CategoryID: 156, Unconfirmed: true},

	"qishloq_ijara":     {GroupID: "33", CategoryID: 128},
	"ekin_pf18":         {GroupID: "33", CategoryID: 153, Unconfirmed: true},
	"qishloq_yangi_pf10": {GroupID: "33", CategoryID: 155, Unconfirmed: true},

	"oltin_izlash": {GroupID: "10", CategoryID: 38},
	"strategik":    {GroupID: "10", CategoryID: 52, Unconfirmed: true},
	"noruda":       {GroupID: "10", CategoryID: 43, Unconfirmed: true},
	"uglevodorod":  {GroupID: "10", CategoryID: 178, Unconfirmed: true},

	"daryo_ozan": {GroupID: "9", CategoryID: 36},

	"kochma_obyekt": {GroupID: "23", CategoryID: 86},

	"gidroelektr": {GroupID: "27", CategoryID: 103},

	"mulk_ijara":      {GroupID: "28", CategoryID: 105},
	"yer_mikromarkaz": {GroupID: "28", CategoryID: 98, Unconfirmed: true},
}

// MainCategories возвращает группы в порядке отображения.
func MainCategories() []MainCategory {
	return mainCategories
}

func MainCategoryByKey(key string) (MainCategory, bool) {
	for _, mc := range mainCategories {
		if mc.Key == key {
			return mc, true
		}
	}

	return MainCategory{}, false
}

// SubCategoriesOf возвращает категории группы в порядке отображения.
func SubCategoriesOf(mainKey string) []SubCategory {
	return subCategories[mainKey]
}

func SubCategoryByKey(mainKey, subKey string) (SubCategory, bool) {
	for _, sc := range subCategories[mainKey] {
		if sc.Key == subKey {
			return sc, true
		}
	}

	return SubCategory{}, false
}

// FilterFor разрешает суб-категорию в пару (groups_id, categories_id).
func FilterFor(subKey string) (Filter, bool) {
	f, ok := filters[subKey]
	return f, ok
}

// Breadcrumb собирает путь навигации без эмодзи.
func Breadcrumb(mainKey, subKey string) string {
	parts := []string{"E-AUKSION", "Lotlar - Yangi lotlar"}

	if mc, ok := MainCategoryByKey(mainKey); ok {
		parts = append(parts, mc.Title)
	}

	if subKey != "" {
		if sc, ok := SubCategoryByKey(mainKey, subKey); ok {
			parts = append(parts, sc.Title)
		}
	}

	return strings.Join(parts, " || ")
}

// Validate проверяет полноту каталога при старте: на каждую суб-категорию
// должен существовать фильтр, неподтверждённые id логируются как warning.
// Возвращает число неподтверждённых записей.
func Validate(ctx context.Context, log *slog.Logger) int {
	unconfirmed := 0

	for mainKey, subs := range subCategories {
		for _, sc := range subs {
			f, ok := filters[sc.Key]
			if !ok {
				log.WarnContext(ctx, "catalog entry has no upstream filter",
					"main_category", mainKey,
					"sub_category", sc.Key,
				)

				continue
			}

			if f.Unconfirmed {
				unconfirmed++

				log.WarnContext(ctx, "catalog filter id is unconfirmed",
					"sub_category", sc.Key,
					"groups_id", f.GroupID,
					"categories_id", f.CategoryID,
				)
			}
		}
	}

	return unconfirmed
}
