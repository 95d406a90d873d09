package catalog

// Region — виложат с числовым id апстрима. ID == 0 означает "все регионы":
// в запрос в этом случае уходит null.
type Region struct {
	Key   string
	Emoji string
	Title string
	ID    int
}

// AllRegions удерживает фильтр региона выключенным.
func (r Region) AllRegions() bool {
	return r.ID == 0
}

//nolint:gochecknoglobals // статичные данные каталога
var regions = []Region{
	{Key: "all", Emoji: "🌍", Title: "Barcha viloyatlar", ID: 0},
	{Key: "toshkent_sh", Emoji: "🏛", Title: "Toshkent shahri", ID: 13},
	{Key: "toshkent", Emoji: "🏙", Title: "Toshkent viloyati", ID: 14},
	{Key: "samarqand", Emoji: "🕌", Title: "Samarqand", ID: 11},
	{Key: "buxoro", Emoji: "🕌", Title: "Buxoro", ID: 2},
	{Key: "andijon", Emoji: "🏔", Title: "Andijon", ID: 1},
	{Key: "fargona", Emoji: "🌄", Title: "Farg'ona", ID: 3},
	{Key: "namangan", Emoji: "🏔", Title: "Namangan", ID: 8},
	{Key: "qashqadaryo", Emoji: "🏜", Title: "Qashqadaryo", ID: 10},
	// sirdaryo делит id 11 с samarqand: так отдаёт сам апстрим
	{Key: "surxondaryo", Emoji: "🌞", Title: "Surxondaryo", ID: 12},
	{Key: "jizzax", Emoji: "🏞", Title: "Jizzax", ID: 4},
	{Key: "sirdaryo", Emoji: "🌊", Title: "Sirdaryo", ID: 11},
	{Key: "navoiy", Emoji: "⛰", Title: "Navoiy", ID: 9},
	{Key: "xorazm", Emoji: "🏜", Title: "Xorazm", ID: 15},
	{Key: "qoraqalpog", Emoji: "🐪", Title: "Qoraqalpog'iston", ID: 16},
}

// Regions возвращает регионы в порядке отображения, "all" первым.
func Regions() []Region {
	return regions
}

func RegionByKey(key string) (Region, bool) {
	for _, r := range regions {
		if r.Key == key {
			return r, true
		}
	}

	return Region{}, false
}
