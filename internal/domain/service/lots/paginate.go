package service

const DefaultPerPage = 10

// Page — страница выдачи для клавиатур пагинации.
type Page[T any] struct {
	Items      []T
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate режет выдачу на страницы. Страница за пределами выдачи
// возвращается пустой.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	if page < 1 {
		page = 1
	}

	totalPages := (len(items) + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage

	if start > len(items) {
		start = len(items)
	}

	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
