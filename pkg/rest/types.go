// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// CreateListingRequest Заявка на публикацию объявления
type CreateListingRequest struct {
	// Type Тип сделки: sale или rent
	Type         string `json:"type" validate:"required"`
	PropertyKind string `json:"propertyKind" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Price        string `json:"price" validate:"required"`
	Comment      string `json:"comment,omitempty"`
	Media        string `json:"media,omitempty"`
	Region       string `json:"region,omitempty"`
}

// Listing Объявление
type Listing struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	PropertyKind string `json:"propertyKind"`
	Location     string `json:"location"`
	Price        string `json:"price"`
	Comment      string `json:"comment,omitempty"`
	Media        string `json:"media,omitempty"`
	Region       string `json:"region,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ListingList Список объявлений
type ListingList struct {
	Items []Listing `json:"items"`
	Total int       `json:"total"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
