package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Коды для модуля аукциона
	LotNotFound         failure.ErrorCode = "LotNotFound"         // Нет ни в кеше, ни в апстриме
	InvalidLotID        failure.ErrorCode = "InvalidLotID"        // Пришёл мусор вместо ID
	FilterNotFound      failure.ErrorCode = "FilterNotFound"      // Суб-категории нет в каталоге
	RegionNotFound      failure.ErrorCode = "RegionNotFound"      // Неизвестный код региона
	UpstreamUnavailable failure.ErrorCode = "UpstreamUnavailable" // e-auksion не ответил
	InvalidPriceRange   failure.ErrorCode = "InvalidPriceRange"   // Сломан формат 100M-500M

	// Коды для модуля объявлений
	ListingNotFound    failure.ErrorCode = "ListingNotFound"
	InvalidListingType failure.ErrorCode = "InvalidListingType" // Только sale или rent
)
