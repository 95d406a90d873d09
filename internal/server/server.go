package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
// Сейчас у нас есть только ListingServer, но их может быть несколько
type Server struct {
	ListingServer
}

func NewServer(
	listingServer ListingServer,
) Server {
	return Server{
		ListingServer: listingServer,
	}
}
