package constants

// Обменник для событий каталога
const (
	ListingsEventsExchange     = "listings_events"
	ListingsEventsExchangeType = "topic"
)

// Ключи маршрутизации
const (
	RoutingKeyListingSubmitted = "listings.submission.created"
)
