package domain

// QueryResult - одна страница выдачи каталога
type QueryResult struct {
	Items      []Listing
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}

// ContactLinks - ссылки для связи с продавцом
type ContactLinks struct {
	WhatsApp string
	Phone    string
}

// ListingDetails - данные страницы одного объявления
type ListingDetails struct {
	Listing        Listing
	Gallery        []string
	Related        []Listing
	Contact        ContactLinks
	FormattedPrice string
}
