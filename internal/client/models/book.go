package models

type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Description     string `json:"description"`
	CategoryID      int64  `json:"categoryId"`
	CategoryName    string `json:"categoryName"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies"`
	PublishedDate   string `json:"publishedDate"`
	CoverImageURL   string `json:"coverImageUrl,omitempty"`
	Active          bool   `json:"active"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

type Category struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Active         bool   `json:"active"`
	TotalBooks     int    `json:"totalBooks"`
	AvailableBooks int    `json:"availableBooks"`
}

// BookSearchParams describes the query string of GET /books/search.
// Zero values mean "not set" and are omitted from the request.
type BookSearchParams struct {
	Query         string
	CategoryID    int64
	Author        string
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}
