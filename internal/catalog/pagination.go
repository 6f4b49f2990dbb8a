package catalog

const (
	DefaultLimit = 12
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit far from int overflow.
	MaxPage = 1_000_000
)

// Meta describes one page of a list endpoint.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NormalizePage coerces user supplied page/limit into usable values.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Paginate computes page metadata. TotalPages is never below 1.
func Paginate(total int64, page, limit int) Meta {
	page, limit = NormalizePage(page, limit)
	if total < 0 {
		total = 0
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	return Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Offset is the number of rows to skip for the given page.
func Offset(page, limit int) int {
	page, limit = NormalizePage(page, limit)
	return (page - 1) * limit
}
