package store

import "github.com/pankajarora1984/chandan-sarees-api/models"

type pageBounds struct {
	start, end int
}

// paginate clamps page/limit to sane defaults and computes slice bounds
// plus the page envelope for a list of the given length.
func paginate(total, page, limit int) (pageBounds, models.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	end := page * limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	totalPages := (total + limit - 1) / limit
	return pageBounds{start: start, end: end}, models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page*limit < total,
		HasPrev:     start > 0,
	}
}
