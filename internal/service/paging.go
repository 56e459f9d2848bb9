package service

import "commune/internal/httpx"

// PageSize is fixed across every listing endpoint.
const PageSize = 10

// clampPage normalizes the 1-indexed page number.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageMeta(page int, total int64) httpx.Meta {
	pages := int((total + PageSize - 1) / PageSize)
	return httpx.Meta{Total: total, Pages: pages, Page: page}
}
