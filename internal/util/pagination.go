package util

// Paginate turns 1-based page/size query values into an offset/limit pair.
// The storefront grid shows 12 products per page by default.
func Paginate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 12
	}
	offset = (page - 1) * size
	return offset, size
}
