package services

// IsNext reports whether documents remain beyond the returned window.
func IsNext(total, skip int64, returned int) bool {
	return total > skip+int64(returned)
}

// IsNextAggregate is the saved-questions variant: the multiplier is the
// returned page length, not the requested page size. It under-reports on a
// short last page; keep it that way.
func IsNextAggregate(total int64, page, returned int) bool {
	return total > int64(page*returned)
}
