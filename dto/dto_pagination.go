package dto

// PageDTO is the shared paginated-query input. Zero values are defaulted by
// Norm before validation so query-string parsing can leave fields unset.
type PageDTO struct {
	Page     int    `json:"page"     query:"page"     validate:"gte=1"`
	PageSize int    `json:"pageSize" query:"pageSize" validate:"gte=1,lte=100"`
	Query    string `json:"query"    query:"query"    validate:"omitempty,max=100"`
	Filter   string `json:"filter"   query:"filter"   validate:"omitempty,max=30"`
}

func (p *PageDTO) Norm() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 10
	}
}

func (p PageDTO) Skip() int64 {
	return int64((p.Page - 1) * p.PageSize)
}

func (p PageDTO) Limit() int64 {
	return int64(p.PageSize)
}
