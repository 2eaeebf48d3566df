package request

// ListQuery carries limit/offset query parameters with clamping, matching
// the wire contract where clients page with raw offsets.
type ListQuery struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func (q ListQuery) ClampedLimit(def, max int) int {
	if q.Limit < 1 {
		return def
	}
	if q.Limit > max {
		return max
	}
	return q.Limit
}

func (q ListQuery) ClampedOffset() int {
	if q.Offset < 0 {
		return 0
	}
	return q.Offset
}
