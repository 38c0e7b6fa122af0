package request

// BlockedRangeRequest declares a closed period for a listing; both dates are
// ISO (YYYY-MM-DD) and inclusive.
type BlockedRangeRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}
