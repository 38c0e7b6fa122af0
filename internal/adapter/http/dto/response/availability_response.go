package response

import (
	"time"

	"tripmarket/internal/domain/entities"
)

type AvailabilityResponse struct {
	ListingID        string   `json:"listingId"`
	UnavailableDates []string `json:"unavailableDates"`
}

func FromUnavailableDates(listingID string, dates []string) AvailabilityResponse {
	if dates == nil {
		dates = []string{}
	}
	return AvailabilityResponse{ListingID: listingID, UnavailableDates: dates}
}

type BlockedRangeResponse struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listingId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBlockedRange(br entities.BlockedDateRange) BlockedRangeResponse {
	return BlockedRangeResponse{
		ID:        br.ID,
		ListingID: br.ListingID,
		StartDate: br.StartDate,
		EndDate:   br.EndDate,
		CreatedAt: br.CreatedAt,
	}
}

func FromBlockedRanges(brs []entities.BlockedDateRange) []BlockedRangeResponse {
	out := make([]BlockedRangeResponse, 0, len(brs))
	for _, br := range brs {
		out = append(out, FromBlockedRange(br))
	}
	return out
}
