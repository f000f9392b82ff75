package response

import (
	"bookwise/internal/usecase/queries"
)

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type AvailableDatesResponse struct {
	Month string   `json:"month"`
	Dates []string `json:"dates"`
}

func FromSlotViews(date string, views []queries.SlotView) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{Start: v.Start, End: v.End}
	}
	return &AvailableSlotsResponse{Date: date, Slots: slots}
}

func FromAvailableDates(month string, dates []string) *AvailableDatesResponse {
	if dates == nil {
		dates = []string{}
	}
	return &AvailableDatesResponse{Month: month, Dates: dates}
}
