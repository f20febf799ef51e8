package payhistory

type HistoryEntryResponse struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	GrossPay    string `json:"gross_pay"`
	NetPay      string `json:"net_pay"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Status      string `json:"status"`
	ReferenceID string `json:"reference_id"`
}

func MapToResponse(e Entry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:          e.ID,
		Source:      e.Source,
		GrossPay:    e.GrossPay.StringFixed(2),
		NetPay:      e.NetPay.StringFixed(2),
		PeriodStart: e.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   e.PeriodEnd.Format("2006-01-02"),
		Status:      e.Status,
		ReferenceID: e.ReferenceID,
	}
}

func mapToListResponse(entries []Entry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = MapToResponse(e)
	}
	return out
}
