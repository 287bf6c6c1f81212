package dto

// GroupCountDTO — количество заявок в разрезе одного признака.
type GroupCountDTO struct {
	Group string `json:"group"`
	Count uint64 `json:"count"`
}

type SummaryReportDTO struct {
	TotalRequests  uint64          `json:"total_requests"`
	ByStatus       []GroupCountDTO `json:"by_status"`
	ByPriority     []GroupCountDTO `json:"by_priority"`
	ByType         []GroupCountDTO `json:"by_type"`
	OpenByTeam     []GroupCountDTO `json:"open_by_team"`
	AvgRepairHours float64         `json:"avg_repair_hours"`
}
