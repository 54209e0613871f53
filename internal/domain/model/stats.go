package model

// WeeklyStats aggregates requests created since the most recent Monday 00:00.
type WeeklyStats struct {
	Total        int
	Pending      int
	Fulfilled    int
	Cancelled    int
	ByCostCenter map[string]int
}
