package service

const (
	// Time windows
	DashboardStreakDays = 90 // history scanned for streaks on the dashboard
	DefaultReportDays   = 28
	DefaultHorizonDays  = 28

	// How far before a range to look for a carry-in weight sample
	WeightLookbackDays = 90

	RecentWeightLimit = 10
)
