package entity

// UsageInfo is a member's consumption against the daily and monthly quotas.
type UsageInfo struct {
	DailyUsed        int
	DailyLimit       int
	DailyRemaining   int
	MonthlyUsed      int
	MonthlyLimit     int
	MonthlyRemaining int
}

// NewUsageInfo derives the remaining counts, never below zero.
func NewUsageInfo(dailyUsed, dailyLimit, monthlyUsed, monthlyLimit int) UsageInfo {
	return UsageInfo{
		DailyUsed:        dailyUsed,
		DailyLimit:       dailyLimit,
		DailyRemaining:   max(dailyLimit-dailyUsed, 0),
		MonthlyUsed:      monthlyUsed,
		MonthlyLimit:     monthlyLimit,
		MonthlyRemaining: max(monthlyLimit-monthlyUsed, 0),
	}
}

// Allowed reports whether one more unit fits in both windows.
func (u UsageInfo) Allowed() bool {
	return u.DailyUsed < u.DailyLimit && u.MonthlyUsed < u.MonthlyLimit
}
