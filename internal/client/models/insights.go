package models

// ActivityBars is the fixed weekly activity chart, in percent.
var ActivityBars = [7]int{40, 70, 30, 85, 50, 90, 60}

const (
	DefaultVibe   = "Radiant"
	maxStreakDays = 5
)

// Insights are cosmetic statistics derived only from the number of
// entries. They carry no analytical meaning.
type Insights struct {
	HealingProgress int
	StressReleased  int
	StreakDays      int
	Activity        [7]int
	Vibe            string
}

// ComputeInsights derives the insight cards for n entries. Percentages are
// zero for an empty journal and never exceed 100.
func ComputeInsights(n int) Insights {
	in := Insights{
		StreakDays: min(n, maxStreakDays),
		Activity:   ActivityBars,
		Vibe:       DefaultVibe,
	}
	if n > 0 {
		in.HealingProgress = min(100, 65+(n*3)%35)
		in.StressReleased = min(100, 25+(n*4)%60)
	}
	return in
}
