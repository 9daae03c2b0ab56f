package stats

import (
	"testing"
	"time"

	"github.com/misterclayt0n/vigor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func workout(typ string, minutes, calories int, date string) models.Workout {
	return models.Workout{
		ID:              typ + "-" + date,
		Type:            typ,
		DurationMinutes: minutes,
		CaloriesBurned:  calories,
		Date:            day(date),
	}
}

func sampleWorkouts() []models.Workout {
	return []models.Workout{
		workout("Running", 30, 300, "2024-06-10"),
		workout("Weightlifting", 45, 200, "2024-06-11"),
		workout("Yoga", 60, 150, "2024-06-12"),
	}
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, Summary{}, Summarize([]models.Workout{}))
}

func TestSummarize_SampleWorkouts(t *testing.T) {
	got := Summarize(sampleWorkouts())
	assert.Equal(t, Summary{Count: 3, TotalDuration: 135, TotalCalories: 650, AvgDuration: 45}, got)
}

func TestSummarize_RoundsAverage(t *testing.T) {
	got := Summarize([]models.Workout{
		workout("Running", 30, 100, "2024-06-10"),
		workout("Running", 31, 100, "2024-06-11"),
	})
	assert.Equal(t, 31, got.AvgDuration) // 30.5 rounds up
}

func TestTypeFrequencies_OrdersByCountThenFirstSeen(t *testing.T) {
	ws := []models.Workout{
		workout("Running", 30, 300, "2024-06-10"),
		workout("Yoga", 60, 150, "2024-06-11"),
		workout("Running", 20, 200, "2024-06-12"),
	}
	got := TypeFrequencies(ws, 5)
	assert.Equal(t, []TypeFrequency{{Type: "Running", Count: 2}, {Type: "Yoga", Count: 1}}, got)
}

func TestTypeFrequencies_TiesAndTruncation(t *testing.T) {
	ws := []models.Workout{
		workout("Swimming", 30, 300, "2024-06-10"),
		workout("Cycling", 30, 300, "2024-06-10"),
		workout("Tennis", 30, 300, "2024-06-10"),
		workout("Cycling", 30, 300, "2024-06-11"),
		workout("Tennis", 30, 300, "2024-06-11"),
	}

	got := TypeFrequencies(ws, 2)
	assert.Equal(t, []TypeFrequency{{Type: "Cycling", Count: 2}, {Type: "Tennis", Count: 2}}, got)

	all := TypeFrequencies(ws, 0)
	require.Len(t, all, 3)
	assert.Equal(t, "Swimming", all[2].Type)
}

func TestDurationByType(t *testing.T) {
	ws := append(sampleWorkouts(), workout("Running", 15, 100, "2024-06-13"))
	assert.Equal(t, []TypeDuration{
		{Type: "Running", Duration: 45},
		{Type: "Weightlifting", Duration: 45},
		{Type: "Yoga", Duration: 60},
	}, DurationByType(ws))
}

func TestStatsByType(t *testing.T) {
	ws := []models.Workout{
		workout("Running", 30, 300, "2024-06-10"),
		workout("Yoga", 60, 150, "2024-06-11"),
		workout("Running", 45, 301, "2024-06-12"),
	}
	got := StatsByType(ws)
	require.Len(t, got, 2)
	assert.Equal(t, TypeStats{
		Type: "Running", Sessions: 2, TotalDuration: 75, TotalCalories: 601,
		AvgDuration: 38, AvgCalories: 301,
	}, got[0])
	assert.Equal(t, "Yoga", got[1].Type)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-06-09", "2024-06-09"}, // Sunday
		{"2024-06-12", "2024-06-09"}, // Wednesday
		{"2024-06-15", "2024-06-09"}, // Saturday
		{"2024-03-02", "2024-02-25"}, // across a month (leap year)
		{"2025-01-01", "2024-12-29"}, // across a year
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, day(tt.want), WeekStart(day(tt.date)))
		})
	}
}

func TestWeekStart_IgnoresClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	late := time.Date(2024, time.June, 15, 23, 30, 0, 0, loc)
	assert.Equal(t, day("2024-06-09"), WeekStart(late))
}

func TestBucketByWeek(t *testing.T) {
	ws := []models.Workout{
		workout("Yoga", 60, 150, "2024-06-12"),
		workout("Running", 30, 300, "2024-06-03"),
		workout("Running", 20, 100, "2024-06-10"),
	}
	got := BucketByWeek(ws)
	assert.Equal(t, []WeeklyBucket{
		{WeekStart: day("2024-06-02"), WorkoutCount: 1, TotalDuration: 30, TotalCalories: 300},
		{WeekStart: day("2024-06-09"), WorkoutCount: 2, TotalDuration: 80, TotalCalories: 250},
	}, got)
}

func TestBucketByWeek_KeepsMostRecentEight(t *testing.T) {
	var ws []models.Workout
	start := day("2024-01-07")
	for i := 11; i >= 0; i-- {
		ws = append(ws, models.Workout{Type: "Running", DurationMinutes: 10, CaloriesBurned: 10, Date: start.AddDate(0, 0, 7*i+2)})
	}

	got := BucketByWeek(ws)
	require.Len(t, got, MaxWeeklyBuckets)
	assert.Equal(t, start.AddDate(0, 0, 7*4), got[0].WeekStart)
	assert.Equal(t, start.AddDate(0, 0, 7*11), got[len(got)-1].WeekStart)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].WeekStart.Before(got[i].WeekStart))
	}
}

func TestBucketByDate_MergesAndKeepsSeven(t *testing.T) {
	var ws []models.Workout
	for i := 1; i <= 9; i++ {
		ws = append(ws, models.Workout{Type: "Walking", DurationMinutes: i, CaloriesBurned: 10 * i, Date: day("2024-06-01").AddDate(0, 0, i)})
	}
	ws = append(ws, workout("Yoga", 5, 5, "2024-06-10"))

	got := BucketByDate(ws)
	require.Len(t, got, MaxDailyBuckets)
	assert.Equal(t, day("2024-06-04"), got[0].Date)
	last := got[len(got)-1]
	assert.Equal(t, DailyBucket{Date: day("2024-06-10"), TotalDuration: 14, TotalCalories: 95}, last)
}

func TestProgress_WeeklyMinutesScenario(t *testing.T) {
	goal := models.Goal{Target: 300, Unit: models.UnitMinutes, Period: models.PeriodWeekly}
	asOf := day("2024-06-12") // Wednesday
	ws := []models.Workout{
		workout("Running", 150, 900, "2024-06-10"), // Monday this week
		workout("Running", 500, 900, "2024-06-05"), // last week
	}

	got := Progress(goal, ws, asOf)
	assert.Equal(t, 150, got.Current)
	assert.Equal(t, 300.0, got.Target)
	assert.InDelta(t, 50.0, got.Percent, 1e-9)
}

func TestProgress_MonthlyCalories(t *testing.T) {
	goal := models.Goal{Target: 8000, Unit: models.UnitCalories, Period: models.PeriodMonthly}
	ws := []models.Workout{
		workout("Running", 30, 400, "2024-05-31"),
		workout("Running", 30, 2000, "2024-06-01"),
		workout("Cycling", 30, 2000, "2024-06-20"),
	}
	got := Progress(goal, ws, day("2024-06-20"))
	assert.Equal(t, 4000, got.Current)
	assert.InDelta(t, 50.0, got.Percent, 1e-9)
}

func TestProgress_ClampsAndUnknownUnit(t *testing.T) {
	ws := []models.Workout{workout("Running", 600, 900, "2024-06-10")}
	asOf := day("2024-06-12")

	over := Progress(models.Goal{Target: 60, Unit: models.UnitMinutes, Period: models.PeriodWeekly}, ws, asOf)
	assert.Equal(t, 600, over.Current)
	assert.Equal(t, 100.0, over.Percent)

	miles := Progress(models.Goal{Target: 10, Unit: "miles", Period: models.PeriodWeekly}, ws, asOf)
	assert.Equal(t, 0, miles.Current)
	assert.Equal(t, 0.0, miles.Percent)

	zero := Progress(models.Goal{Target: 0, Unit: models.UnitMinutes, Period: models.PeriodWeekly}, ws, asOf)
	assert.Equal(t, 0.0, zero.Percent)
}

func TestThisWeekCount(t *testing.T) {
	ws := []models.Workout{
		workout("Running", 30, 300, "2024-06-08"), // Saturday before
		workout("Running", 30, 300, "2024-06-09"), // Sunday
		workout("Yoga", 30, 300, "2024-06-12"),
	}
	assert.Equal(t, 2, ThisWeekCount(ws, day("2024-06-12")))
	assert.Equal(t, 0, ThisWeekCount(nil, day("2024-06-12")))
}

func TestWeekStreak(t *testing.T) {
	ws := []models.Workout{
		workout("Running", 30, 300, "2024-05-27"),
		workout("Running", 30, 300, "2024-06-04"),
		workout("Running", 30, 300, "2024-06-10"),
	}
	assert.Equal(t, 3, WeekStreak(ws, day("2024-06-12")))
	assert.Equal(t, 0, WeekStreak(ws, day("2024-06-19")))
}

func TestAggregations_DoNotMutateInput(t *testing.T) {
	ws := []models.Workout{
		workout("Yoga", 60, 150, "2024-06-12"),
		workout("Running", 30, 300, "2024-06-03"),
		workout("Running", 20, 100, "2024-06-10"),
	}
	before := append([]models.Workout(nil), ws...)
	asOf := day("2024-06-12")
	goal := models.Goal{Target: 100, Unit: models.UnitMinutes, Period: models.PeriodWeekly}

	first := []any{Summarize(ws), TypeFrequencies(ws, 5), BucketByWeek(ws), BucketByDate(ws), Progress(goal, ws, asOf), ThisWeekCount(ws, asOf)}
	second := []any{Summarize(ws), TypeFrequencies(ws, 5), BucketByWeek(ws), BucketByDate(ws), Progress(goal, ws, asOf), ThisWeekCount(ws, asOf)}

	assert.Equal(t, first, second)
	assert.Equal(t, before, ws)
}
