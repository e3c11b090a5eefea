package domain

import "time"

// RawReading is one row of an uploaded consumption series before feature
// engineering. Timestamp stays a string until the transform parses it;
// ConsumptionKWh is NaN when the source cell was empty or unparsable.
type RawReading struct {
	Timestamp      string  `json:"timestamp"`
	ConsumptionKWh float64 `json:"consumption_kwh"`
}

// EnrichedReading is a reading plus derived calendar, lag and rolling
// features. Day-of-week follows the 0=Monday .. 6=Sunday convention.
type EnrichedReading struct {
	Timestamp       time.Time `json:"timestamp"`
	ConsumptionKWh  float64   `json:"consumption_kwh"`
	Hour            int       `json:"hour"`
	DayOfWeek       int       `json:"day_of_week"`
	DayName         string    `json:"day_name"`
	Month           int       `json:"month"`
	Date            string    `json:"date"`
	IsWeekend       int       `json:"is_weekend"`
	TimePeriod      string    `json:"time_period"`
	PrevConsumption float64   `json:"prev_consumption"`
	RollingAvg24h   float64   `json:"rolling_avg_24h"`
	Deviation       float64   `json:"consumption_deviation"`
}

// DailyAggregate summarizes one calendar day of readings.
type DailyAggregate struct {
	Date      string  `json:"date"`
	TotalKWh  float64 `json:"total_kwh"`
	AvgKWh    float64 `json:"avg_kwh"`
	MaxKWh    float64 `json:"max_kwh"`
	MinKWh    float64 `json:"min_kwh"`
	StdKWh    float64 `json:"std_kwh"`
	IsWeekend int     `json:"is_weekend"`
}

// ProfileFeatures are the aggregate statistics the classifier derives
// before applying its rule table.
type ProfileFeatures struct {
	AvgConsumption float64 `json:"avg_consumption"`
	StdConsumption float64 `json:"std_consumption"`
	WeekendRatio   float64 `json:"weekend_ratio"`
	PeakHoursAvg   float64 `json:"peak_hours"`
	NightAvg       float64 `json:"night_consumption"`
}

// ProfileAssignment is the classifier's verdict for a household.
type ProfileAssignment struct {
	Archetype         string          `json:"profile_name"`
	Description       string          `json:"description"`
	YourAvg           float64         `json:"your_avg"`
	ReferenceAvg      float64         `json:"reference_avg"`
	DifferencePercent float64         `json:"difference_percent"`
	Features          ProfileFeatures `json:"features"`
}

// AnomalyRecord is one flagged outlier reading.
type AnomalyRecord struct {
	Timestamp        time.Time `json:"timestamp"`
	Consumption      float64   `json:"consumption"`
	Expected         float64   `json:"expected"`
	DeviationPercent float64   `json:"deviation_percent"`
	Hour             int       `json:"hour"`
	DayName          string    `json:"day"`
}

// AnomalyReport carries the total flagged count and the top records
// ranked by absolute deviation. Count may exceed len(Anomalies).
type AnomalyReport struct {
	Count     int             `json:"count"`
	Anomalies []AnomalyRecord `json:"anomalies"`
}

// HourlyPattern holds per-hour statistics. Count is zero for hours the
// series never touches; Mean/Std/Max are meaningless in that case and
// callers must check Count first.
type HourlyPattern struct {
	Hour  int     `json:"hour"`
	Count int     `json:"count"`
	Mean  float64 `json:"avg"`
	Std   float64 `json:"std"`
	Max   float64 `json:"max"`
}

// HourlySummary is the full 24-slot pattern plus the peak split.
type HourlySummary struct {
	HourlyData   []HourlyPattern `json:"hourly_data"`
	PeakHours    []int           `json:"peak_hours"`
	OffPeakHours []int           `json:"off_peak_hours"`
}

// ForecastPoint is one predicted hour.
type ForecastPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Consumption float64   `json:"consumption"`
	Day         int       `json:"day"`
	Hour        int       `json:"hour"`
}

// DailyForecast aggregates 24 hourly predictions.
type DailyForecast struct {
	Day           int     `json:"day"`
	Date          string  `json:"date"`
	TotalKWh      float64 `json:"total_kwh"`
	AvgKWh        float64 `json:"avg_kwh"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// ForecastResult is the full rollout output.
type ForecastResult struct {
	Hourly         []ForecastPoint `json:"hourly"`
	Daily          []DailyForecast `json:"daily"`
	TotalPredicted float64         `json:"total_predicted"`
	TotalCost      float64         `json:"total_cost"`
}

// ComparisonResult relates a household's mean consumption to its
// archetype's reference average.
type ComparisonResult struct {
	YourAverage       float64 `json:"your_average"`
	ReferenceAverage  float64 `json:"reference_average"`
	Difference        float64 `json:"difference"`
	DifferencePercent float64 `json:"difference_percent"`
	Status            string  `json:"status"`
}

// ConsumptionStats are the overall descriptive statistics shown on the
// analysis dashboard.
type ConsumptionStats struct {
	Total       float64            `json:"total_consumption"`
	Avg         float64            `json:"avg_consumption"`
	Max         float64            `json:"max_consumption"`
	Min         float64            `json:"min_consumption"`
	Std         float64            `json:"std_consumption"`
	AvgByPeriod map[string]float64 `json:"avg_by_period"`
	AvgWeekend  float64            `json:"avg_weekend"`
	AvgWeekday  float64            `json:"avg_weekday"`
}

// Recommendation is one savings suggestion.
type Recommendation struct {
	Priority         string `json:"priority"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	PotentialSavings string `json:"potential_savings"`
	Category         string `json:"category"`
}

// UploadStats is the quick summary returned right after an upload.
type UploadStats struct {
	Rows           int     `json:"rows"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	AvgConsumption float64 `json:"avg_consumption"`
	MaxConsumption float64 `json:"max_consumption"`
	MinConsumption float64 `json:"min_consumption"`
	Total          float64 `json:"total_consumption"`
}

// AnalysisDocument bundles everything the analyze operation produces.
type AnalysisDocument struct {
	Profile    *ProfileAssignment `json:"cluster"`
	Anomalies  *AnomalyReport     `json:"anomalies"`
	Patterns   *HourlySummary     `json:"hourly_patterns"`
	Comparison *ComparisonResult  `json:"comparison"`
	Stats      *ConsumptionStats  `json:"stats"`
	Daily      []DailyAggregate   `json:"daily"`
	Timestamp  time.Time          `json:"timestamp"`
}
