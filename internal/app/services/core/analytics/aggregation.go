package analytics

import (
	"time"

	"clinic-dashboard-service/internal/app/models"
)

var AgeBucketLabels = []string{"0-5", "6-18", "19-35", "36-50", "51-65", "66+"}

var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// upper bounds of each closed bucket, the last bucket is open ended
var ageBucketUpperBounds = []int{5, 18, 35, 50, 65}

// AgeBucketIndex maps an age to its bucket, or -1 for a negative age.
func AgeBucketIndex(age int) int {
	if age < 0 {
		return -1
	}
	for i, upper := range ageBucketUpperBounds {
		if age <= upper {
			return i
		}
	}
	return len(ageBucketUpperBounds)
}

func CountAgeBuckets(ages []int) []int {
	counts := make([]int, len(AgeBucketLabels))
	for _, age := range ages {
		index := AgeBucketIndex(age)
		if index < 0 {
			continue
		}
		counts[index]++
	}
	return counts
}

// CountArrivalsByMonth counts arrivals of year per calendar month in loc.
func CountArrivalsByMonth(records []models.PatientRecord, year int, loc *time.Location) []int {
	counts := make([]int, len(MonthLabels))
	for _, record := range records {
		if record.ArrivedAt.IsZero() {
			continue
		}
		arrivedAt := record.ArrivedAt.In(loc)
		if arrivedAt.Year() != year {
			continue
		}
		counts[arrivedAt.Month()-1]++
	}
	return counts
}

// HighlightMax returns the indexes holding the maximum value. Nothing is
// highlighted when every value is zero.
func HighlightMax(values []int) []int {
	highlighted := []int{}
	peak := 0
	for _, value := range values {
		if value > peak {
			peak = value
		}
	}
	if peak == 0 {
		return highlighted
	}
	for i, value := range values {
		if value == peak {
			highlighted = append(highlighted, i)
		}
	}
	return highlighted
}
