package sample

// Rating is the band a performance score falls in.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingGood             Rating = "Good"
	RatingNeedsImprovement Rating = "Needs Improvement"
)

// RatingFor bands a percentage score: 90 and up is excellent, 80 and up good.
func RatingFor(score int) Rating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 80:
		return RatingGood
	default:
		return RatingNeedsImprovement
	}
}

// PerformanceRecord is one row of the employee performance table.
type PerformanceRecord struct {
	FirstName   string
	Surname     string
	Designation string
	Department  string
	Score       int
}

// Name joins first name and surname.
func (r PerformanceRecord) Name() string {
	return r.FirstName + " " + r.Surname
}

// Rating bands the record's score.
func (r PerformanceRecord) Rating() Rating {
	return RatingFor(r.Score)
}

func performanceRecords() []PerformanceRecord {
	return []PerformanceRecord{
		{"John", "Doe", "IT", "IT", 92},
		{"Jane", "Smith", "HR", "Other", 88},
		{"Mike", "Johnson", "Developer", "IT", 95},
		{"Sarah", "Williams", "Marketing", "Other", 85},
		{"David", "Brown", "IT Support", "IT", 90},
		{"Lisa", "Davis", "Sales", "Other", 78},
	}
}
