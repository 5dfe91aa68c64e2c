package calendar

import (
	"github.com/yeonjae/fortune-calendar/internal/domain/astro"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
)

// EventCategory buckets a significant day by theme.
type EventCategory string

const (
	CategoryLove    EventCategory = "love"
	CategoryCareer  EventCategory = "career"
	CategoryWealth  EventCategory = "wealth"
	CategoryTravel  EventCategory = "travel"
	CategoryHealth  EventCategory = "health"
	CategoryCaution EventCategory = "caution"
	CategoryGeneral EventCategory = "general"
)

// Categories lists every valid category for boundary validation.
var Categories = []EventCategory{
	CategoryLove, CategoryCareer, CategoryWealth,
	CategoryTravel, CategoryHealth, CategoryCaution, CategoryGeneral,
}

// NatalProfile is supplied by the external profile extractor and
// borrowed, immutable, for the length of one computation.
type NatalProfile struct {
	SunSign             astro.ZodiacSign `json:"sunSign" binding:"required"`
	SunElement          saju.Element     `json:"sunElement"`
	SunLongitude        *float64         `json:"sunLongitude,omitempty"`
	DayMasterStem       saju.Stem        `json:"dayMasterStem" binding:"required"`
	DayMasterElement    saju.Element     `json:"dayMasterElement"`
	DayBranch           saju.Branch      `json:"dayBranch" binding:"required"`
	YearBranch          saju.Branch      `json:"yearBranch,omitempty"`
	FavorableElements   []saju.Element   `json:"favorableElements,omitempty"`
	UnfavorableElements []saju.Element   `json:"unfavorableElements,omitempty"`
}

// ImportantDate is the exported aggregate, constructed once per date
// and never mutated afterwards.
type ImportantDate struct {
	Date               string          `json:"date"` // ISO calendar date
	Grade              int             `json:"grade"` // 1 best, 3 rest
	Score              int             `json:"score"`
	Categories         []EventCategory `json:"categories"`
	TitleKey           string          `json:"titleKey"`
	DescKey            string          `json:"descKey"`
	SajuFactorKeys     []string        `json:"sajuFactorKeys"`
	AstroFactorKeys    []string        `json:"astroFactorKeys"`
	RecommendationKeys []string        `json:"recommendationKeys"`
	WarningKeys        []string        `json:"warningKeys"`
}

// Options tunes a yearly query.
type Options struct {
	MinGrade int `json:"minGrade"` // include grades <= MinGrade; 0 means all
	Limit    int `json:"limit"`    // cap on total returned dates; 0 means no cap
}

// YearlyResult groups a year's dates into grade buckets.
type YearlyResult struct {
	Grade1 []ImportantDate `json:"grade1"`
	Grade2 []ImportantDate `json:"grade2"`
	Grade3 []ImportantDate `json:"grade3"`
	Total  int             `json:"total"`
}
