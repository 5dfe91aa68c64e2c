package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/yeonjae/fortune-calendar/internal/domain/astro"
	"github.com/yeonjae/fortune-calendar/internal/domain/recommend"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
	"github.com/yeonjae/fortune-calendar/internal/domain/transit"
	apperrors "github.com/yeonjae/fortune-calendar/pkg/errors"
	"github.com/yeonjae/fortune-calendar/pkg/util"
)

// Grade bucket caps for the yearly view.
const (
	grade1Cap = 10
	grade2Cap = 20
	grade3Cap = 10
)

// Service exposes the significant-day queries.
type Service interface {
	Yearly(ctx context.Context, year int, profile NatalProfile, opts Options) (YearlyResult, error)
	Monthly(ctx context.Context, year int, month time.Month, profile NatalProfile) ([]ImportantDate, error)
	BestForCategory(ctx context.Context, year int, category EventCategory, profile NatalProfile, limit int) ([]ImportantDate, error)
}

// PillarSource supplies branch interactions between a day's Ganzhi and
// the natal pillars. The relation engine lives outside this core.
type PillarSource interface {
	Interactions(ctx context.Context, day saju.Ganzhi, profile NatalProfile) ([]saju.BranchInteraction, error)
}

// Cache stores computed yearly results keyed on a profile hash.
type Cache interface {
	GetYear(ctx context.Context, key string) (YearlyResult, bool, error)
	SaveYear(ctx context.Context, key string, result YearlyResult, ttl time.Duration) error
}

type service struct {
	cfg     Config
	pillars PillarSource
	cache   Cache
	scorer  *transit.Scorer
	builder *recommend.Builder
	logger  *slog.Logger
}

// NewService wires the calendar aggregator.
func NewService(cfg Config, pillars PillarSource, cache Cache, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg.withDefaults(),
		pillars: pillars,
		cache:   cache,
		scorer:  transit.NewScorer(),
		builder: recommend.NewBuilder(),
		logger:  logger.With("component", "calendar.service"),
	}
}

func (s *service) Yearly(ctx context.Context, year int, profile NatalProfile, opts Options) (YearlyResult, error) {
	if err := validateYear(year); err != nil {
		return YearlyResult{}, err
	}
	profile = withProfileDefaults(profile)
	if opts.MinGrade <= 0 || opts.MinGrade > 3 {
		opts.MinGrade = s.cfg.DefaultMinGrade
	}

	key := cacheKey(year, profile, opts)
	if cached, ok, err := s.cache.GetYear(ctx, key); err != nil {
		s.logger.Warn("yearly cache read failed", "error", err)
	} else if ok {
		return cached, nil
	}

	dates, err := s.computeRange(ctx, startOfYear(year), daysInYear(year), profile)
	if err != nil {
		return YearlyResult{}, err
	}

	result := buildYearlyResult(dates, opts)

	if err := s.cache.SaveYear(ctx, key, result, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("yearly cache write failed", "error", err)
	}
	return result, nil
}

func (s *service) Monthly(ctx context.Context, year int, month time.Month, profile NatalProfile) ([]ImportantDate, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, apperrors.Wrap("invalid_input", "month must be between 1 and 12", nil)
	}
	profile = withProfileDefaults(profile)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := int(start.AddDate(0, 1, 0).Sub(start).Hours() / 24)
	// computeRange walks dates in order, so the month comes back
	// ascending by date.
	return s.computeRange(ctx, start, days, profile)
}

func (s *service) BestForCategory(ctx context.Context, year int, category EventCategory, profile NatalProfile, limit int) ([]ImportantDate, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if !validCategory(category) {
		return nil, apperrors.Wrap("invalid_input", fmt.Sprintf("unknown category %q", category), nil)
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	profile = withProfileDefaults(profile)

	dates, err := s.computeRange(ctx, startOfYear(year), daysInYear(year), profile)
	if err != nil {
		return nil, err
	}

	var matched []ImportantDate
	for _, date := range dates {
		if hasCategory(date, category) {
			matched = append(matched, date)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Score > matched[j].Score })
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// computeRange fans the per-date computation out over a bounded worker
// pool. Dates are independent pure computations; the indexed slice is
// the only shared state and each worker writes disjoint slots.
func (s *service) computeRange(ctx context.Context, start time.Time, days int, profile NatalProfile) ([]ImportantDate, error) {
	dates := make([]ImportantDate, days)

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := s.cfg.Workers
	if workers > days {
		workers = days
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				dates[i] = s.computeDay(ctx, start.AddDate(0, 0, i), profile)
			}
		}()
	}

	// Cancellation stops scheduling further dates, never a date
	// mid-computation.
	var cancelled error
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, apperrors.Wrap("cancelled", "calendar computation cancelled", cancelled)
	}
	return dates, nil
}

// computeDay fuses the transit pass, the Ganzhi pass and the leaf
// astronomical states into one immutable record.
func (s *service) computeDay(ctx context.Context, date time.Time, profile NatalProfile) ImportantDate {
	day := saju.DayGanzhi(date)

	interactions, err := s.pillars.Interactions(ctx, day, profile)
	if err != nil {
		// Best-effort: a missing relation engine degrades to an empty
		// interaction list rather than failing the date.
		s.logger.Warn("pillar interactions unavailable", "date", date.Format(util.ISODate), "error", err)
		interactions = nil
	}

	transitRes := s.scorer.Score(date, profile.SunSign, profile.SunElement, profile.SunLongitude)
	moon := astro.MoonPhaseDetailed(date)
	eclipse := astro.EclipseImpact(date)
	voc := astro.VoidOfCourse(date)
	retro := astro.RetrogradePlanets(date)
	hour := astro.PlanetaryHour(util.UTCNoon(date))
	special := saju.DetectSpecialDays(date, day, profile.DayMasterStem, profile.DayBranch, profile.YearBranch)

	recRes := s.builder.Build(recommend.Input{
		Day:               day,
		DayMaster:         profile.DayMasterStem,
		NatalDayBranch:    profile.DayBranch,
		Interactions:      interactions,
		Special:           special,
		RetrogradePlanets: retro,
		HourRuler:         hour.Planet,
	})

	astroFactors := append([]string{}, transitRes.FactorKeys...)
	astroFactors = append(astroFactors, moon.FactorKey)
	for _, planet := range retro {
		astroFactors = append(astroFactors, fmt.Sprintf("retrograde_%s", planet))
	}

	warnings := append([]string{}, recRes.WarningKeys...)
	score := transitRes.Score + moon.Score

	if voc.IsVoid {
		astroFactors = append(astroFactors, "void_of_course")
		warnings = append(warnings, "void_moon")
		score--
	}
	if eclipse.HasImpact {
		key := fmt.Sprintf("eclipse_%s_%s", eclipse.Type, eclipse.Intensity)
		astroFactors = append(astroFactors, key)
		warnings = append(warnings, key)
		switch eclipse.Intensity {
		case astro.IntensityStrong:
			score -= 3
		case astro.IntensityMedium:
			score -= 2
		case astro.IntensityWeak:
			score--
		}
	}

	sajuFactors := sajuFactorKeys(day, profile, special)
	dayElement := saju.StemElement(day.Stem)
	if containsElement(profile.FavorableElements, dayElement) {
		sajuFactors = append(sajuFactors, "favorable_element_day")
		score += 2
	}
	if containsElement(profile.UnfavorableElements, dayElement) {
		sajuFactors = append(sajuFactors, "unfavorable_element_day")
		score -= 2
	}

	score += len(recRes.RecommendationKeys) - len(warnings)
	grade := gradeFor(score)

	return ImportantDate{
		Date:               date.Format(util.ISODate),
		Grade:              grade,
		Score:              score,
		Categories:         categoriesFor(recRes.RecommendationKeys, warnings, astroFactors),
		TitleKey:           fmt.Sprintf("calendar.grade%d.title", grade),
		DescKey:            fmt.Sprintf("calendar.grade%d.desc", grade),
		SajuFactorKeys:     sajuFactors,
		AstroFactorKeys:    astroFactors,
		RecommendationKeys: recRes.RecommendationKeys,
		WarningKeys:        warnings,
	}
}

func sajuFactorKeys(day saju.Ganzhi, profile NatalProfile, special saju.SpecialDayFlags) []string {
	keys := []string{
		fmt.Sprintf("day_%s_%s", day.Stem, day.Branch),
		fmt.Sprintf("sipsin_%s", saju.SipsinRelation(profile.DayMasterStem, day.Stem)),
	}
	for _, relation := range saju.BranchRelations(day.Branch, profile.DayBranch) {
		keys = append(keys, fmt.Sprintf("day_branch_%s", relation))
	}
	if special.Cheoneulgwiin {
		keys = append(keys, "cheoneulgwiin_day")
	}
	if special.SonEomneun {
		keys = append(keys, "son_eomneun_day")
	}
	if special.Geonrok {
		keys = append(keys, "geonrok_day")
	}
	if special.Samjae {
		keys = append(keys, "samjae_year")
	}
	if special.Yeokma {
		keys = append(keys, "yeokma_day")
	}
	if special.Dohwa {
		keys = append(keys, "dohwa_day")
	}
	return keys
}

func buildYearlyResult(dates []ImportantDate, opts Options) YearlyResult {
	result := YearlyResult{}
	for _, date := range dates {
		if date.Grade > opts.MinGrade {
			continue
		}
		switch date.Grade {
		case 1:
			result.Grade1 = append(result.Grade1, date)
		case 2:
			result.Grade2 = append(result.Grade2, date)
		default:
			result.Grade3 = append(result.Grade3, date)
		}
	}

	byScoreDesc := func(bucket []ImportantDate) {
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Score > bucket[j].Score })
	}
	byScoreDesc(result.Grade1)
	byScoreDesc(result.Grade2)
	byScoreDesc(result.Grade3)

	result.Grade1 = capBucket(result.Grade1, grade1Cap)
	result.Grade2 = capBucket(result.Grade2, grade2Cap)
	result.Grade3 = capBucket(result.Grade3, grade3Cap)

	if opts.Limit > 0 {
		remaining := opts.Limit
		result.Grade1, remaining = takeUpTo(result.Grade1, remaining)
		result.Grade2, remaining = takeUpTo(result.Grade2, remaining)
		result.Grade3, _ = takeUpTo(result.Grade3, remaining)
	}

	result.Total = len(result.Grade1) + len(result.Grade2) + len(result.Grade3)
	return result
}

func capBucket(bucket []ImportantDate, limit int) []ImportantDate {
	if len(bucket) > limit {
		return bucket[:limit]
	}
	return bucket
}

func takeUpTo(bucket []ImportantDate, remaining int) ([]ImportantDate, int) {
	if remaining <= 0 {
		return nil, 0
	}
	if len(bucket) > remaining {
		bucket = bucket[:remaining]
	}
	return bucket, remaining - len(bucket)
}

// withProfileDefaults degrades missing profile fields to documented
// baselines so a best-effort score can always be produced.
func withProfileDefaults(profile NatalProfile) NatalProfile {
	if profile.SunElement == "" {
		if profile.SunSign != "" {
			profile.SunElement = transit.SignElement(profile.SunSign)
		} else {
			profile.SunElement = saju.ElementEarth
		}
	}
	if profile.DayMasterElement == "" {
		if profile.DayMasterStem != "" {
			profile.DayMasterElement = saju.StemElement(profile.DayMasterStem)
		} else {
			profile.DayMasterElement = saju.ElementEarth
		}
	}
	return profile
}

func containsElement(list []saju.Element, e saju.Element) bool {
	for _, candidate := range list {
		if candidate == e {
			return true
		}
	}
	return false
}

func validateYear(year int) error {
	if year < 1900 || year > 2200 {
		return apperrors.Wrap("invalid_input", "year must be between 1900 and 2200", nil)
	}
	return nil
}

func validCategory(category EventCategory) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func startOfYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func daysInYear(year int) int {
	start := startOfYear(year)
	return int(start.AddDate(1, 0, 0).Sub(start).Hours() / 24)
}
