package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yeonjae/fortune-calendar/internal/domain/astro"
	"github.com/yeonjae/fortune-calendar/internal/domain/calendar"
	"github.com/yeonjae/fortune-calendar/internal/domain/profile"
	"github.com/yeonjae/fortune-calendar/internal/domain/saju"
	"github.com/yeonjae/fortune-calendar/internal/infra/config"
	apperrors "github.com/yeonjae/fortune-calendar/pkg/errors"
)

func TestRouter_Healthz(t *testing.T) {
	recorder := performGet(t, "/healthz", newRouterUnderTest(t, &stubCalendar{}, &stubProfiles{}))
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_CreateProfileSuccess(t *testing.T) {
	profiles := &stubProfiles{
		createFn: func(ctx context.Context, req profile.CreateRequest) (profile.StoredProfile, error) {
			require.Equal(t, "yeonjae", req.Name)
			require.Equal(t, astro.Leo, req.Natal.SunSign)
			return profile.StoredProfile{ID: "p-1", Name: req.Name, Natal: req.Natal}, nil
		},
	}

	body := `{"name":"yeonjae","natal":{"sunSign":"leo","dayMasterStem":"gap","dayBranch":"ja"}}`
	recorder := performPost(t, "/api/v1/profiles", body, newRouterUnderTest(t, &stubCalendar{}, profiles))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var got profile.StoredProfile
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "p-1", got.ID)
}

func TestRouter_CreateProfileInvalidJSON(t *testing.T) {
	recorder := performPost(t, "/api/v1/profiles", `{"name":123}`, newRouterUnderTest(t, &stubCalendar{}, &stubProfiles{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
}

func TestRouter_GetProfileNotFound(t *testing.T) {
	profiles := &stubProfiles{
		getFn: func(ctx context.Context, id string) (profile.StoredProfile, error) {
			return profile.StoredProfile{}, apperrors.Wrap("profile_not_found", "no profile with that id", nil)
		},
	}

	recorder := performGet(t, "/api/v1/profiles/missing", newRouterUnderTest(t, &stubCalendar{}, profiles))
	require.Equal(t, http.StatusNotFound, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "profile_not_found", errBody["error"]["code"])
}

func TestRouter_YearlySuccess(t *testing.T) {
	want := calendar.YearlyResult{
		Grade1: []calendar.ImportantDate{{Date: "2025-03-01", Grade: 1, Score: 20}},
		Total:  1,
	}
	cal := &stubCalendar{
		yearlyFn: func(ctx context.Context, year int, natal calendar.NatalProfile, opts calendar.Options) (calendar.YearlyResult, error) {
			require.Equal(t, 2025, year)
			require.Equal(t, saju.StemGap, natal.DayMasterStem)
			require.Equal(t, 2, opts.MinGrade)
			require.Equal(t, 7, opts.Limit)
			return want, nil
		},
	}

	recorder := performGet(t, "/api/v1/calendar/2025?profileId=p-1&minGrade=2&limit=7", newRouterUnderTest(t, cal, storedProfileStub()))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got calendar.YearlyResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, want, got)
}

func TestRouter_YearlyRequiresProfileID(t *testing.T) {
	recorder := performGet(t, "/api/v1/calendar/2025", newRouterUnderTest(t, &stubCalendar{}, &stubProfiles{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "profileId")
}

func TestRouter_YearlyBadYear(t *testing.T) {
	recorder := performGet(t, "/api/v1/calendar/two-thousand?profileId=p-1", newRouterUnderTest(t, &stubCalendar{}, storedProfileStub()))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_YearlyInvalidInputFromService(t *testing.T) {
	cal := &stubCalendar{
		yearlyFn: func(ctx context.Context, year int, natal calendar.NatalProfile, opts calendar.Options) (calendar.YearlyResult, error) {
			return calendar.YearlyResult{}, apperrors.Wrap("invalid_input", "year must be between 1900 and 2200", nil)
		},
	}

	recorder := performGet(t, "/api/v1/calendar/1800?profileId=p-1", newRouterUnderTest(t, cal, storedProfileStub()))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "1900")
}

func TestRouter_MonthlySuccess(t *testing.T) {
	cal := &stubCalendar{
		monthlyFn: func(ctx context.Context, year int, month time.Month, natal calendar.NatalProfile) ([]calendar.ImportantDate, error) {
			require.Equal(t, 2025, year)
			require.Equal(t, time.June, month)
			return []calendar.ImportantDate{{Date: "2025-06-01", Grade: 3}}, nil
		},
	}

	recorder := performGet(t, "/api/v1/calendar/2025/month/6?profileId=p-1", newRouterUnderTest(t, cal, storedProfileStub()))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string][]calendar.ImportantDate
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body["dates"], 1)
	require.Equal(t, "2025-06-01", body["dates"][0].Date)
}

func TestRouter_MonthlyBadMonth(t *testing.T) {
	recorder := performGet(t, "/api/v1/calendar/2025/month/june?profileId=p-1", newRouterUnderTest(t, &stubCalendar{}, storedProfileStub()))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_BestForCategory(t *testing.T) {
	cal := &stubCalendar{
		bestFn: func(ctx context.Context, year int, category calendar.EventCategory, natal calendar.NatalProfile, limit int) ([]calendar.ImportantDate, error) {
			require.Equal(t, calendar.CategoryLove, category)
			require.Equal(t, 3, limit)
			return []calendar.ImportantDate{{Date: "2025-02-14", Grade: 1, Score: 18}}, nil
		},
	}

	recorder := performGet(t, "/api/v1/calendar/2025/best?profileId=p-1&category=love&limit=3", newRouterUnderTest(t, cal, storedProfileStub()))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string][]calendar.ImportantDate
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "2025-02-14", body["dates"][0].Date)
}

func performGet(t *testing.T, path string, server *http.Server) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func performPost(t *testing.T, path, body string, server *http.Server) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, cal calendar.Service, profiles profile.Service) *http.Server {
	t.Helper()
	handler := NewHandler(cal, profiles, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler, newTestLogger())
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func storedProfileStub() *stubProfiles {
	return &stubProfiles{
		getFn: func(ctx context.Context, id string) (profile.StoredProfile, error) {
			return profile.StoredProfile{
				ID: id,
				Natal: calendar.NatalProfile{
					SunSign:       astro.Capricorn,
					SunElement:    saju.ElementEarth,
					DayMasterStem: saju.StemGap,
					DayBranch:     saju.BranchJa,
				},
			}, nil
		},
	}
}

type stubCalendar struct {
	yearlyFn  func(ctx context.Context, year int, natal calendar.NatalProfile, opts calendar.Options) (calendar.YearlyResult, error)
	monthlyFn func(ctx context.Context, year int, month time.Month, natal calendar.NatalProfile) ([]calendar.ImportantDate, error)
	bestFn    func(ctx context.Context, year int, category calendar.EventCategory, natal calendar.NatalProfile, limit int) ([]calendar.ImportantDate, error)
}

func (s *stubCalendar) Yearly(ctx context.Context, year int, natal calendar.NatalProfile, opts calendar.Options) (calendar.YearlyResult, error) {
	if s.yearlyFn != nil {
		return s.yearlyFn(ctx, year, natal, opts)
	}
	return calendar.YearlyResult{}, nil
}

func (s *stubCalendar) Monthly(ctx context.Context, year int, month time.Month, natal calendar.NatalProfile) ([]calendar.ImportantDate, error) {
	if s.monthlyFn != nil {
		return s.monthlyFn(ctx, year, month, natal)
	}
	return nil, nil
}

func (s *stubCalendar) BestForCategory(ctx context.Context, year int, category calendar.EventCategory, natal calendar.NatalProfile, limit int) ([]calendar.ImportantDate, error) {
	if s.bestFn != nil {
		return s.bestFn(ctx, year, category, natal, limit)
	}
	return nil, nil
}

type stubProfiles struct {
	createFn func(ctx context.Context, req profile.CreateRequest) (profile.StoredProfile, error)
	getFn    func(ctx context.Context, id string) (profile.StoredProfile, error)
}

func (s *stubProfiles) Create(ctx context.Context, req profile.CreateRequest) (profile.StoredProfile, error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return profile.StoredProfile{}, nil
}

func (s *stubProfiles) Get(ctx context.Context, id string) (profile.StoredProfile, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return profile.StoredProfile{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
