package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service/mocks"
)

type testMocks struct {
	incidents  *mocks.MockIncidentService
	weather    *mocks.MockWeatherService
	geocoding  *mocks.MockGeocodingService
	traffic    *mocks.MockTrafficService
	dashboard  *mocks.MockDashboardService
	plans      *mocks.MockPlanService
	v2v        *mocks.MockV2VService
	security   *mocks.MockSecurityService
	navigation *mocks.MockNavigationService
	social     *mocks.MockSocialService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		incidents:  mocks.NewMockIncidentService(ctrl),
		weather:    mocks.NewMockWeatherService(ctrl),
		geocoding:  mocks.NewMockGeocodingService(ctrl),
		traffic:    mocks.NewMockTrafficService(ctrl),
		dashboard:  mocks.NewMockDashboardService(ctrl),
		plans:      mocks.NewMockPlanService(ctrl),
		v2v:        mocks.NewMockV2VService(ctrl),
		security:   mocks.NewMockSecurityService(ctrl),
		navigation: mocks.NewMockNavigationService(ctrl),
		social:     mocks.NewMockSocialService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:           []string{"test-api-key"},
		V2VFreeDailyLimit: 5,
	}

	handler := NewHandler(Services{
		Incidents:  m.incidents,
		Weather:    m.weather,
		Geocoding:  m.geocoding,
		Traffic:    m.traffic,
		Dashboard:  m.dashboard,
		Plans:      m.plans,
		V2V:        m.v2v,
		Security:   m.security,
		Navigation: m.navigation,
		Social:     m.social,
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return m, router
}

var (
	apiKey   = map[string]string{"X-API-Key": "test-api-key"}
	asDriver = map[string]string{"X-API-Key": "test-api-key", "X-User-ID": "driver-1"}
)

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func ptr[T any](v T) *T { return &v }

func TestHealthCheck_Public(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth_MissingAPIKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAuth_InvalidAPIKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Return([]*models.Incident{}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_MissingUserID(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0)

	body := CreateIncidentRequest{Type: "accident", Latitude: ptr(-1.28), Longitude: ptr(36.82)}
	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, body), apiKey)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "X-User-ID")
}

func TestCreateIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, "driver-1", inc.ReporterID)
			assert.Equal(t, models.IncidentAccident, inc.Type)
			inc.ID = incidentID
			inc.Status = models.StatusActive
			inc.RadiusMeters = 500
			return nil
		})

	body := CreateIncidentRequest{Type: "accident", Description: "Two cars", Latitude: ptr(-1.28), Longitude: ptr(36.82)}
	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, body), asDriver)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, 500, resp.RadiusMeters)
	assert.Equal(t, "active", resp.Status)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"type": "accident"`), asDriver)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Times(0)

	body := CreateIncidentRequest{Type: "meteor", Latitude: ptr(-1.28), Longitude: ptr(36.82)}
	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, body), asDriver)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Type' failed on the 'oneof' tag")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Return(fmt.Errorf("service: could not create incident: %w", io.ErrUnexpectedEOF))

	body := CreateIncidentRequest{Type: "hazard", Latitude: ptr(-1.28), Longitude: ptr(36.82)}
	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, body), asDriver)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Error)
}

func TestListIncidents_Filter(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{
			Page:     2,
			PageSize: 5,
			Types:    []models.IncidentType{models.IncidentAccident, models.IncidentRoadwork},
		}).
		Return([]*models.Incident{{ID: uuid.New(), Type: models.IncidentAccident}}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents?page=2&pageSize=5&type=accident,unknown,roadwork", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestGetIncident_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	m.incidents.EXPECT().GetIncident(gomock.Any(), id).Return(nil, fmt.Errorf("service: %w", service.ErrNotFound))

	w := makeRequest(router, "GET", "/api/v1/incidents/"+id.String(), nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/incidents/not-a-uuid", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestUpdateIncident_Partial(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	m.incidents.EXPECT().
		UpdateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, id, inc.ID)
			assert.Equal(t, models.StatusInactive, inc.Status)
			assert.Zero(t, inc.Latitude)
			inc.Type = models.IncidentHazard
			return nil
		})

	w := makeRequest(router, "PUT", "/api/v1/incidents/"+id.String(), bytes.NewBufferString(`{"status":"inactive"}`), apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hazard", resp.Type)
}

func TestUpdateIncident_PartialLocation(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().UpdateIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/incidents/"+uuid.NewString(), bytes.NewBufferString(`{"latitude":1.5}`), apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "set together")
}

func TestDeleteIncident_Success(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	m.incidents.EXPECT().DeactivateIncident(gomock.Any(), id).Return(nil)

	w := makeRequest(router, "DELETE", "/api/v1/incidents/"+id.String(), nil, apiKey)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCheckLocation_Success(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().
		CheckLocation(gomock.Any(), "driver-1", -1.28, 36.82).
		Return([]*models.Incident{{ID: uuid.New(), Type: models.IncidentHazard}}, nil)

	w := makeRequest(router, "POST", "/api/v1/location/check", jsonBody(t, LocationCheckRequest{Latitude: ptr(-1.28), Longitude: ptr(36.82)}), asDriver)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestIncidentsMap_GeoJSON(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().
		NearbyIncidents(gomock.Any(), gomock.Any(), gomock.Any(), 1000).
		Return(&models.NearbyIncidents{
			Latitude:     -1.28,
			Longitude:    36.82,
			RadiusMeters: 1000,
			Incidents:    []*models.Incident{{ID: uuid.New(), Type: models.IncidentAccident, Latitude: -1.28, Longitude: 36.82}},
		}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/map?lat=-1.28&lng=36.82&radius=1000", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var fc struct {
		Type         string `json:"type"`
		UsedFallback *bool  `json:"used_fallback"`
		Features     []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.NotNil(t, fc.UsedFallback)
	assert.False(t, *fc.UsedFallback)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, []float64{36.82, -1.28}, fc.Features[0].Geometry.Coordinates)
}

func TestNearbyIncidents_ReportsFallback(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().
		NearbyIncidents(gomock.Any(), gomock.Nil(), gomock.Nil(), 0).
		Return(&models.NearbyIncidents{
			Latitude:     51.505,
			Longitude:    -0.09,
			RadiusMeters: 5000,
			UsedFallback: true,
			Incidents:    []*models.Incident{{ID: uuid.New(), Type: models.IncidentHazard}},
		}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/nearby", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp NearbyIncidentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.UsedFallback)
	assert.Equal(t, 51.505, resp.Latitude)
	assert.Equal(t, 5000, resp.RadiusMeters)
	assert.Len(t, resp.Incidents, 1)
}

func TestSafetyStatus_ReportsFallback(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().
		SafetyStatus(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return(&models.SafetyStatus{Level: models.SafetySafe, UsedFallback: true}, nil)

	w := makeRequest(router, "GET", "/api/v1/safety/status", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SafetyStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.UsedFallback)
}

func TestGetStats(t *testing.T) {
	m, router := newTestHandler(t)
	m.incidents.EXPECT().GetStats(gomock.Any()).Return(&models.Stats{ActiveUsers: 3, IncidentsLast24h: 7, WindowMinutes: 60}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active_users":3,"incidents_last_24h":7,"window_minutes":60}`, w.Body.String())
}

func TestGetWeather_Unavailable(t *testing.T) {
	m, router := newTestHandler(t)
	m.weather.EXPECT().GetWeather(gomock.Any(), gomock.Nil(), gomock.Nil()).Return(nil, service.ErrWeatherUnavailable)

	w := makeRequest(router, "GET", "/api/v1/weather", nil, apiKey)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetWeather_ParsesCoordinates(t *testing.T) {
	m, router := newTestHandler(t)
	m.weather.EXPECT().
		GetWeather(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lat, lng *float64) (*models.Weather, error) {
			require.NotNil(t, lat)
			require.NotNil(t, lng)
			assert.Equal(t, -1.28, *lat)
			assert.Equal(t, 36.82, *lng)
			return &models.Weather{Condition: "Clear", Provider: "open-meteo"}, nil
		})

	w := makeRequest(router, "GET", "/api/v1/weather?lat=-1.28&lng=36.82", nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"used_fallback":false`)
}

func TestGetWeather_ReportsFallback(t *testing.T) {
	m, router := newTestHandler(t)
	m.weather.EXPECT().
		GetWeather(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return(&models.Weather{Condition: "Clear", UsedFallback: true}, nil)

	w := makeRequest(router, "GET", "/api/v1/weather", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.Weather
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.UsedFallback)
}

func TestGeocodeSearch_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	m.geocoding.EXPECT().Search(gomock.Any(), "Atlantis", 5).Return(nil, service.ErrLocationNotFound)

	w := makeRequest(router, "GET", "/api/v1/geocode/search?q=Atlantis", nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "location not found", decodeError(t, w).Error)
}

func TestGeocodeReverse_MissingCoordinates(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/geocode/reverse?lat=1", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard_Success(t *testing.T) {
	m, router := newTestHandler(t)
	m.dashboard.EXPECT().Snapshot(gomock.Any(), gomock.Nil(), gomock.Nil()).Return(&models.Dashboard{
		UsedFallback: true,
		WeatherError: "Weather unavailable",
		Safety:       &models.SafetyStatus{Level: models.SafetySafe},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/dashboard", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"weather_error":"Weather unavailable"`)
}

func TestGetProfile_Remaining(t *testing.T) {
	m, router := newTestHandler(t)
	m.plans.EXPECT().GetProfile(gomock.Any(), "driver-1").Return(&models.UserProfile{
		UserID:        "driver-1",
		Plan:          models.PlanFree,
		Theme:         models.ThemeDark,
		V2VDailyCount: 2,
		LastResetDate: "2026-03-01",
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/users/me", nil, asDriver)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.V2VRemaining)
}

func TestSubscribe_UnknownPlan(t *testing.T) {
	m, router := newTestHandler(t)
	m.plans.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/users/me/plan", bytes.NewBufferString(`{"plan":"gold"}`), asDriver)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendV2V_DailyLimit(t *testing.T) {
	m, router := newTestHandler(t)
	m.v2v.EXPECT().
		Send(gomock.Any(), "driver-1", "", "Police check ahead", gomock.Nil(), gomock.Nil()).
		Return(nil, 0, fmt.Errorf("service: %w", service.ErrDailyLimitReached))

	w := makeRequest(router, "POST", "/api/v1/v2v/messages", jsonBody(t, SendV2VRequest{Text: "Police check ahead"}), asDriver)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "pro", resp.UpgradeTo)
	assert.NotEmpty(t, resp.Message)
}

func TestSendV2V_TooLong(t *testing.T) {
	m, router := newTestHandler(t)
	m.v2v.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	text := string(bytes.Repeat([]byte("a"), 281))
	w := makeRequest(router, "POST", "/api/v1/v2v/messages", jsonBody(t, SendV2VRequest{Text: text}), asDriver)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendV2V_Success(t *testing.T) {
	m, router := newTestHandler(t)
	msg := &models.V2VMessage{ID: uuid.New(), SenderID: "driver-1", SenderName: "Driver", Text: "Clear road"}
	m.v2v.EXPECT().Send(gomock.Any(), "driver-1", "", "Clear road", gomock.Nil(), gomock.Nil()).Return(msg, 4, nil)

	w := makeRequest(router, "POST", "/api/v1/v2v/messages", jsonBody(t, SendV2VRequest{Text: "Clear road"}), asDriver)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp SendV2VResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Remaining)
	assert.Equal(t, msg.ID, resp.Message.ID)
}

func TestSendSOS_LocationRequired(t *testing.T) {
	m, router := newTestHandler(t)
	m.security.EXPECT().
		SendSOS(gomock.Any(), "driver-1", gomock.Nil(), gomock.Nil()).
		Return(nil, fmt.Errorf("service: location required for SOS: %w", service.ErrInvalidLocation))

	w := makeRequest(router, "POST", "/api/v1/security/sos", bytes.NewBufferString(`{}`), asDriver)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Location required for SOS", decodeError(t, w).Error)
}

func TestSendSOS_Success(t *testing.T) {
	m, router := newTestHandler(t)
	event := &models.SecurityEvent{ID: uuid.New(), UserID: "driver-1", Type: models.SecurityEventSOS, Latitude: -1.28, Longitude: 36.82}
	m.security.EXPECT().SendSOS(gomock.Any(), "driver-1", gomock.Any(), gomock.Any()).Return(event, nil)

	w := makeRequest(router, "POST", "/api/v1/security/sos", bytes.NewBufferString(`{"latitude":-1.28,"longitude":36.82}`), asDriver)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Emergency SOS")
}

func TestPlanRoute_UpgradeRequired(t *testing.T) {
	m, router := newTestHandler(t)
	m.navigation.EXPECT().
		PlanRoute(gomock.Any(), "driver-1", gomock.Any()).
		Return(nil, &service.PlanError{Feature: models.FeatureNavigation, Current: models.PlanPro, Required: models.PlanPremium})

	w := makeRequest(router, "POST", "/api/v1/navigation/route", bytes.NewBufferString(`{"destination":"Nakuru"}`), asDriver)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "premium", resp.UpgradeTo)
	assert.Equal(t, "upgrade required", resp.Error)
}

func TestPlanRoute_Success(t *testing.T) {
	m, router := newTestHandler(t)
	m.navigation.EXPECT().
		PlanRoute(gomock.Any(), "driver-1", models.RouteRequest{Destination: "Nakuru", Mode: models.RouteSafest}).
		Return(&models.Route{
			Mode:        models.RouteSafest,
			Points:      []models.RoutePoint{{Lat: -1.28, Lng: 36.82}, {Lat: -0.30, Lng: 36.07}},
			SafetyScore:  90,
			Source:       "interpolated",
			UsedFallback: true,
		}, nil)

	w := makeRequest(router, "POST", "/api/v1/navigation/route", bytes.NewBufferString(`{"destination":"Nakuru","mode":"safest"}`), asDriver)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Route   models.Route `json:"route"`
		Feature struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
		} `json:"feature"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 90, resp.Route.SafetyScore)
	assert.True(t, resp.Route.UsedFallback)
	assert.Equal(t, "LineString", resp.Feature.Geometry.Type)
}

func TestPlanRoute_InvalidMode(t *testing.T) {
	m, router := newTestHandler(t)
	m.navigation.EXPECT().PlanRoute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/navigation/route", bytes.NewBufferString(`{"destination":"Nakuru","mode":"scenic"}`), asDriver)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNearbyPlaces_UnknownCategory(t *testing.T) {
	m, router := newTestHandler(t)
	m.navigation.EXPECT().
		NearbyPlaces(gomock.Any(), "driver-1", "casino", gomock.Nil(), gomock.Nil()).
		Return(nil, fmt.Errorf("service: %w: %q", service.ErrUnknownCategory, "casino"))

	w := makeRequest(router, "GET", "/api/v1/navigation/places?category=casino", nil, asDriver)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, service.ErrUnknownCategory.Error(), decodeError(t, w).Error)
}

func TestNearbyPlaces_Upstream(t *testing.T) {
	m, router := newTestHandler(t)
	m.navigation.EXPECT().
		NearbyPlaces(gomock.Any(), "driver-1", "hospital", gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w: %w", service.ErrUpstream, io.ErrUnexpectedEOF))

	w := makeRequest(router, "GET", "/api/v1/navigation/places?category=hospital&lat=-1.28&lng=36.82", nil, asDriver)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateGroup_UpgradeRequired(t *testing.T) {
	m, router := newTestHandler(t)
	m.social.EXPECT().
		CreateGroup(gomock.Any(), "driver-1", "Matatu crew", "").
		Return(nil, &service.PlanError{Feature: models.FeatureGroups, Current: models.PlanFree, Required: models.PlanPro})

	w := makeRequest(router, "POST", "/api/v1/social/groups", jsonBody(t, CreateGroupRequest{Name: "Matatu crew"}), asDriver)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "pro", decodeError(t, w).UpgradeTo)
}

func TestSchedulePost_InPast(t *testing.T) {
	m, router := newTestHandler(t)
	publishAt := time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC)
	m.social.EXPECT().
		SchedulePost(gomock.Any(), "driver-1", "Morning update", gomock.Nil(), publishAt).
		Return(nil, service.ErrInvalidSchedule)

	w := makeRequest(router, "POST", "/api/v1/social/scheduled",
		jsonBody(t, SchedulePostRequest{Content: "Morning update", PublishAt: publishAt}), asDriver)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, service.ErrInvalidSchedule.Error(), decodeError(t, w).Error)
}

func TestFeed_InvalidGroupID(t *testing.T) {
	m, router := newTestHandler(t)
	m.social.EXPECT().Feed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/social/posts?group_id=abc", nil, apiKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeed_GroupFilter(t *testing.T) {
	m, router := newTestHandler(t)
	groupID := uuid.New()
	m.social.EXPECT().Feed(gomock.Any(), 1, 20, &groupID).Return([]*models.SocialPost{{ID: uuid.New(), GroupID: &groupID}}, nil)

	w := makeRequest(router, "GET", "/api/v1/social/posts?group_id="+groupID.String(), nil, apiKey)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrafficAlerts(t *testing.T) {
	m, router := newTestHandler(t)
	m.traffic.EXPECT().Alerts(gomock.Any(), gomock.Nil(), gomock.Nil()).Return(models.TrafficReport{
		CongestionLevel: 72,
		Congestion:      "heavy",
		Alerts:          []string{"Accident reported ahead"},
	})

	w := makeRequest(router, "GET", "/api/v1/traffic/alerts", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"congestion":"heavy"`)
}
