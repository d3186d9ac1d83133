package provider

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

const openMeteoName = "open-meteo"

// OpenMeteo - клиент Open-Meteo, ключ API не нужен
type OpenMeteo struct {
	baseURL string
	http    *httpClient
}

func NewOpenMeteo(baseURL string, timeout time.Duration, userAgent string) *OpenMeteo {
	return &OpenMeteo{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(timeout, userAgent),
	}
}

func (o *OpenMeteo) Name() string { return openMeteoName }

type openMeteoResponse struct {
	Current struct {
		Time             string  `json:"time"`
		Temperature      float64 `json:"temperature_2m"`
		RelativeHumidity float64 `json:"relative_humidity_2m"`
		Precipitation    float64 `json:"precipitation"`
		WeatherCode      int     `json:"weather_code"`
		WindSpeed        float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// Current возвращает текущую погоду в точке
func (o *OpenMeteo) Current(ctx context.Context, lat, lng float64) (*models.Weather, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(lng, 'f', 4, 64))
	params.Set("current", "temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m")
	params.Set("wind_speed_unit", "ms")
	params.Set("timezone", "UTC")

	var resp openMeteoResponse
	if err := o.http.getJSON(ctx, openMeteoName, o.baseURL+"/v1/forecast?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	condition, description := wmoCondition(resp.Current.WeatherCode)
	observed, err := time.Parse("2006-01-02T15:04", resp.Current.Time)
	if err != nil {
		observed = time.Now().UTC()
	}

	return &models.Weather{
		Latitude:        lat,
		Longitude:       lng,
		TemperatureC:    resp.Current.Temperature,
		Condition:       condition,
		Description:     description,
		WindSpeedMS:     resp.Current.WindSpeed,
		HumidityPct:     resp.Current.RelativeHumidity,
		PrecipitationMM: resp.Current.Precipitation,
		Provider:        openMeteoName,
		ObservedAt:      observed,
	}, nil
}

// wmoCondition переводит код погоды WMO в условие в стиле OpenWeatherMap
func wmoCondition(code int) (string, string) {
	switch {
	case code == 0:
		return "Clear", "clear sky"
	case code == 1:
		return "Clouds", "mainly clear"
	case code == 2:
		return "Clouds", "partly cloudy"
	case code == 3:
		return "Clouds", "overcast"
	case code == 45 || code == 48:
		return "Fog", "fog"
	case code >= 51 && code <= 57:
		return "Drizzle", "drizzle"
	case code >= 61 && code <= 67:
		return "Rain", "rain"
	case code >= 71 && code <= 77:
		return "Snow", "snow"
	case code >= 80 && code <= 82:
		return "Rain", "rain showers"
	case code == 85 || code == 86:
		return "Snow", "snow showers"
	case code >= 95 && code <= 99:
		return "Thunderstorm", "thunderstorm"
	}
	return "Unknown", "unknown"
}
