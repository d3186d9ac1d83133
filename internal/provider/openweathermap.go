package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

const openWeatherMapName = "openweathermap"

// OpenWeatherMap - клиент OpenWeatherMap (нужен ключ API)
type OpenWeatherMap struct {
	baseURL string
	apiKey  string
	http    *httpClient
}

func NewOpenWeatherMap(baseURL, apiKey string, timeout time.Duration, userAgent string) *OpenWeatherMap {
	return &OpenWeatherMap{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    newHTTPClient(timeout, userAgent),
	}
}

func (o *OpenWeatherMap) Name() string { return openWeatherMapName }

// Current возвращает текущую погоду в метрических единицах
func (o *OpenWeatherMap) Current(ctx context.Context, lat, lng float64) (*models.Weather, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', 4, 64))
	params.Set("appid", o.apiKey)
	params.Set("units", "metric")

	body, err := o.http.getBytes(ctx, openWeatherMapName, o.baseURL+"/data/2.5/weather?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%s: invalid JSON response", openWeatherMapName)
	}

	res := gjson.ParseBytes(body)
	if !res.Get("main.temp").Exists() || !res.Get("weather.0").Exists() {
		return nil, errors.New(openWeatherMapName + ": response has no current conditions")
	}

	observed := time.Now().UTC()
	if dt := res.Get("dt"); dt.Exists() {
		observed = time.Unix(dt.Int(), 0).UTC()
	}

	return &models.Weather{
		Latitude:        lat,
		Longitude:       lng,
		TemperatureC:    res.Get("main.temp").Float(),
		Condition:       res.Get("weather.0.main").String(),
		Description:     res.Get("weather.0.description").String(),
		WindSpeedMS:     res.Get("wind.speed").Float(),
		HumidityPct:     res.Get("main.humidity").Float(),
		PrecipitationMM: res.Get("rain.1h").Float(),
		Provider:        openWeatherMapName,
		ObservedAt:      observed,
	}, nil
}
