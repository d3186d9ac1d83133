package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

const nominatimName = "nominatim"

// Nominatim - клиент геокодера OpenStreetMap
type Nominatim struct {
	baseURL string
	http    *httpClient
}

func NewNominatim(baseURL string, timeout time.Duration, userAgent string) *Nominatim {
	return &Nominatim{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(timeout, userAgent),
	}
}

type nominatimPlace struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
	Address     struct {
		Road    string `json:"road"`
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

func (p nominatimPlace) toModel() (models.Place, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return models.Place{}, fmt.Errorf("invalid latitude %q: %w", p.Lat, err)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return models.Place{}, fmt.Errorf("invalid longitude %q: %w", p.Lon, err)
	}

	name := p.Name
	if name == "" {
		// город в порядке предпочтения
		for _, candidate := range []string{p.Address.Road, p.Address.City, p.Address.Town, p.Address.Village, p.Address.County} {
			if candidate != "" {
				name = candidate
				break
			}
		}
	}
	if name == "" {
		name, _, _ = strings.Cut(p.DisplayName, ",")
	}

	category := p.Type
	if p.Class != "" && p.Type != "" {
		category = p.Class + ":" + p.Type
	}

	return models.Place{
		Name:        name,
		DisplayName: p.DisplayName,
		Category:    category,
		Latitude:    lat,
		Longitude:   lng,
	}, nil
}

// Search ищет места по текстовому запросу
func (n *Nominatim) Search(ctx context.Context, query string, limit int) ([]models.Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(limit))

	var raw []nominatimPlace
	if err := n.http.getJSON(ctx, nominatimName, n.baseURL+"/search?"+params.Encode(), &raw); err != nil {
		return nil, err
	}

	places := make([]models.Place, 0, len(raw))
	for _, r := range raw {
		place, err := r.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nominatimName, err)
		}
		places = append(places, place)
	}
	return places, nil
}

// Reverse определяет адрес по координатам
func (n *Nominatim) Reverse(ctx context.Context, lat, lng float64) (*models.Place, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', 6, 64))
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	var raw nominatimPlace
	if err := n.http.getJSON(ctx, nominatimName, n.baseURL+"/reverse?"+params.Encode(), &raw); err != nil {
		return nil, err
	}
	if raw.Lat == "" {
		return nil, nil
	}

	place, err := raw.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nominatimName, err)
	}
	return &place, nil
}
