// internal/weather/owm.go
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fitness-bot/internal/metrics"
	"fitness-bot/pkg/apperrors"
)

// WeatherData is the subset of the OpenWeatherMap current-weather response
// the bot cares about.
type WeatherData struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Name string `json:"name"`
	Cod  int    `json:"cod"`
}

// OWMClient запрашивает текущую погоду в OpenWeatherMap.
type OWMClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewOWMClient(apiKey, baseURL string, timeout time.Duration) *OWMClient {
	return &OWMClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// CurrentTemperature returns the current temperature in the city, in °C.
// Any failure maps to apperrors.ErrUnavailable so the caller can degrade.
func (c *OWMClient) CurrentTemperature(ctx context.Context, city string) (float64, error) {
	temp, err := c.currentTemperature(ctx, city)
	metrics.ObserveCollaborator("weather", err)
	return temp, err
}

func (c *OWMClient) currentTemperature(ctx context.Context, city string) (float64, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	endpoint := c.baseURL + "/weather?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: weather returned status %d", apperrors.ErrUnavailable, resp.StatusCode)
	}

	var data WeatherData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err)
	}

	return data.Main.Temp, nil
}
