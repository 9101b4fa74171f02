// internal/food/openfoodfacts.go
package food

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultOFFURL = "https://world.openfoodfacts.org"

// OFFClient запрашивает калорийность в OpenFoodFacts, резервный источник
// на случай, если FatSecret не ответил или описание не разобралось.
type OFFClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewOFFClient(timeout time.Duration) *OFFClient {
	return &OFFClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultOFFURL,
		userAgent:  "fitness-bot/1.0",
	}
}

func (c *OFFClient) CaloriesPer100g(ctx context.Context, productName string) (float64, error) {
	params := url.Values{}
	params.Set("search_terms", productName)
	params.Set("search_simple", "1")
	params.Set("json", "1")
	params.Set("fields", "product_name,nutriments")

	endpoint := c.baseURL + "/cgi/search.pl?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("product search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("product search returned status %d", resp.StatusCode)
	}

	var result struct {
		Products []struct {
			ProductName string                 `json:"product_name"`
			Nutriments  map[string]interface{} `json:"nutriments"`
		} `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode product search response: %w", err)
	}

	if len(result.Products) == 0 {
		return 0, fmt.Errorf("no products found")
	}

	// Значение бывает числом или строкой
	switch v := result.Products[0].Nutriments["energy-kcal_100g"].(type) {
	case float64:
		return v, nil
	case string:
		kcal, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("unparseable energy value %q", v)
		}
		return kcal, nil
	default:
		return 0, fmt.Errorf("no energy value in first product")
	}
}
