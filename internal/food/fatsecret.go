// internal/food/fatsecret.go
package food

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Food is a single search result of the FatSecret food database.
type Food struct {
	FoodID      string `json:"food_id"`
	FoodName    string `json:"food_name"`
	FoodType    string `json:"food_type"`
	Description string `json:"food_description"`
	FoodURL     string `json:"food_url"`
}

// foodList accepts both a single object and an array, FatSecret returns
// either depending on the number of results.
type foodList []Food

func (l *foodList) UnmarshalJSON(data []byte) error {
	var many []Food
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one Food
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = foodList{one}
	return nil
}

type foodSearchResponse struct {
	Foods struct {
		Food         foodList `json:"food"`
		MaxResults   string   `json:"max_results"`
		PageNumber   string   `json:"page_number"`
		TotalResults string   `json:"total_results"`
	} `json:"foods"`
}

// FatSecretClient ищет продукты в FatSecret, обновляя OAuth2-токен по необходимости.
type FatSecretClient struct {
	httpClient   *http.Client
	tokenURL     string
	apiURL       string
	clientID     string
	clientSecret string
	store        TokenStore

	mu    sync.Mutex
	token *TokenData

	now func() time.Time
}

func NewFatSecretClient(clientID, clientSecret, tokenURL, apiURL string, store TokenStore, timeout time.Duration) *FatSecretClient {
	return &FatSecretClient{
		httpClient:   &http.Client{Timeout: timeout},
		tokenURL:     tokenURL,
		apiURL:       apiURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		store:        store,
		now:          time.Now,
	}
}

// Search returns up to maxResults foods matching the name.
func (c *FatSecretClient) Search(ctx context.Context, foodName string, maxResults int) ([]Food, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := c.apiURL + "/foods/search/v1"
	params := url.Values{}
	params.Set("search_expression", foodName)
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("food search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food search returned status %d", resp.StatusCode)
	}

	var result foodSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode food search response: %w", err)
	}

	return result.Foods.Food, nil
}

// ensureToken returns a valid access token, refreshing and persisting it
// through the TokenStore when the cached one has expired.
func (c *FatSecretClient) ensureToken(ctx context.Context) (*TokenData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.Valid(c.now()) {
		return c.token, nil
	}

	// Another process may have refreshed the token already.
	if stored, err := c.store.Load(ctx); err == nil && stored.Valid(c.now()) {
		c.token = stored
		return c.token, nil
	}

	token, err := c.requestToken(ctx)
	if err != nil {
		return nil, err
	}
	c.token = token

	if err := c.store.Save(ctx, token); err != nil {
		// Токен рабочий, потеря кэша не критична
		return token, nil
	}

	return token, nil
}

func (c *FatSecretClient) requestToken(ctx context.Context) (*TokenData, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", "basic")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var token TokenData
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	token.CreatedAt = c.now()

	return &token, nil
}
