package dota

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	internal "github.com/KirkDiggler/dota-bot-discord/internal"
	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
)

const (
	DefaultBaseURL  = "https://www.dota2.com/datafeed"
	DefaultLanguage = "english"

	ServiceHeroList    = "herolist"
	ServiceHeroData    = "herodata"
	ServiceItemList    = "itemlist"
	ServiceItemData    = "itemdata"
	ServiceAbilityList = "abilitylist"
	ServiceAbilityData = "abilitydata"

	statusOK = 1
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	serviceURLs map[string]string
	language    string
}

type Config struct {
	HttpClient *http.Client
	// BaseURL is the datafeed root; each service lives at BaseURL/<service>.
	BaseURL string
	// ServiceURLs overrides the full URL of individual services by name.
	ServiceURLs map[string]string
	Language    string
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	language := cfg.Language
	if language == "" {
		language = DefaultLanguage
	}

	return &client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		serviceURLs: cfg.ServiceURLs,
		language:    language,
	}, nil
}

func (c *client) ListHeroes(ctx context.Context) ([]*entities.EntityRef, error) {
	response, err := getJSON[apiHeroList](ctx, c, ServiceHeroList, nil)
	if err != nil {
		return nil, err
	}

	return apiRefsToEntityRefs(response.Heroes), nil
}

func (c *client) GetHero(ctx context.Context, id int) (*entities.Hero, error) {
	if id <= 0 {
		return nil, internal.NewInvalidParamError("GetHero.id")
	}

	response, err := getJSON[apiHeroData](ctx, c, ServiceHeroData, url.Values{"hero_id": {strconv.Itoa(id)}})
	if err != nil {
		return nil, err
	}

	if len(response.Heroes) == 0 || response.Heroes[0] == nil {
		return nil, internal.NewNotFoundError("hero", strconv.Itoa(id))
	}

	return apiHeroToHero(response.Heroes[0]), nil
}

func (c *client) ListItems(ctx context.Context) ([]*entities.EntityRef, error) {
	response, err := getJSON[apiItemAbilityList](ctx, c, ServiceItemList, nil)
	if err != nil {
		return nil, err
	}

	return apiRefsToEntityRefs(response.ItemAbilities), nil
}

func (c *client) GetItem(ctx context.Context, id int) (*entities.Item, error) {
	if id <= 0 {
		return nil, internal.NewInvalidParamError("GetItem.id")
	}

	response, err := getJSON[apiItemData](ctx, c, ServiceItemData, url.Values{"item_id": {strconv.Itoa(id)}})
	if err != nil {
		return nil, err
	}

	if len(response.Items) == 0 || response.Items[0] == nil {
		return nil, internal.NewNotFoundError("item", strconv.Itoa(id))
	}

	return apiItemToItem(response.Items[0]), nil
}

func (c *client) ListAbilities(ctx context.Context) ([]*entities.EntityRef, error) {
	response, err := getJSON[apiItemAbilityList](ctx, c, ServiceAbilityList, nil)
	if err != nil {
		return nil, err
	}

	return apiRefsToEntityRefs(response.ItemAbilities), nil
}

func (c *client) GetAbility(ctx context.Context, id int) (*entities.Ability, error) {
	if id <= 0 {
		return nil, internal.NewInvalidParamError("GetAbility.id")
	}

	response, err := getJSON[apiAbilityData](ctx, c, ServiceAbilityData, url.Values{"ability_id": {strconv.Itoa(id)}})
	if err != nil {
		return nil, err
	}

	if len(response.Abilities) == 0 || response.Abilities[0] == nil {
		return nil, internal.NewNotFoundError("ability", strconv.Itoa(id))
	}

	return apiAbilityToAbility(response.Abilities[0]), nil
}

// serviceURL returns the URL of a datafeed service, preferring a configured
// override over BaseURL/<service>.
func (c *client) serviceURL(service string, params url.Values) (string, error) {
	raw, ok := c.serviceURLs[service]
	if !ok || raw == "" {
		raw = c.baseURL + "/" + service
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid %s url %q: %w", service, raw, err)
	}

	query := u.Query()
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	if query.Get("language") == "" {
		query.Set("language", c.language)
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func getJSON[T any](ctx context.Context, c *client, service string, params url.Values) (*T, error) {
	endpoint, err := c.serviceURL(service, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", service, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s returned status %d: %s", service, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope apiResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", service, err)
	}

	if envelope.Result.Status != statusOK {
		return nil, fmt.Errorf("%s returned result status %d", service, envelope.Result.Status)
	}

	return &envelope.Result.Data, nil
}
