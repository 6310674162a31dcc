package simbackend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"simcompare/internal/domain"
	"strings"
)

// Client talks to the simulation backend. it holds no auth state, the
// caller's token travels in the ctx of each call
type Client struct {
	HttpClient *http.Client
	BaseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) Client {
	return Client{
		HttpClient: httpClient,
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type contextKey string

const accessTokenKey contextKey = "accessToken"

func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey).(string)
	return token, ok && token != ""
}

func (c Client) GetSimulation(ctx context.Context, id string) (*domain.SimulationResult, error) {
	out := &domain.SimulationResult{}
	err := c.get(ctx, "/simulations/"+url.PathEscape(id), out)
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation %s: %w", id, err)
	}
	if out.ID == "" {
		out.ID = id
	}
	return out, nil
}

func (c Client) ListSimulations(ctx context.Context) ([]domain.SimulationHistoryEntry, error) {
	out := []domain.SimulationHistoryEntry{}
	err := c.get(ctx, "/simulations", &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	return out, nil
}

func (c Client) get(ctx context.Context, path string, responseJson interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := AccessTokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == http.StatusNotFound {
		return domain.ErrSimulationNotFound
	} else if response.StatusCode != http.StatusOK {
		type errResponse struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		msg := errJson.Error
		if msg == "" {
			msg = errJson.Message
		}
		return fmt.Errorf("failed with status code %d: %s", response.StatusCode, msg)
	}

	err = json.Unmarshal(responseBytes, responseJson)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
