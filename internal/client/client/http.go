package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/dmitrijs2005/recipeadmin/internal/common"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

// HTTPDoer is the part of *http.Client the API client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	baseURL string
	doer    HTTPDoer
	timeout time.Duration
	logger  logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. http://host:5000/admin). A zero timeout disables the per-call limit.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    &http.Client{},
		timeout: timeout,
		logger:  logger.With("module", "httpclient"),
	}, nil
}

// WithDoer swaps the transport; used by tests.
func (c *HTTPClient) WithDoer(d HTTPDoer) *HTTPClient {
	c.doer = d
	return c
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token := accessTokenFrom(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(method, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func mapStatus(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var eb errorBody
	msg := ""
	if json.Unmarshal(raw, &eb) == nil {
		msg = eb.Message
		if msg == "" {
			msg = eb.Error
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: msg}
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	if in == nil {
		return c.do(ctx, method, path, nil, "", out)
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json", out)
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/categories", nil, "", nil)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}
	return resp.Token, nil
}

type nameRequest struct {
	Name string `json:"name"`
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var out models.Category
	if err := c.doJSON(ctx, http.MethodPost, "/categories", nameRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error) {
	var out models.Category
	if err := c.doJSON(ctx, http.MethodPut, idPath("/categories", id), nameRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/categories", id), nil, nil)
}

func (c *HTTPClient) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var out []models.Ingredient
	if err := c.doJSON(ctx, http.MethodGet, "/ingredients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIngredient creates an ingredient and returns the id assigned to it.
func (c *HTTPClient) CreateIngredient(ctx context.Context, name string) (int64, error) {
	var out models.Ingredient
	if err := c.doJSON(ctx, http.MethodPost, "/ingredients", nameRequest{Name: name}, &out); err != nil {
		return 0, err
	}
	if out.ID == 0 {
		return 0, fmt.Errorf("create ingredient %q: no id in response", name)
	}
	return out.ID, nil
}

func (c *HTTPClient) RenameIngredient(ctx context.Context, id int64, name string) (*models.Ingredient, error) {
	var out models.Ingredient
	if err := c.doJSON(ctx, http.MethodPut, idPath("/ingredients", id), nameRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteIngredient(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/ingredients", id), nil, nil)
}

func (c *HTTPClient) IngredientUnits(ctx context.Context) ([]models.IngredientUnit, error) {
	var out []models.IngredientUnit
	if err := c.doJSON(ctx, http.MethodGet, "/ingredients/units", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := c.doJSON(ctx, http.MethodGet, "/recipes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.doJSON(ctx, http.MethodGet, idPath("/recipes", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, body []byte, contentType string) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.do(ctx, http.MethodPost, "/recipes", bytes.NewReader(body), contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateRecipe(ctx context.Context, id int64, body []byte, contentType string) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.do(ctx, http.MethodPut, idPath("/recipes", id), bytes.NewReader(body), contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/recipes", id), nil, nil)
}

type changeAuthRequest struct {
	NeedsAuth bool `json:"needs_auth"`
}

func (c *HTTPClient) ChangeRecipeAuth(ctx context.Context, id int64, needsAuth bool) (*models.Recipe, error) {
	var out models.Recipe
	if err := c.doJSON(ctx, http.MethodPut, idPath("/recipes", id)+"/change-auth", changeAuthRequest{NeedsAuth: needsAuth}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PictureURL is where the server serves picture id from. It needs no token.
func (c *HTTPClient) PictureURL(id string) string {
	return c.baseURL + "/pictures/" + url.PathEscape(id)
}

func (c *HTTPClient) ListActivations(ctx context.Context) ([]models.Activation, error) {
	var out []models.Activation
	if err := c.doJSON(ctx, http.MethodGet, "/auth/app-activations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateActivationCode(ctx context.Context, req models.ActivationCodeRequest) (*models.Activation, error) {
	var out models.Activation
	if err := c.doJSON(ctx, http.MethodPost, "/auth/app-activations/create-code", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
