package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/go-resty/resty/v2"
)

const (
	usersPath = "/api/users"
	userPath  = "/api/users/{id}"
)

type httpUsersAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUsersAPI constructs an HTTP implementation of [UsersAPI].
// cfg.HTTPAddress may omit the scheme, "http" is assumed.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPUsersAPI(cfg config.ClientAdapter, logger *logger.Logger) (UsersAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpUsersAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUsersAPI) Health(ctx context.Context) (models.Health, error) {
	var health models.Health

	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err = decode(resp, err, &health); err != nil {
		return models.Health{}, fmt.Errorf("health request: %w", err)
	}

	return health, nil
}

func (h *httpUsersAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}

	resp, err := h.client.R().SetContext(ctx).Get(usersPath)
	if err = decode(resp, err, &users); err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}

	return users, nil
}

func (h *httpUsersAPI) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(usersPath)
	if err = decode(resp, err, &created); err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}

	h.logger.Debug().Int64("id", created.ID).Msg("user created via API")
	return created, nil
}

func (h *httpUsersAPI) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.userRequest(ctx, id).Get(userPath)
	if err = decode(resp, err, &user); err != nil {
		return models.User{}, fmt.Errorf("get user %d request: %w", id, err)
	}

	return user, nil
}

func (h *httpUsersAPI) UpdateUser(ctx context.Context, id int64, request models.UpdateUserRequest) (models.User, error) {
	var updated models.User

	resp, err := h.userRequest(ctx, id).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put(userPath)
	if err = decode(resp, err, &updated); err != nil {
		return models.User{}, fmt.Errorf("update user %d request: %w", id, err)
	}

	return updated, nil
}

func (h *httpUsersAPI) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.userRequest(ctx, id).Delete(userPath)
	if err != nil {
		return fmt.Errorf("delete user %d request: %w", id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete user %d request: %w", id, err)
	}

	return nil
}

func (h *httpUsersAPI) userRequest(ctx context.Context, id int64) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10))
}

// decode checks the transport error and the status, then unmarshals the
// body into dst.
func decode(resp *resty.Response, err error, dst any) error {
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
