// Package imageclient provides the HTTP client for the external image service.
package imageclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultFetchTimeout = 5 * time.Second

// noopImageService is used when no image service endpoint is configured.
// Every user appears to have no images.
type noopImageService struct{}

func (noopImageService) GetImagesByUserID(_ context.Context, _ uuid.UUID) ([]entity.ImageRef, error) {
	return []entity.ImageRef{}, nil
}

// httpImageService fetches image references over HTTP from the image system.
type httpImageService struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for ImageService, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates an ImageService client based on configuration. An empty
// base URL disables image fetching.
func New(params Params) service.ImageService {
	cfg := params.Config.ImageService
	logger := params.Logger

	if cfg == nil || cfg.BaseURL == "" {
		logger.Info("Image service not configured, users resolve with no images")

		return noopImageService{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	logger.Info("Using HTTP image service client", slog.String("base_url", cfg.BaseURL))

	return &httpImageService{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// imageResponse is the wire format of the image system's listing endpoint.
type imageResponse struct {
	Images []struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"images"`
}

// GetImagesByUserID fetches the image references owned by a user.
// A user with no images yields an empty slice.
func (c *httpImageService) GetImagesByUserID(ctx context.Context, userID uuid.UUID) ([]entity.ImageRef, error) {
	url := fmt.Sprintf("%s/users/%s/images", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch images")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []entity.ImageRef{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("image service returned non-success status: %d", resp.StatusCode)
	}

	var body imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode image listing")
	}

	images := make([]entity.ImageRef, 0, len(body.Images))
	for _, img := range body.Images {
		images = append(images, entity.ImageRef{
			ID:          img.ID,
			OwnerUserID: userID,
			URL:         img.URL,
		})
	}

	return images, nil
}
