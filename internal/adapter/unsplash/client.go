// internal/adapter/unsplash/client.go
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GoArmGo/RandomImage/internal/config"
	"github.com/GoArmGo/RandomImage/internal/domain"
)

const (
	defaultBaseURL = "https://api.unsplash.com"
	apiVersion     = "v1"
)

// UnsplashAPIClient представляет клиент для взаимодействия с Unsplash API.
type UnsplashAPIClient struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
}

// NewUnsplashAPIClient создает новый экземпляр UnsplashAPIClient.
func NewUnsplashAPIClient(cfg *config.Config) *UnsplashAPIClient {
	return NewClient(&http.Client{Timeout: cfg.UnsplashTimeout}, cfg.UnsplashAPIURL, cfg.UnsplashAccessKey)
}

// NewClient создает клиент с явно заданным http.Client и базовым URL
func NewClient(httpClient *http.Client, baseURL, accessKey string) *UnsplashAPIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &UnsplashAPIClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessKey:  accessKey,
	}
}

// FetchRandomPhoto реализует метод PhotoFetcher: /photos/random по пользователю или коллекции.
func (c *UnsplashAPIClient) FetchRandomPhoto(ctx context.Context, q domain.RandomPhotoQuery) (*domain.Photo, error) {
	params := url.Values{}
	if q.Username != "" {
		params.Set("username", q.Username)
	}
	if q.CollectionID != "" {
		params.Set("collections", q.CollectionID)
	}
	if q.Orientation != "" {
		params.Set("orientation", string(q.Orientation))
	}

	endpoint := fmt.Sprintf("%s/photos/random?%s", c.baseURL, params.Encode())

	var unsplashPhoto UnsplashPhotoResponse
	if err := c.getJSON(ctx, endpoint, &unsplashPhoto); err != nil {
		return nil, err
	}
	return mapUnsplashPhotoToDomain(&unsplashPhoto), nil
}

// ListUserPhotos реализует метод PhotoFetcher: первая страница фото пользователя.
func (c *UnsplashAPIClient) ListUserPhotos(ctx context.Context, username string, perPage int) ([]domain.Photo, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))

	endpoint := fmt.Sprintf("%s/users/%s/photos?%s", c.baseURL, url.PathEscape(username), params.Encode())

	var unsplashPhotos []UnsplashPhotoResponse // список фото напрямую
	if err := c.getJSON(ctx, endpoint, &unsplashPhotos); err != nil {
		return nil, err
	}

	domainPhotos := make([]domain.Photo, 0, len(unsplashPhotos))
	for i := range unsplashPhotos {
		domainPhotos = append(domainPhotos, *mapUnsplashPhotoToDomain(&unsplashPhotos[i]))
	}
	return domainPhotos, nil
}

// mapUnsplashPhotoToDomain преобразует UnsplashPhotoResponse в domain.Photo.
func mapUnsplashPhotoToDomain(unsplashPhoto *UnsplashPhotoResponse) *domain.Photo {
	photo := &domain.Photo{
		UnsplashID:       unsplashPhoto.ID,
		RegularURL:       unsplashPhoto.URLs.Regular,
		FullURL:          unsplashPhoto.URLs.Full,
		RawURL:           unsplashPhoto.URLs.Raw,
		AuthorName:       unsplashPhoto.User.Name,
		AuthorUsername:   unsplashPhoto.User.Username,
		AuthorProfileURL: unsplashPhoto.User.Links.HTML,
	}
	if unsplashPhoto.AltDescription != nil {
		photo.AltDescription = *unsplashPhoto.AltDescription
	}
	return photo
}

// getJSON выполняет GET к Unsplash и декодирует тело в out.
// Неуспешный статус превращается в *domain.UpstreamError.
func (c *UnsplashAPIClient) getJSON(ctx context.Context, endpoint string, out any) error {
	if c.accessKey == "" {
		return domain.ErrMissingAccessKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create unsplash request: %w", err)
	}

	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("unsplash request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return fmt.Errorf("read unsplash response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UpstreamError{Status: resp.StatusCode, Detail: parseDetail(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode unsplash response: %w", err)
	}
	return nil
}

// parseDetail пытается разобрать тело ошибки как JSON, иначе возвращает текст
func parseDetail(body []byte) any {
	var detail any
	if err := json.Unmarshal(body, &detail); err != nil {
		return string(body)
	}
	return detail
}
