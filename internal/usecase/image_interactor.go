package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/GoArmGo/RandomImage/internal/core/ports"
	"github.com/GoArmGo/RandomImage/internal/domain"
	"github.com/GoArmGo/RandomImage/internal/messaging/payloads"
	"github.com/google/uuid"
)

// imageUseCase implements ImageUseCase
type imageUseCase struct {
	selection    domain.Selection
	photoFetcher PhotoFetcher
	publisher    ports.ServedImagePublisher
	logger       *slog.Logger

	// pickIndex выбирает индекс в списке фото, в тестах подменяется
	pickIndex func(n int) int
}

// NewImageUseCase создает новый экземпляр ImageUseCase.
// publisher может быть nil, тогда события не публикуются.
func NewImageUseCase(
	selection domain.Selection,
	photoFetcher PhotoFetcher,
	publisher ports.ServedImagePublisher,
	logger *slog.Logger,
) ImageUseCase {
	return &imageUseCase{
		selection:    selection,
		photoFetcher: photoFetcher,
		publisher:    publisher,
		logger:       logger,
		pickIndex:    rand.Intn,
	}
}

// RandomImage получает фото из Unsplash и собирает нормализованный ответ
func (uc *imageUseCase) RandomImage(ctx context.Context, req domain.ImageRequest) (*domain.ImagePayload, error) {
	photo, err := uc.selectPhoto(ctx, req)
	if err != nil {
		return nil, err
	}

	imageURL := photo.PreferredURL()
	if imageURL == "" {
		uc.logger.Error("unsplash returned no usable URL",
			"unsplash_id", photo.UnsplashID,
			"strategy", uc.selection.Strategy,
		)
		return nil, domain.ErrNoUsableURL
	}

	name := photo.AuthorName
	if name == "" {
		name = photo.AuthorUsername
	}

	payload := &domain.ImagePayload{
		URL:            domain.AppendSizing(imageURL, req.Width),
		ID:             domain.OptionalString(photo.UnsplashID),
		Raw:            domain.OptionalString(photo.RawURL),
		AltDescription: domain.OptionalString(photo.AltDescription),
		Photographer: domain.Photographer{
			Name:       domain.OptionalString(name),
			Username:   domain.OptionalString(photo.AuthorUsername),
			ProfileURL: domain.OptionalString(photo.AuthorProfileURL),
		},
		Source: domain.Source,
	}
	if uc.selection.Strategy == domain.ByCollection {
		payload.CollectionID = uc.selection.CollectionID
	}

	uc.publishServed(ctx, req, photo)

	return payload, nil
}

// selectPhoto: единственная точка, где выбирается эндпоинт Unsplash
func (uc *imageUseCase) selectPhoto(ctx context.Context, req domain.ImageRequest) (*domain.Photo, error) {
	switch uc.selection.Strategy {
	case domain.ByCollection:
		return uc.photoFetcher.FetchRandomPhoto(ctx, domain.RandomPhotoQuery{
			CollectionID: uc.selection.CollectionID,
			Orientation:  req.Orientation,
		})

	case domain.ByUserListing:
		photos, err := uc.photoFetcher.ListUserPhotos(ctx, uc.selection.Username, uc.selection.PerPage)
		if err != nil {
			return nil, err
		}
		if len(photos) == 0 {
			uc.logger.Warn("user listing is empty", "username", uc.selection.Username)
			return nil, domain.ErrNoPhotos
		}
		idx := uc.pickIndex(len(photos))
		uc.logger.Debug("picked photo from user listing", "index", idx, "count", len(photos))
		return &photos[idx], nil

	case domain.ByUsername:
		return uc.photoFetcher.FetchRandomPhoto(ctx, domain.RandomPhotoQuery{
			Username:    uc.selection.Username,
			Orientation: req.Orientation,
		})

	default:
		return nil, fmt.Errorf("usecase: unknown selection strategy %q", uc.selection.Strategy)
	}
}

// publishServed отправляет событие об отданном фото; ошибки только логируются
func (uc *imageUseCase) publishServed(ctx context.Context, req domain.ImageRequest, photo *domain.Photo) {
	if uc.publisher == nil {
		return
	}

	event := payloads.ServedImagePayload{
		EventID:              uuid.NewString(),
		RequestID:            req.RequestID,
		PhotoID:              photo.UnsplashID,
		PhotographerUsername: photo.AuthorUsername,
		Strategy:             string(uc.selection.Strategy),
		Width:                req.Width,
		Orientation:          string(req.Orientation),
		ServedAt:             time.Now().UTC(),
	}

	if err := uc.publisher.PublishServedImage(ctx, event); err != nil {
		uc.logger.Warn("failed to publish served image event",
			"event_id", event.EventID,
			"photo_id", event.PhotoID,
			"error", err,
		)
	}
}
