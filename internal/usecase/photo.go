package usecase

import (
	"context"

	"github.com/GoArmGo/RandomImage/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_photo.go -package=mock_usecase . PhotoFetcher,ImageUseCase

// PhotoFetcher определяет интерфейс для получения фото из внешнего источника (Unsplash API).
// Реализация маппит ответ во внутреннюю доменную модель Photo
type PhotoFetcher interface {
	// FetchRandomPhoto возвращает одно случайное фото пользователя или коллекции
	FetchRandomPhoto(ctx context.Context, q domain.RandomPhotoQuery) (*domain.Photo, error)

	// ListUserPhotos возвращает первую страницу фото пользователя
	ListUserPhotos(ctx context.Context, username string, perPage int) ([]domain.Photo, error)
}

// ImageUseCase определяет бизнес-логику /api/random
type ImageUseCase interface {
	// RandomImage выбирает фото согласно стратегии деплоя и собирает ответ.
	// Ошибки: domain.ErrMissingAccessKey, *domain.UpstreamError, domain.ErrNoUsableURL,
	// domain.ErrNoPhotos или любая другая (внутренняя) ошибка.
	RandomImage(ctx context.Context, req domain.ImageRequest) (*domain.ImagePayload, error)
}
