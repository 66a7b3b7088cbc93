package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAccessKey: ключ Unsplash не задан в окружении
	ErrMissingAccessKey = errors.New("missing UNSPLASH_ACCESS_KEY environment variable")

	// ErrNoUsableURL: Unsplash ответил успешно, но без regular/full/raw
	ErrNoUsableURL = errors.New("no usable image URL from Unsplash")

	// ErrNoPhotos: список фото пользователя пуст
	ErrNoPhotos = errors.New("no photos found for user")
)

// UpstreamError означает, что Unsplash вернул неуспешный статус.
// Detail содержит разобранный JSON тела или сырой текст.
type UpstreamError struct {
	Status int
	Detail any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("unsplash API returned status %d", e.Status)
}
