package domain

import "fmt"

// Strategy определяет, каким эндпоинтом Unsplash выбирается фото.
// Выбирается один раз при деплое, в рантайме не меняется.
type Strategy string

const (
	ByUsername    Strategy = "username"
	ByCollection  Strategy = "collection"
	ByUserListing Strategy = "user_listing"
)

// ParseStrategy проверяет значение из конфигурации
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case ByUsername, ByCollection, ByUserListing:
		return Strategy(s), nil
	case "":
		return ByUsername, nil
	default:
		return "", fmt.Errorf("unknown selection strategy %q (use %q, %q or %q)", s, ByUsername, ByCollection, ByUserListing)
	}
}

// Selection хранит параметры выбора фото для конкретного деплоя
type Selection struct {
	Strategy     Strategy
	Username     string
	CollectionID string
	PerPage      int
}
