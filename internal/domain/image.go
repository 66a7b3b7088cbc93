package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Source: значение поля source в ответе
const Source = "unsplash"

// Orientation: фильтр ориентации, который понимает Unsplash
type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
	Squarish  Orientation = "squarish"
)

// ParseOrientation возвращает false для пустых и неизвестных значений
func ParseOrientation(s string) (Orientation, bool) {
	switch o := Orientation(strings.ToLower(strings.TrimSpace(s))); o {
	case Landscape, Portrait, Squarish:
		return o, true
	default:
		return "", false
	}
}

// ImageRequest содержит нормализованные параметры входящего запроса
type ImageRequest struct {
	Orientation Orientation
	Width       int
	RequestID   string
}

// ResolveWidth разбирает параметр w. Нечисловое, бесконечное или <= 0 значение
// заменяется на fallback, остальное округляется до ближайшего целого (половина вверх).
// Значения больше MaxInt32 ограничиваются MaxInt32.
func ResolveWidth(raw string, fallback int) int {
	v, ok := parseNumber(raw)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}

	rounded := math.Floor(v + 0.5)
	if rounded > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(rounded)
}

// parseNumber понимает десятичную запись с экспонентой и целые с префиксами
// 0x, 0o, 0b (без знака). Шестнадцатеричные дроби вида 0x1p4 не принимаются.
func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if len(raw) > 2 && raw[0] == '0' {
		base := 0
		switch raw[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(raw[2:], base, 64)
			if errors.Is(err, strconv.ErrRange) {
				return math.MaxFloat64, true
			}
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AppendSizing добавляет imgix-параметры w и fit=crop к URL изображения
func AppendSizing(imageURL string, width int) string {
	params := "w=" + strconv.Itoa(width) + "&fit=crop"
	if strings.Contains(imageURL, "?") {
		return imageURL + "&" + params
	}
	return imageURL + "?" + params
}

// Photographer описывает автора фото
type Photographer struct {
	Name       *string `json:"name"`
	Username   *string `json:"username"`
	ProfileURL *string `json:"profile_url"`
}

// ImagePayload — единый формат ответа /api/random
type ImagePayload struct {
	URL            string       `json:"url"`
	ID             *string      `json:"id"`
	Raw            *string      `json:"raw"`
	AltDescription *string      `json:"alt_description"`
	Photographer   Photographer `json:"photographer"`
	Source         string       `json:"source"`
	CollectionID   string       `json:"collection_id,omitempty"`
}

// OptionalString превращает пустую строку в nil (в JSON null)
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
