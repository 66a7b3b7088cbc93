package domain

// Photo хранит фото Unsplash в том объёме, который нужен для ответа
type Photo struct {
	UnsplashID       string
	RegularURL       string
	FullURL          string
	RawURL           string
	AltDescription   string
	AuthorName       string
	AuthorUsername   string
	AuthorProfileURL string
}

// PreferredURL возвращает первый непустой URL в порядке regular, full, raw
func (p *Photo) PreferredURL() string {
	for _, u := range []string{p.RegularURL, p.FullURL, p.RawURL} {
		if u != "" {
			return u
		}
	}
	return ""
}

// RandomPhotoQuery задаёт параметры выборки одного случайного фото.
// Задаётся ровно одно из Username/CollectionID.
type RandomPhotoQuery struct {
	Username     string
	CollectionID string
	Orientation  Orientation
}
