package unsplash

// Отдельная структура для URL-ов
type UnsplashPhotoURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// Ссылки профиля пользователя
type UnsplashUserLinks struct {
	HTML string `json:"html"`
}

// Отдельная структура для пользователя
type UnsplashUser struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Name     string            `json:"name"`
	Links    UnsplashUserLinks `json:"links"`
}

// UnsplashPhotoResponse: фото в ответах /photos/random и /users/:username/photos
type UnsplashPhotoResponse struct {
	ID             string  `json:"id"`
	Description    *string `json:"description"`
	AltDescription *string `json:"alt_description"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`

	URLs UnsplashPhotoURLs `json:"urls"`
	User UnsplashUser      `json:"user"`
}
