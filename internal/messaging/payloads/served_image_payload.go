package payloads

import "time"

// ServedImagePayload: событие "изображение отдано клиенту", публикуется в RabbitMQ.
type ServedImagePayload struct {
	EventID              string    `json:"event_id"`
	RequestID            string    `json:"request_id,omitempty"`
	PhotoID              string    `json:"photo_id"`
	PhotographerUsername string    `json:"photographer_username,omitempty"`
	Strategy             string    `json:"strategy"`
	Width                int       `json:"width"`
	Orientation          string    `json:"orientation,omitempty"`
	ServedAt             time.Time `json:"served_at"`
}
