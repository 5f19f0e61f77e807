package models

type Item struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PhotoURL    string `json:"photo_url"`
	BoxID       uint   `json:"box_id"`
}
