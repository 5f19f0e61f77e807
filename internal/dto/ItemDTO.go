package dto

type ItemCreateDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PhotoURL    string `json:"photo_url"`
	BoxID       uint   `json:"box_id"`
}

type ItemUpdateDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}
