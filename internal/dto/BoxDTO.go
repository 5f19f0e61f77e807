package dto

// BoxCreateDTO always serializes every field so omitted form values reach
// the server as empty strings.
type BoxCreateDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PhotoURL    string `json:"photo_url"`
}

// BoxUpdateDTO only carries the fields being changed.
type BoxUpdateDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}

type ShareDTO struct {
	UserEmail string `json:"user_email"`
}

type MessageDTO struct {
	Message string `json:"message"`
}
