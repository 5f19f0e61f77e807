package models

type Box struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PhotoURL    string `json:"photo_url"`
	QRCode      string `json:"qr_code,omitempty"`
	OwnerID     uint   `json:"owner_id,omitempty"`
	ItemsCount  int    `json:"items_count,omitempty"`
	Shared      bool   `json:"is_shared"`
	Items       []Item `json:"items,omitempty"`
}

// ItemCount prefers the server supplied counter and falls back to the
// embedded item list.
func (b Box) ItemCount() int {
	if b.ItemsCount > 0 {
		return b.ItemsCount
	}
	return len(b.Items)
}
