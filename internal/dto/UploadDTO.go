package dto

import "encoding/json"

type UploadResultDTO struct {
	URL string `json:"url"`
}

// ErrorDTO is the server error envelope. Detail is usually a string but
// validation failures may carry a list, so it is kept raw.
type ErrorDTO struct {
	Detail json.RawMessage `json:"detail"`
}
