package models

// Setting is one entry of the local durable key/value store.
type Setting struct {
	BaseModel
	Key   string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Value string `gorm:"type:text"`
}
