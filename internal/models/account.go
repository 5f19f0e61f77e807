package models

// Account, StoredBox and StoredItem are the records of the in-process demo
// backend. The client never sees them directly; mapper turns them into the
// wire shapes above.
type Account struct {
	BaseModel
	Username     string      `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string      `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	Boxes        []StoredBox `gorm:"foreignKey:OwnerID"`
}

func (Account) TableName() string { return "users" }

type StoredBox struct {
	BaseModel
	Name        string       `gorm:"type:varchar(100);not null"`
	Description string       `gorm:"type:text"`
	Location    string       `gorm:"type:varchar(200)"`
	PhotoURL    string       `gorm:"type:text"`
	QRCode      string       `gorm:"type:varchar(100);uniqueIndex"`
	OwnerID     uint         `gorm:"index"`
	Items       []StoredItem `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE"`
	SharedWith  []Account    `gorm:"many2many:box_shares;joinForeignKey:BoxID;joinReferences:UserID"`
}

func (StoredBox) TableName() string { return "boxes" }

type StoredItem struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"type:varchar(50);not null"`
	PhotoURL    string `gorm:"type:text"`
	BoxID       uint   `gorm:"index"`
}

func (StoredItem) TableName() string { return "items" }
