package model

import "time"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:text;not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:numeric(12,2);not null"`
	ImageID     string  `gorm:"type:varchar(64)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ImageModel mirrors the 'images' table. The bytes are kept in blob storage.
type ImageModel struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Title       string `gorm:"type:text"`
	Type        string `gorm:"type:varchar(16)"`
	ContentType string `gorm:"type:varchar(128)"`
	Size        int64
	Checksum    string `gorm:"type:char(64)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
