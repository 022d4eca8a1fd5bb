package entity

import "time"

// Product is a read-mostly catalog row.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageID     string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Image is the metadata of an uploaded file; the bytes live in blob storage.
type Image struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"` // original filename
	Type        string    `json:"type"`  // file extension
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	Checksum    string    `json:"checksum"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StorageKey is the blob key holding the image bytes.
func (i *Image) StorageKey() string {
	if i.Type == "" {
		return i.ID
	}

	return i.ID + "." + i.Type
}
