package clients

import "time"

type Client struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Phone     *string   `gorm:"type:text"`
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type CreateClientInput struct {
	Name  string
	Phone *string
	Notes *string
}

// UpdateClientInput carries only the fields present in the PATCH body; nil
// means "leave unchanged".
type UpdateClientInput struct {
	Name  *string
	Phone *string
	Notes *string
}
