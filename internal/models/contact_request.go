package models

import "time"

// ContactRequest is an inbound contact-form submission. Created by the
// public form, managed (status/notes) from the admin panel.
type ContactRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:64;not null" json:"phone"`
	Service   string    `gorm:"size:20;not null;default:'genel';index" json:"service"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;default:'new';index" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ContactRequest) TableName() string { return "contact_requests" }
