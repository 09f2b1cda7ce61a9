package models

import "time"

type SocialMedia struct {
	Facebook  string `gorm:"size:255" json:"facebook"`
	Instagram string `gorm:"size:255" json:"instagram"`
	Twitter   string `gorm:"size:255" json:"twitter"`
	Linkedin  string `gorm:"size:255" json:"linkedin"`
}

// SiteSettings is the company profile shown on the public site. At
// most one row exists; it is created with defaults on first read.
type SiteSettings struct {
	ID           uint        `gorm:"primaryKey" json:"-"`
	CompanyName  string      `gorm:"size:255" json:"companyName"`
	Phone        string      `gorm:"size:64" json:"phone"`
	Email        string      `gorm:"size:255" json:"email"`
	Address      string      `gorm:"size:512" json:"address"`
	WorkingHours string      `gorm:"size:255" json:"workingHours"`
	Description  string      `gorm:"type:text" json:"description"`
	SocialMedia  SocialMedia `gorm:"embedded;embeddedPrefix:social_" json:"socialMedia"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (SiteSettings) TableName() string { return "site_settings" }
