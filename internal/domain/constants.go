package domain

const RoleAdmin = "admin"

const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusCompleted = "completed"
)

const (
	ServiceHome      = "ev"
	ServiceWorkplace = "isyeri"
	ServiceOutdoor   = "cevre"
	ServiceGeneral   = "genel"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

const (
	MediaStatusActive   = "active"
	MediaStatusInactive = "inactive"
)

// Services lists the selectable service areas on the contact form.
// Anything else is normalized to ServiceGeneral.
var Services = []string{ServiceHome, ServiceWorkplace, ServiceOutdoor, ServiceGeneral}

func ValidService(s string) bool {
	for _, v := range Services {
		if v == s {
			return true
		}
	}
	return false
}

// AllowedUploadExts is the extension allow-list for gallery uploads.
var AllowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
}
