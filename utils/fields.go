package utils

// Fields is the fixed enumeration of organizational domains a submission and a
// referee both belong to. Routing only matches referees within the same field.
var Fields = []string{
	"Architecture & Landscape",
	"Technical & Engineering",
	"Planning & Project Management",
	"Project Controls",
	"Surveying & Photogrammetry",
	"Concrete",
	"Artificial Intelligence",
	"ICT",
	"Maintenance & Machinery",
	"Quality Control",
	"HSSE",
	"BIM",
	"Asphalt",
	"Finance & Accounting",
}

// ContentTypes is the fixed enumeration of submission content formats.
var ContentTypes = []string{
	"Creative Idea",
	"Written",
	"Video",
	"Podcast / Audio",
	"Motion Graphic",
	"Infographic",
	"Poster",
	"Other",
}

// IsValidField reports whether the field is one of the enumerated domains.
func IsValidField(field string) bool {
	for _, f := range Fields {
		if f == field {
			return true
		}
	}
	return false
}

// IsValidContentType reports whether the content type is enumerated.
func IsValidContentType(contentType string) bool {
	for _, ct := range ContentTypes {
		if ct == contentType {
			return true
		}
	}
	return false
}
