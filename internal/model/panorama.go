package model

// Viewer defaults applied to a freshly created panorama.
const (
	DefaultVAOV     = 55.0
	DefaultHAOV     = 360.0
	DefaultMinPitch = -27.0
	DefaultMaxPitch = 27.0
	DefaultMinYaw   = -130.0
	DefaultMaxYaw   = 130.0
	DefaultMinHFOV  = 30.0
	DefaultMaxHFOV  = 30.0
)

// Panorama is a 360° image attached to a monument together with the viewer bounds used
// to display it. Min/max pairs are stored as given; a min above its max is not rejected.
type Panorama struct {
	ID         int64  `json:"id"`
	MonumentID int64  `json:"monument_id" validate:"required"`
	Title      string `json:"title" validate:"required,max=200"`
	// Image is the object storage key of the equirectangular image.
	Image  string `json:"image" validate:"required,max=255"`
	IsMain bool   `json:"is_main"`

	VAOV         float64 `json:"vaov"`
	HAOV         float64 `json:"haov"`
	MinPitch     float64 `json:"min_pitch"`
	MaxPitch     float64 `json:"max_pitch"`
	MinYaw       float64 `json:"min_yaw"`
	MaxYaw       float64 `json:"max_yaw"`
	MinHFOV      float64 `json:"min_hfov"`
	MaxHFOV      float64 `json:"max_hfov"`
	ShowZoomCtrl bool    `json:"show_zoom_ctrl"`

	// ImageURL is derived from Image for presentation and never persisted.
	ImageURL string `json:"image_url,omitempty"`
}

// NewPanorama returns a panorama carrying the default viewer configuration.
func NewPanorama(monumentID int64, title string) Panorama {
	return Panorama{
		MonumentID:   monumentID,
		Title:        title,
		VAOV:         DefaultVAOV,
		HAOV:         DefaultHAOV,
		MinPitch:     DefaultMinPitch,
		MaxPitch:     DefaultMaxPitch,
		MinYaw:       DefaultMinYaw,
		MaxYaw:       DefaultMaxYaw,
		MinHFOV:      DefaultMinHFOV,
		MaxHFOV:      DefaultMaxHFOV,
		ShowZoomCtrl: true,
	}
}

func (p Panorama) String() string {
	return p.Title
}
