package model

import "fmt"

const (
	DefaultTransitionDuration = 2000
	DefaultTargetHFOV         = 50.0
	DefaultCSSClass           = "custom-hotspot"
)

// HotSpot is a clickable marker placed on a panorama. When TargetPanoramaID is set the
// marker navigates to that panorama, arriving at TargetPitch/TargetYaw, or at the
// position of EntryHotSpotID when one is given.
type HotSpot struct {
	ID          int64   `json:"id"`
	PanoramaID  int64   `json:"panorama_id" validate:"required"`
	Pitch       float64 `json:"pitch" validate:"gte=-90,lte=90"`
	Yaw         float64 `json:"yaw" validate:"gte=-180,lte=180"`
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	Image       *string `json:"image,omitempty" validate:"omitempty,max=255"`

	TargetPanoramaID   *int64   `json:"target_panorama_id,omitempty"`
	TargetPitch        *float64 `json:"target_pitch,omitempty" validate:"omitempty,gte=-90,lte=90"`
	TargetYaw          *float64 `json:"target_yaw,omitempty" validate:"omitempty,gte=-180,lte=180"`
	TransitionDuration int      `json:"transition_duration" validate:"gte=500,lte=5000"`
	TargetHFOV         float64  `json:"target_hfov" validate:"gte=10,lte=120"`
	CSSClass           string   `json:"css_class" validate:"max=50"`
	EntryHotSpotID     *int64   `json:"entry_hotspot_id,omitempty"`

	// ImageURL is derived from Image for presentation and never persisted.
	ImageURL string `json:"image_url,omitempty"`
}

// NewHotSpot returns a hotspot on the given panorama with default transition settings.
func NewHotSpot(panoramaID int64, title string, pitch, yaw float64) HotSpot {
	return HotSpot{
		PanoramaID:         panoramaID,
		Title:              title,
		Pitch:              pitch,
		Yaw:                yaw,
		TransitionDuration: DefaultTransitionDuration,
		TargetHFOV:         DefaultTargetHFOV,
		CSSClass:           DefaultCSSClass,
	}
}

// ApplyTargetDefaults copies Pitch/Yaw into TargetPitch/TargetYaw when the hotspot links
// to another panorama and the target angle is unset or zero. It runs on every save, so an
// explicit target angle of 0 is replaced as well.
func (h *HotSpot) ApplyTargetDefaults() {
	if h.TargetPanoramaID == nil {
		return
	}
	if h.TargetPitch == nil || *h.TargetPitch == 0 {
		pitch := h.Pitch
		h.TargetPitch = &pitch
	}
	if h.TargetYaw == nil || *h.TargetYaw == 0 {
		yaw := h.Yaw
		h.TargetYaw = &yaw
	}
}

// IsLink reports whether the hotspot navigates to another panorama.
func (h HotSpot) IsLink() bool {
	return h.TargetPanoramaID != nil
}

// Label renders the hotspot together with the title of the panorama it sits on.
func (h HotSpot) Label(panoramaTitle string) string {
	return fmt.Sprintf("%s (on %s)", h.Title, panoramaTitle)
}

func (h HotSpot) String() string {
	return h.Title
}
