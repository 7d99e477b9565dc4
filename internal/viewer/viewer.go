// Package viewer turns stored panoramas and hotspots into the scene document consumed by
// the Pannellum-based viewer page.
package viewer

import (
	"strconv"

	"panomap/internal/model"
)

const (
	HotSpotTypeScene = "scene"
	HotSpotTypeInfo  = "info"

	sceneType = "equirectangular"
)

// Scene is the configuration of a single panorama in the viewer.
type Scene struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Panorama     string    `json:"panorama"`
	VAOV         float64   `json:"vaov"`
	HAOV         float64   `json:"haov"`
	MinPitch     float64   `json:"minPitch"`
	MaxPitch     float64   `json:"maxPitch"`
	MinYaw       float64   `json:"minYaw"`
	MaxYaw       float64   `json:"maxYaw"`
	MinHFOV      float64   `json:"minHfov"`
	MaxHFOV      float64   `json:"maxHfov"`
	ShowZoomCtrl bool      `json:"showZoomCtrl"`
	HotSpots     []HotSpot `json:"hotSpots"`
}

// HotSpot is one marker of a Scene. Scene links carry the arrival orientation.
type HotSpot struct {
	ID                 int64    `json:"id"`
	Pitch              float64  `json:"pitch"`
	Yaw                float64  `json:"yaw"`
	Type               string   `json:"type"`
	Text               string   `json:"text"`
	Description        string   `json:"description,omitempty"`
	Image              string   `json:"image,omitempty"`
	CSSClass           string   `json:"cssClass,omitempty"`
	SceneID            string   `json:"sceneId,omitempty"`
	TargetPitch        *float64 `json:"targetPitch,omitempty"`
	TargetYaw          *float64 `json:"targetYaw,omitempty"`
	TargetHFOV         float64  `json:"targetHfov,omitempty"`
	TransitionDuration int      `json:"transitionDuration,omitempty"`
}

// SceneID is the identifier the viewer uses to address a panorama.
func SceneID(panoramaID int64) string {
	return "panorama-" + strconv.FormatInt(panoramaID, 10)
}

// BuildScene assembles the viewer scene for p. entries holds the resolved entry hotspots
// keyed by id; a link whose entry hotspot is present arrives at that hotspot's position
// instead of its own target angles.
func BuildScene(p model.Panorama, hotspots []model.HotSpot, entries map[int64]model.HotSpot) Scene {
	s := Scene{
		ID:           SceneID(p.ID),
		Title:        p.Title,
		Type:         sceneType,
		Panorama:     p.ImageURL,
		VAOV:         p.VAOV,
		HAOV:         p.HAOV,
		MinPitch:     p.MinPitch,
		MaxPitch:     p.MaxPitch,
		MinYaw:       p.MinYaw,
		MaxYaw:       p.MaxYaw,
		MinHFOV:      p.MinHFOV,
		MaxHFOV:      p.MaxHFOV,
		ShowZoomCtrl: p.ShowZoomCtrl,
		HotSpots:     make([]HotSpot, 0, len(hotspots)),
	}
	for _, h := range hotspots {
		s.HotSpots = append(s.HotSpots, buildHotSpot(h, entries))
	}
	return s
}

func buildHotSpot(h model.HotSpot, entries map[int64]model.HotSpot) HotSpot {
	out := HotSpot{
		ID:          h.ID,
		Pitch:       h.Pitch,
		Yaw:         h.Yaw,
		Type:        HotSpotTypeInfo,
		Text:        h.Title,
		Description: h.Description,
		Image:       h.ImageURL,
		CSSClass:    h.CSSClass,
	}
	if !h.IsLink() {
		return out
	}

	out.Type = HotSpotTypeScene
	out.SceneID = SceneID(*h.TargetPanoramaID)
	out.TargetHFOV = h.TargetHFOV
	out.TransitionDuration = h.TransitionDuration
	out.TargetPitch = h.TargetPitch
	out.TargetYaw = h.TargetYaw

	if h.EntryHotSpotID != nil {
		if entry, ok := entries[*h.EntryHotSpotID]; ok {
			pitch, yaw := entry.Pitch, entry.Yaw
			out.TargetPitch = &pitch
			out.TargetYaw = &yaw
		}
	}
	return out
}
