package model

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestHotSpot_ApplyTargetDefaults(t *testing.T) {
	tests := []struct {
		name      string
		hotspot   HotSpot
		wantPitch *float64
		wantYaw   *float64
	}{
		{
			name: "no target keeps angles unset",
			hotspot: HotSpot{
				Pitch: 5, Yaw: 40,
			},
		},
		{
			name: "target without angles copies position",
			hotspot: HotSpot{
				Pitch: 5, Yaw: 40,
				TargetPanoramaID: ptr(int64(2)),
			},
			wantPitch: ptr(5.0),
			wantYaw:   ptr(40.0),
		},
		{
			name: "explicit angles are kept",
			hotspot: HotSpot{
				Pitch: 5, Yaw: 40,
				TargetPanoramaID: ptr(int64(2)),
				TargetPitch:      ptr(10.0),
				TargetYaw:        ptr(-15.0),
			},
			wantPitch: ptr(10.0),
			wantYaw:   ptr(-15.0),
		},
		{
			name: "zero angles count as unset",
			hotspot: HotSpot{
				Pitch: 5, Yaw: 40,
				TargetPanoramaID: ptr(int64(2)),
				TargetPitch:      ptr(0.0),
				TargetYaw:        ptr(0.0),
			},
			wantPitch: ptr(5.0),
			wantYaw:   ptr(40.0),
		},
		{
			name: "only missing yaw is filled",
			hotspot: HotSpot{
				Pitch: -3, Yaw: 170,
				TargetPanoramaID: ptr(int64(7)),
				TargetPitch:      ptr(12.5),
			},
			wantPitch: ptr(12.5),
			wantYaw:   ptr(170.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.hotspot
			h.ApplyTargetDefaults()
			assert.Equal(t, tt.wantPitch, h.TargetPitch)
			assert.Equal(t, tt.wantYaw, h.TargetYaw)
		})
	}
}

func TestHotSpot_ApplyTargetDefaultsDoesNotAlias(t *testing.T) {
	h := HotSpot{Pitch: 5, Yaw: 40, TargetPanoramaID: ptr(int64(2))}
	h.ApplyTargetDefaults()
	h.Pitch = 80

	require.NotNil(t, h.TargetPitch)
	assert.Equal(t, 5.0, *h.TargetPitch)
}

func TestNewPanoramaDefaults(t *testing.T) {
	p := NewPanorama(3, "Main hall")

	assert.Equal(t, int64(3), p.MonumentID)
	assert.Equal(t, 55.0, p.VAOV)
	assert.Equal(t, 360.0, p.HAOV)
	assert.Equal(t, -27.0, p.MinPitch)
	assert.Equal(t, 27.0, p.MaxPitch)
	assert.Equal(t, -130.0, p.MinYaw)
	assert.Equal(t, 130.0, p.MaxYaw)
	assert.Equal(t, 30.0, p.MinHFOV)
	assert.Equal(t, 30.0, p.MaxHFOV)
	assert.True(t, p.ShowZoomCtrl)
	assert.False(t, p.IsMain)
	assert.Equal(t, "Main hall", p.String())
}

func TestNewHotSpotDefaults(t *testing.T) {
	h := NewHotSpot(1, "Door", 1, 2)

	assert.Equal(t, 2000, h.TransitionDuration)
	assert.Equal(t, 50.0, h.TargetHFOV)
	assert.Equal(t, "custom-hotspot", h.CSSClass)
	assert.False(t, h.IsLink())
	assert.Equal(t, "Door (on Nave)", h.Label("Nave"))
}

func TestMonument_HasLocation(t *testing.T) {
	assert.False(t, Monument{}.HasLocation())
	assert.False(t, Monument{Latitude: ptr(47.7)}.HasLocation())
	assert.True(t, Monument{Latitude: ptr(47.7), Longitude: ptr(40.2)}.HasLocation())
}

func TestValidate(t *testing.T) {
	valid := NewHotSpot(1, "Door", 10, 20)
	valid.Description = "Leads to the nave"

	tests := []struct {
		name      string
		value     any
		wantField string
	}{
		{name: "valid hotspot", value: valid},
		{
			name:      "pitch out of range",
			value:     func() HotSpot { h := valid; h.Pitch = 91; return h }(),
			wantField: "Pitch",
		},
		{
			name:      "yaw out of range",
			value:     func() HotSpot { h := valid; h.Yaw = -180.5; return h }(),
			wantField: "Yaw",
		},
		{
			name:      "target pitch out of range",
			value:     func() HotSpot { h := valid; h.TargetPitch = ptr(-95.0); return h }(),
			wantField: "TargetPitch",
		},
		{
			name:      "transition too short",
			value:     func() HotSpot { h := valid; h.TransitionDuration = 499; return h }(),
			wantField: "TransitionDuration",
		},
		{
			name:      "target hfov too wide",
			value:     func() HotSpot { h := valid; h.TargetHFOV = 121; return h }(),
			wantField: "TargetHFOV",
		},
		{
			name:      "css class too long",
			value:     func() HotSpot { h := valid; h.CSSClass = string(make([]byte, 51)); return h }(),
			wantField: "CSSClass",
		},
		{
			name:      "monument name required",
			value:     Monument{Description: "x"},
			wantField: "Name",
		},
		{
			name: "monument coordinates are not range checked",
			value: Monument{
				Name: "Mine", Description: "x",
				Latitude: ptr(123.0), Longitude: ptr(-200.0),
			},
		},
		{
			name:      "panorama image required",
			value:     Panorama{MonumentID: 1, Title: "Hall"},
			wantField: "Image",
		},
		{
			name: "panorama min above max is accepted",
			value: func() Panorama {
				p := NewPanorama(1, "Hall")
				p.Image = "panoramas/a.jpg"
				p.MinPitch, p.MaxPitch = 40, -40
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.value)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}
