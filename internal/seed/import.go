package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"os"
	"path/filepath"
	"time"

	"panomap/internal/model"
	"panomap/internal/service"
)

// Opener returns the content of an image referenced by a manifest and its size, or -1
// when the size is unknown.
type Opener func(path string) (io.ReadCloser, int64, error)

// DirOpener resolves relative manifest image paths against root.
func DirOpener(root string) Opener {
	return func(p string) (io.ReadCloser, int64, error) {
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		f, err := os.Open(p)
		if err != nil {
			return nil, 0, err
		}
		st, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, 0, err
		}
		return f, st.Size(), nil
	}
}

// Summary counts the records created by an import.
type Summary struct {
	Monuments int `json:"monuments"`
	Panoramas int `json:"panoramas"`
	HotSpots  int `json:"hotspots"`
}

type Importer struct {
	svc  service.AuthoringService
	open Opener
	loc  *time.Location
}

func NewImporter(svc service.AuthoringService, open Opener, loc *time.Location) *Importer {
	return &Importer{svc: svc, open: open, loc: loc}
}

// Import creates every record of m. Hotspots are created once all panoramas exist so
// targets can be resolved; entry hotspots are linked in a final pass. Import stops at
// the first error and does not undo earlier records.
func (im *Importer) Import(ctx context.Context, m *Manifest) (Summary, error) {
	start := time.Now()
	var sum Summary

	if err := m.Check(); err != nil {
		return sum, err
	}

	panoramaIDs := map[string]int64{}
	type pending struct {
		panoramaID int64
		entry      HotSpotEntry
	}
	var queue []pending

	for _, me := range m.Monuments {
		mon, err := im.svc.CreateMonument(ctx, model.Monument{
			Name:        me.Name,
			Description: me.Description,
			Latitude:    me.Latitude,
			Longitude:   me.Longitude,
		})
		if err != nil {
			return sum, im.fail(start, sum, fmt.Errorf("monument %q: %w", me.Name, err))
		}
		sum.Monuments++

		for _, pe := range me.Panoramas {
			p, err := im.createPanorama(ctx, mon.ID, pe)
			if err != nil {
				return sum, im.fail(start, sum, fmt.Errorf("panorama %q: %w", pe.Key, err))
			}
			sum.Panoramas++
			panoramaIDs[pe.Key] = p.ID
			for _, he := range pe.HotSpots {
				queue = append(queue, pending{panoramaID: p.ID, entry: he})
			}
		}
	}

	created := map[string]*model.HotSpot{}
	type link struct {
		hotspot *model.HotSpot
		entry   string
	}
	var links []link
	for _, q := range queue {
		h, err := im.createHotSpot(ctx, q.panoramaID, q.entry, panoramaIDs)
		if err != nil {
			return sum, im.fail(start, sum, fmt.Errorf("hotspot %q: %w", q.entry.Title, err))
		}
		sum.HotSpots++
		if q.entry.Key != "" {
			created[q.entry.Key] = h
		}
		if q.entry.Entry != "" {
			links = append(links, link{hotspot: h, entry: q.entry.Entry})
		}
	}

	for _, l := range links {
		entryID := created[l.entry].ID
		l.hotspot.EntryHotSpotID = &entryID
		if _, err := im.svc.SaveHotSpot(ctx, *l.hotspot, nil); err != nil {
			return sum, im.fail(start, sum, fmt.Errorf("hotspot %q entry: %w", l.hotspot.Title, err))
		}
	}

	im.logJSON(map[string]any{
		"component":   "seed",
		"event":       "seed_import_success",
		"status":      "success",
		"monuments":   sum.Monuments,
		"panoramas":   sum.Panoramas,
		"hotspots":    sum.HotSpots,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return sum, nil
}

func (im *Importer) createPanorama(ctx context.Context, monumentID int64, pe PanoramaEntry) (*model.Panorama, error) {
	p := model.NewPanorama(monumentID, pe.Title)
	p.IsMain = pe.IsMain
	setFloat(&p.VAOV, pe.VAOV)
	setFloat(&p.HAOV, pe.HAOV)
	setFloat(&p.MinPitch, pe.MinPitch)
	setFloat(&p.MaxPitch, pe.MaxPitch)
	setFloat(&p.MinYaw, pe.MinYaw)
	setFloat(&p.MaxYaw, pe.MaxYaw)
	setFloat(&p.MinHFOV, pe.MinHFOV)
	setFloat(&p.MaxHFOV, pe.MaxHFOV)
	if pe.ShowZoomCtrl != nil {
		p.ShowZoomCtrl = *pe.ShowZoomCtrl
	}

	upload, closeFn, err := im.upload(pe.Image)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return im.svc.CreatePanorama(ctx, p, *upload)
}

func (im *Importer) createHotSpot(ctx context.Context, panoramaID int64, he HotSpotEntry, panoramaIDs map[string]int64) (*model.HotSpot, error) {
	h := model.NewHotSpot(panoramaID, he.Title, he.Pitch, he.Yaw)
	h.Description = he.Description
	h.TargetPitch = he.TargetPitch
	h.TargetYaw = he.TargetYaw
	if he.Target != "" {
		id := panoramaIDs[he.Target]
		h.TargetPanoramaID = &id
	}
	if he.TransitionDuration != nil {
		h.TransitionDuration = *he.TransitionDuration
	}
	setFloat(&h.TargetHFOV, he.TargetHFOV)
	if he.CSSClass != "" {
		h.CSSClass = he.CSSClass
	}

	if he.Image == "" {
		return im.svc.SaveHotSpot(ctx, h, nil)
	}
	upload, closeFn, err := im.upload(he.Image)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return im.svc.SaveHotSpot(ctx, h, upload)
}

func (im *Importer) upload(p string) (*service.Upload, func(), error) {
	if p == "" {
		return nil, nil, fmt.Errorf("image is required")
	}
	rc, size, err := im.open(p)
	if err != nil {
		return nil, nil, fmt.Errorf("open image %s: %w", p, err)
	}
	ct := mime.TypeByExtension(filepath.Ext(p))
	return &service.Upload{
		Reader:      rc,
		Filename:    filepath.Base(p),
		ContentType: ct,
		Size:        size,
	}, func() { _ = rc.Close() }, nil
}

func (im *Importer) fail(start time.Time, sum Summary, err error) error {
	im.logJSON(map[string]any{
		"component":     "seed",
		"event":         "seed_import_failed",
		"status":        "error",
		"error_message": err.Error(),
		"monuments":     sum.Monuments,
		"panoramas":     sum.Panoramas,
		"hotspots":      sum.HotSpots,
		"duration_ms":   time.Since(start).Milliseconds(),
	})
	return err
}

func (im *Importer) logJSON(data map[string]any) {
	loc := im.loc
	if loc == nil {
		loc = time.UTC
	}
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if data["status"] == "error" {
		data["level"] = "error"
	} else {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal seed log: %v", err)
		return
	}
	log.Println(string(b))
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
