package engine

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/fooddonglanh/snake-game/core"
)

// AssetState tracks one asset's load lifecycle
type AssetState uint8

const (
	AssetPending AssetState = iota
	AssetLoaded
	AssetFailed
)

// String returns the state name
func (s AssetState) String() string {
	switch s {
	case AssetPending:
		return "pending"
	case AssetLoaded:
		return "loaded"
	case AssetFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AssetID names the sprites the scene uses
type AssetID uint8

const (
	AssetHeadSprite AssetID = iota
	AssetFoodSprite
	assetCount
)

// Asset is one sprite with its own load state
// Image is non-nil only when State is AssetLoaded
type Asset struct {
	ID    AssetID
	Path  string
	State AssetState
	Image image.Image
	Err   error
}

// Ready reports whether the sprite can be drawn
func (a *Asset) Ready() bool {
	return a != nil && a.State == AssetLoaded && a.Image != nil
}

// AssetLoader decodes an image resource
type AssetLoader interface {
	Load(path string) (image.Image, error)
}

// FSAssetLoader decodes images from a file system
type FSAssetLoader struct {
	FS fs.FS
}

// Load opens and decodes path
func (l FSAssetLoader) Load(path string) (image.Image, error) {
	f, err := l.FS.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open asset %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", path, err)
	}
	return img, nil
}

// loadAssets decodes every asset off the loop goroutine and posts each result back
func (e *Engine) loadAssets() {
	for _, a := range e.assets {
		a.State = AssetPending
		if e.loader == nil || a.Path == "" {
			e.finishAsset(a.ID, nil, ErrNoAssetLoader)
			continue
		}

		id, path, loader := a.ID, a.Path, e.loader
		core.Go(func() {
			img, err := loader.Load(path)
			e.loop.Post(func() {
				e.finishAsset(id, img, err)
			})
		})
	}
}

// finishAsset records a load result, runs on the loop goroutine
func (e *Engine) finishAsset(id AssetID, img image.Image, err error) {
	a := e.assets[id]
	if err != nil || img == nil {
		if err == nil {
			err = ErrEmptyAsset
		}
		a.State = AssetFailed
		a.Err = err
		log.Printf("asset %s unavailable, using vector fallback: %v", a.Path, err)
		return
	}
	a.Image = img
	a.State = AssetLoaded
	a.Err = nil
}
