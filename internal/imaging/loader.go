package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/borfudin/visionnet/internal/grid"
)

// Open decodes the image at path, honoring EXIF orientation.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imaging: failed to open %s: %w", path, err)
	}
	return img, nil
}

// OpenScaled decodes the image at path and scales it down to fit within
// maxDim x maxDim, preserving aspect ratio. Images already within the
// bound are returned at their original size.
func OpenScaled(path string, maxDim int) (image.Image, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("imaging: invalid max dimension %d", maxDim)
	}
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img, nil
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos), nil
}

// GridCache caches luminance grids decoded from image files, keyed by
// path, so repeated queries against the same file skip the decode.
//
// The cache itself is safe for concurrent use; the cached grids are not.
// Callers that mutate a returned grid should Evict the path first.
type GridCache struct {
	mu    sync.RWMutex
	grids map[string]*grid.Grid
}

// NewGridCache creates an empty cache.
func NewGridCache() *GridCache {
	return &GridCache{
		grids: make(map[string]*grid.Grid),
	}
}

// Load returns the luminance grid for the image at path, decoding and
// converting it on first use.
func (c *GridCache) Load(path string) (*grid.Grid, error) {
	c.mu.RLock()
	g, ok := c.grids[path]
	c.mu.RUnlock()
	if ok {
		return g, nil
	}

	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	g, err = FromImageGray(img)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have loaded it while we decoded.
	if cached, ok := c.grids[path]; ok {
		return cached, nil
	}
	c.grids[path] = g
	return g, nil
}

// Evict removes one path from the cache.
func (c *GridCache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.grids, path)
}

// Clear removes all cached grids.
func (c *GridCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grids = make(map[string]*grid.Grid)
}

// Size returns the number of cached grids.
func (c *GridCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.grids)
}
