package game

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type atlasState uint8

const (
	atlasLoading atlasState = iota
	atlasReady
	atlasMissing
)

func (s atlasState) String() string {
	switch s {
	case atlasReady:
		return "ready"
	case atlasMissing:
		return "missing"
	default:
		return "loading"
	}
}

type decodeResult struct {
	img image.Image
	err error
}

// atlasLoader decodes the sprite sheet on a goroutine. The game loop polls it each tick
// and uploads the image once the decode is done.
type atlasLoader struct {
	path   string
	result chan decodeResult
	state  atlasState
	sheet  *ebiten.Image
}

func loadAtlas(path string) *atlasLoader {
	l := &atlasLoader{path: path, result: make(chan decodeResult, 1)}
	go func() {
		img, err := decodeImage(path)
		l.result <- decodeResult{img: img, err: err}
	}()
	return l
}

// poll returns the sheet, or nil while it is loading or after it failed to load.
func (l *atlasLoader) poll() *ebiten.Image {
	if l.state != atlasLoading {
		return l.sheet
	}
	select {
	case r := <-l.result:
		if r.err != nil {
			l.state = atlasMissing
			log.Warn("sprite sheet unavailable, tiles will not be drawn", "path", l.path, "err", r.err)
			return nil
		}
		l.sheet = ebiten.NewImageFromImage(r.img)
		l.state = atlasReady
		b := r.img.Bounds()
		log.Info("sprite sheet loaded", "path", l.path, "w", b.Dx(), "h", b.Dy())
	default:
	}
	return l.sheet
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
