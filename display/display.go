// Package display opens a desktop window showing a still image. Show blocks
// until the window is closed or Escape/Q is pressed.
package display

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Show displays img in a window titled title.
func Show(img image.Image, title string) error {
	if img == nil {
		return errors.New("display: nil image")
	}

	v := &viewer{src: img}
	b := img.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}

type viewer struct {
	src image.Image
	img *ebiten.Image
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.src)
	}
	screen.DrawImage(v.img, nil)
}

// Layout keeps the logical screen at the image size; ebiten scales it to
// the window.
func (v *viewer) Layout(_, _ int) (int, int) {
	b := v.src.Bounds()

	return b.Dx(), b.Dy()
}
