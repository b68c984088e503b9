package tribute

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget draws FPS, TPS and the firework population in the top-left
// corner. The text is refreshed every ~0.5 seconds.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSWidget() *fpsWidget {
	// 120x64 is enough for four short lines of debug print.
	return &fpsWidget{img: ebiten.NewImage(120, 64), lastUpdate: 1}
}

func (w *fpsWidget) update(dt float64, fw *Fireworks) {
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})

	var rockets, sparks int
	if fw != nil {
		rockets, sparks = len(fw.Rockets()), len(fw.Sparks())
	}
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nRockets: %d\nSparks: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), rockets, sparks))
}

func (w *fpsWidget) draw(dst *ebiten.Image) {
	dst.DrawImage(w.img, nil)
}
