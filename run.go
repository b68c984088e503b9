package tribute

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window and game loop started by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable lets the window be resized; the page keeps its logical size
	// and Ebitengine scales it to fit.
	Resizable bool
	Debug     bool
	ShowFPS   bool
}

// SetUpdateFunc sets a callback run after every Page.Update inside Run.
// A non-nil error ends the game loop.
func (p *Page) SetUpdateFunc(fn func() error) {
	p.updateFunc = fn
}

// gameShell adapts a Page to ebiten.Game.
type gameShell struct {
	page   *Page
	width  int
	height int
}

func (g *gameShell) Update() error {
	g.page.Update()
	if g.page.updateFunc != nil {
		return g.page.updateFunc()
	}
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	g.page.Draw(screen)
}

func (g *gameShell) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives p until the window closes or the update
// callback returns an error. A zero size uses the page's viewport size.
func Run(p *Page, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = int(p.width), int(p.height)
	}
	if float64(w) != p.width || float64(h) != p.height {
		p.Resize(float64(w), float64(h))
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(p.tps)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	p.SetDebugMode(cfg.Debug)
	p.SetShowFPS(cfg.ShowFPS)

	return ebiten.RunGame(&gameShell{page: p, width: w, height: h})
}
