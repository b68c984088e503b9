// tribute runs the full birthday tribute page: hero intro, counters, gallery,
// wishes, quotes, fireworks and the finale, with background music.
//
// Photos and music are read from -assets. Missing files fall back to
// placeholders and a silent music button.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/tribute"
	"github.com/phanxgames/tribute/audio"
)

const windowTitle = "Happy Birthday"

func main() {
	var (
		contentPath = flag.String("content", "", "content JSON file (defaults to the built-in page)")
		assetsDir   = flag.String("assets", "assets", "directory holding photos and music")
		width       = flag.Int("width", 1280, "window width")
		height      = flag.Int("height", 800, "window height")
		seed        = flag.Uint64("seed", 0, "random seed for fireworks and confetti (0 picks one)")
		script      = flag.String("script", "", "JSON test script to play")
		shots       = flag.String("screenshots", "screenshots", "directory for script screenshots")
		debug       = flag.Bool("debug", false, "print timing stats and clicks to stderr")
		showFPS     = flag.Bool("fps", false, "show the FPS overlay")
	)
	flag.Parse()

	assetsFS := os.DirFS(*assetsDir)

	content := tribute.DefaultContent()
	if *contentPath != "" {
		c, err := tribute.LoadContent(os.DirFS("."), *contentPath)
		if err != nil {
			log.Fatal(err)
		}
		content = c
	}

	images, err := tribute.Preload(assetsFS, content.MediaPaths())
	if err != nil {
		log.Printf("some images did not load: %v", err)
	}

	assets := tribute.Assets{Images: images}
	if *seed != 0 {
		assets.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}
	if content.Music != "" {
		player, err := audio.Open(assetsFS, content.Music)
		switch {
		case err == nil:
			defer player.Close()
			assets.Music = player
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("no music at %s", content.Music)
		default:
			log.Printf("music disabled: %v", err)
		}
	}

	page := tribute.NewPage(float64(*width), float64(*height), tribute.DefaultTPS)
	page.ScreenshotDir = *shots
	if _, err := tribute.BuildTribute(page, content, assets); err != nil {
		log.Fatal(err)
	}

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := tribute.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		page.SetTestRunner(runner)
		// Stop one frame after the last step so its screenshot gets drawn.
		finished := false
		page.SetUpdateFunc(func() error {
			if finished {
				return ebiten.Termination
			}
			finished = runner.Done()
			return nil
		})
	}

	err = tribute.Run(page, tribute.RunConfig{
		Title:     windowTitle,
		Width:     *width,
		Height:    *height,
		Resizable: true,
		Debug:     *debug,
		ShowFPS:   *showFPS,
	})
	if err != nil {
		log.Fatal(err)
	}
}
