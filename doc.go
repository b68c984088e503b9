// Package tribute renders a scroll-driven birthday tribute page on
// [Ebitengine]: a hero intro, animated counters, a photo gallery, wish
// frames, a quote carousel, an interactive fireworks canvas and a confetti
// finale.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	page := tribute.NewPage(1280, 800, tribute.DefaultTPS)
//	if _, err := tribute.BuildTribute(page, tribute.DefaultContent(), tribute.Assets{}); err != nil {
//		log.Fatal(err)
//	}
//	tribute.Run(page, tribute.RunConfig{Title: "Happy Birthday"})
//
// For full control, implement [ebiten.Game] yourself and call [Page.Update]
// and [Page.Draw] directly.
//
// # Page
//
// Every visual piece is an [Element]: a box with an optional background,
// image and text. Root elements are laid out in page space and scroll with
// the page; elements marked Fixed stay put on screen. Children inherit their
// parent's position, animated offsets and alpha.
//
// Scrolling follows a spring ([Scroller]). [Page.OnScroll] registers a
// [ScrollTrigger] that fires when an element crosses a line across the
// viewport, and [Parallax] scrubs an offset with scroll progress.
//
// # Time
//
// Nothing in the package reads the wall clock. [Timers] is a millisecond
// queue of one-shot and repeating callbacks advanced by [Page.Update], and
// every animation ([TweenGroup], [Timeline], [Pulse]) is stepped by the same
// tick. Runs are reproducible given the same inputs and random source.
//
// # Fireworks
//
// [Fireworks] simulates rockets that climb toward a target and burst into
// sparks. Each [Fireworks.Frame] fades the previous frame out with an erase
// fill and then draws additively on a [Surface], so trails build up across
// frames. [Canvas] is the Ebitengine surface; [Launcher] drives random
// launches for a fixed duration.
//
// ECS integration lives in the tribute/ecs module, which forwards
// interaction events to a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package tribute
