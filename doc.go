// Package compositor is the tile compositor core of a browser rendering
// pipeline: it receives rasterized page tiles from an upstream rendering
// producer, caches them in a quadtree keyed by position and world zoom,
// composites the cached set into a scene through a hardware-accelerated
// [GPUBackend], and translates input from a [WindowDriver] into both
// scene transforms and requests for missing tiles.
//
// # Quick start
//
// Run drives the whole loop. It must be called from the goroutine that
// owns the WindowDriver, exactly as Ebitengine requires its own run loop
// to stay on the platform's main thread:
//
//	win := compositor.NewEbitenWindowDriver(compositor.Size{W: 800, H: 600})
//	gpu := compositor.NewEbitenGPUBackend()
//	vp := compositor.NewViewport(compositor.Config{}, win, gpu)
//
//	go renderProducer(vp.Inbound())
//	go layoutTask(vp.Inbound())
//
//	vp.Run(nil)
//
// # Concurrency
//
// All compositor state lives in a single [Viewport], owned exclusively by
// the goroutine running Run. Producers communicate only by sending a [Msg]
// on Inbound(); there is no other synchronization anywhere in the package.
package compositor
