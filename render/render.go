// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package render owns the outer loop: per-pixel stratified sampling,
// the iterative bounce loop each sample traces through the scene's
// BVH, gamma-correct tonemapping, and the worker pool that spreads
// rows of pixels across goroutines.
package render

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"pathtracer/math/lin"
	"pathtracer/prim"
	"pathtracer/scene"
)

// ErrFramebufferSize is returned when the framebuffer passed to
// Render does not have exactly width*height*3 bytes.
var ErrFramebufferSize = errors.New("render: framebuffer length does not match width*height*3")

// Options configures sampling density, bounce depth, and worker count.
type Options struct {
	PixelSamples uint16 // samples drawn per pixel
	RayBounces   uint8  // maximum scatter events per sample
	Workers      int    // 0 selects runtime.NumCPU()
	Seed         int64  // base PRNG seed; row y is seeded Seed+y
}

// Renderer traces one scene into a framebuffer at a fixed resolution.
type Renderer struct {
	width, height int
	opts          Options
	scene         *scene.Scene
}

// New returns a Renderer for the given scene at width x height. It
// rejects a non-positive width or height and zero PixelSamples or
// RayBounces; Render never re-derives the dimensions from the
// framebuffer length.
func New(width, height int, opts Options, sc *scene.Scene) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: new: dimensions must be positive, got %dx%d", width, height)
	}
	if opts.PixelSamples == 0 {
		return nil, fmt.Errorf("render: new: pixel_samples must be > 0")
	}
	if opts.RayBounces == 0 {
		return nil, fmt.Errorf("render: new: ray_bounces must be > 0")
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{width: width, height: height, opts: opts, scene: sc}, nil
}

// Render fills fb with the rendered image and returns the wall-clock
// time spent. fb must be exactly width*height*3 bytes, row-major, top
// row first, three bytes per pixel (R, G, B); a wrong length is
// rejected before any worker is dispatched. The worker pool is
// acquired at entry and released on every exit path, including a
// cancelled context.
func (r *Renderer) Render(ctx context.Context, fb []byte) (time.Duration, error) {
	if len(fb) != 3*r.width*r.height {
		return 0, ErrFramebufferSize
	}

	start := time.Now()

	rows := make(chan int, r.height)
	for y := 0; y < r.height; y++ {
		rows <- y
	}
	close(rows)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < r.opts.Workers; w++ {
		g.Go(func() error {
			for y := range rows {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				r.renderRow(y, fb)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return time.Since(start), err
	}
	return time.Since(start), nil
}

// renderRow fills one row of the framebuffer. The PRNG is seeded from
// the row index rather than handed down from the dispatching worker,
// so which goroutine happens to pull row y off the work channel never
// changes the random sequence applied to it: the framebuffer is
// reproducible for a fixed seed and row count regardless of how the
// pool schedules rows across workers. Rows are disjoint byte spans so
// no lock is needed.
func (r *Renderer) renderRow(y int, fb []byte) {
	rng := rand.New(rand.NewSource(r.opts.Seed + int64(y)))
	for x := 0; x < r.width; x++ {
		c := r.pixelRadiance(x, y, rng)
		off := 3 * (y*r.width + x)
		fb[off+0] = tonemap(c.X)
		fb[off+1] = tonemap(c.Y)
		fb[off+2] = tonemap(c.Z)
	}
}

// tonemap applies the square-root (gamma ~2.0) mapping from linear
// radiance to an 8-bit channel.
func tonemap(channel float64) byte {
	return byte(lin.Clamp(math.Sqrt(channel), 0, 1) * 255)
}

// pixelRadiance averages pixel_samples independently traced camera
// rays through pixel (x, y).
func (r *Renderer) pixelRadiance(x, y int, rng *rand.Rand) lin.Vec3 {
	accum := lin.Zero
	samples := int(r.opts.PixelSamples)
	for i := 0; i < samples; i++ {
		ray := r.scene.Camera.RayToPixel(x, y, rng)
		accum = accum.Add(r.trace(ray, rng))
	}
	return accum.Div(float64(samples))
}

// trace runs the iterative bounce loop bounded by ray_bounces: a
// recursive formulation would grow the stack proportionally to the
// bounce count and defeats running many rays in parallel on bounded
// goroutine stacks.
func (r *Renderer) trace(ray lin.Ray, rng *rand.Rand) lin.Vec3 {
	throughput := lin.White
	for depth := 0; depth < int(r.opts.RayBounces); depth++ {
		rec := prim.NewHitRecord()
		if !r.scene.BVH.Hit(ray, &rec) {
			return throughput.MulV(r.scene.SkyColor(ray.Dir))
		}

		p := ray.At(rec.TMax)
		n := rec.Prim.NormalAt(p, ray.Time)
		u, v := rec.Prim.UVAt(p, ray.Time)

		ray.Origin = p
		absorbed, attenuation := rec.Prim.Material().Scatter(&ray, n, u, v, p, rng)
		if absorbed {
			return lin.Zero
		}
		throughput = throughput.MulV(attenuation)
	}
	return lin.Zero
}
