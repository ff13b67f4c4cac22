package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/geometry"
	"github.com/kestrelray/sppm-raytracer/pkg/lights"
	"github.com/kestrelray/sppm-raytracer/pkg/photonmap"
)

// Config holds the SPPM driver's tunable parameters (spec 4.7), with the
// spec's defaults mirrored in DefaultConfig.
type Config struct {
	NPhotons        int
	Rounds          int
	SamplesPerPixel int
	Threads         int
	Alpha           float64
	TMin            float64
	InitialRadius   float64
	DepthCap        int
	RRDepthPhoton   int
	RREyeDepth      int
}

// DefaultConfig returns spec 4.7's default tunables.
func DefaultConfig() Config {
	return Config{
		NPhotons:        100000,
		Rounds:          10,
		SamplesPerPixel: 4,
		Threads:         runtime.NumCPU(),
		Alpha:           0.7,
		TMin:            0.015,
		InitialRadius:   0.5,
		DepthCap:        100,
		RRDepthPhoton:   10,
		RREyeDepth:      20,
	}
}

// Scene bundles the immutable, shared-across-workers render inputs (spec 3
// "Ownership": materials/geometry form an immutable DAG; lights and the
// camera are likewise shared immutable; spec 5 "Shared data").
type Scene struct {
	Root       geometry.Primitive
	Lights     []lights.Light
	Camera     Camera
	Background core.Vec3 // shown where an eye ray exits the scene (SPEC_FULL 4.15); defaults to black
}

// SPPM drives the per-round photon pass / tree build / eye pass / shrinkage
// cycle described in spec 4.7.
type SPPM struct {
	scene         Scene
	config        Config
	logger        core.Logger
	width, height int
	hitPoints     [][]HitPoint  // [y][x]; row (x,y) is owned exclusively by whichever worker processes pixel x's column band during a round (spec 5)
	background    [][]core.Vec3 // [y][x]; accumulated background contribution, summed across rounds
	rng           *rand.Rand    // seeds per-worker RNGs; never consulted for sampling itself (spec 9)
}

// NewSPPM creates a driver for the given scene and image dimensions. seed
// seeds the master RNG that derives each worker's independent thread-local
// RNG (spec 9: "global RNG state shared across workers is prohibited").
func NewSPPM(scene Scene, config Config, width, height int, logger core.Logger, seed int64) *SPPM {
	hitPoints := make([][]HitPoint, height)
	for y := range hitPoints {
		row := make([]HitPoint, width)
		for x := range row {
			row[x] = NewHitPoint(config.InitialRadius)
		}
		hitPoints[y] = row
	}
	background := make([][]core.Vec3, height)
	for y := range background {
		background[y] = make([]core.Vec3, width)
	}
	return &SPPM{
		scene:      scene,
		config:     config,
		logger:     logger,
		width:      width,
		height:     height,
		hitPoints:  hitPoints,
		background: background,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Render runs all configured rounds and returns the final per-pixel RGB
// image as [0,1]-ranged Vec3s, row-major from the top-left (spec 4.8).
func (s *SPPM) Render() [][]core.Vec3 {
	threads := s.config.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	for round := 0; round < s.config.Rounds; round++ {
		photons := s.runPhotonPass()
		pm := photonmap.Build(photons)
		s.logger.Printf("round %d: %d photons traced, %d recorded", round, s.config.NPhotons*len(s.scene.Lights), pm.Count())

		s.runEyePass(round, pm, threads)
	}

	return s.assembleImage()
}

// runPhotonPass implements spec 4.7 step 1: every light emits NPhotons rays,
// each traced independently. Each goroutine owns a disjoint output buffer
// (spec 5 "built sequentially... in a single thread" per round, but the
// emission work itself is embarrassingly parallel across lights/photons and
// safe to fan out since buffers never overlap); buffers are concatenated
// once all goroutines finish, before the tree is built and published.
func (s *SPPM) runPhotonPass() []photonmap.Photon {
	type job struct {
		light lights.Light
	}

	var jobs []job
	for _, l := range s.scene.Lights {
		jobs = append(jobs, job{light: l})
	}

	// Seeds are drawn from the master RNG sequentially, before any goroutine
	// starts, since math/rand.Rand is not safe for concurrent use (spec 9:
	// each worker gets its own thread-local PRNG seeded from a global source).
	seeds := make([]int64, len(jobs))
	for i := range jobs {
		seeds[i] = s.rng.Int63()
	}

	buffers := make([][]photonmap.Photon, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, l lights.Light, seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			var buf []photonmap.Photon
			for n := 0; n < s.config.NPhotons; n++ {
				ray := l.SampleEmit(rng)
				tracePhoton(ray, s.scene.Root, s.config, rng, &buf)
			}
			buffers[i] = buf
		}(i, j.light, seeds[i])
	}
	wg.Wait()

	var total int
	for _, b := range buffers {
		total += len(b)
	}
	photons := make([]photonmap.Photon, 0, total)
	for _, b := range buffers {
		photons = append(photons, b...)
	}
	return photons
}

// runEyePass implements spec 4.7 step 3-5: the image is split into
// `threads` contiguous column bands, each processed by its own goroutine
// with exclusive write access to that band's HitPoint rows (spec 5
// "Mutable data"). sync.WaitGroup's Wait acts as the round barrier required
// by spec 5 ("a barrier of width P_threads + 1 entered by every worker and
// by the main thread at end-of-round").
func (s *SPPM) runEyePass(round int, pm *photonmap.Map, threads int) {
	colsPerBand := (s.width + threads - 1) / threads

	var wg sync.WaitGroup
	for b := 0; b < threads; b++ {
		x0 := b * colsPerBand
		x1 := x0 + colsPerBand
		if x1 > s.width {
			x1 = s.width
		}
		if x0 >= x1 {
			continue
		}
		// Seed drawn from the master RNG on the main goroutine, before
		// dispatch, for the same reason as in runPhotonPass.
		seed := s.rng.Int63()
		wg.Add(1)
		go func(x0, x1 int, seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			s.renderColumnBand(round, pm, x0, x1, rng)
		}(x0, x1, seed)
	}
	wg.Wait()
}

func (s *SPPM) renderColumnBand(round int, pm *photonmap.Map, x0, x1 int, rng *rand.Rand) {
	spp := s.config.SamplesPerPixel
	for y := 0; y < s.height; y++ {
		for x := x0; x < x1; x++ {
			hp := &s.hitPoints[y][x]

			var buf photonmap.HitPointQuery
			var bg core.Vec3
			for sample := 0; sample < spp; sample++ {
				u, v := rng.Float64(), rng.Float64()
				ray := s.scene.Camera.GenerateRay(float64(x)+u, float64(y)+v, rng)
				ray.Flux = ray.Flux.Multiply(1.0 / float64(spp))
				traceEye(ray, s.scene.Root, pm, hp.Radius, s.config, s.scene.Background, rng, &buf, &bg)
			}

			hp.applyRoundUpdate(round, s.config.Alpha, float64(buf.N), buf.Tau)
			s.background[y][x] = s.background[y][x].Add(bg)
		}
	}
}

// assembleImage implements spec 4.8: clamp01(tau / (pi*r^2*N_photons*R_rounds)) * 255,
// returned here as a [0,1]-ranged float image; integer truncation to 8-bit
// is the image encoder's job (kept out of this package, spec 1 non-goal).
func (s *SPPM) assembleImage() [][]core.Vec3 {
	denomScale := math.Pi * float64(s.config.NPhotons) * float64(s.config.Rounds)

	img := make([][]core.Vec3, s.height)
	for y := 0; y < s.height; y++ {
		row := make([]core.Vec3, s.width)
		for x := 0; x < s.width; x++ {
			hp := s.hitPoints[y][x]
			denom := denomScale * hp.Radius * hp.Radius
			var color core.Vec3
			if denom > 0 {
				color = hp.Tau.Multiply(1 / denom)
			}
			color = color.Add(s.background[y][x].Multiply(1 / float64(s.config.Rounds)))
			row[x] = color.Clamp(0, 1)
		}
		// Image-plane y grows along the camera's Up vector, so the bottom
		// pixel row is stored last to keep the result top-row first.
		img[s.height-1-y] = row
	}
	return img
}
