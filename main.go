package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/renderer"
	"github.com/kestrelray/sppm-raytracer/pkg/rendererr"
	"github.com/kestrelray/sppm-raytracer/pkg/scene"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	cfg := renderer.DefaultConfig()
	var seed int64

	cmd := &cobra.Command{
		Use:   "sppm-raytracer scene_file output_file",
		Short: "Stochastic progressive photon mapping renderer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], cfg, seed)
		},
		SilenceUsage: true,
	}

	cmd.Flags().IntVar(&cfg.NPhotons, "photons", cfg.NPhotons, "photons emitted per light per round")
	cmd.Flags().IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "number of SPPM rounds")
	cmd.Flags().IntVar(&cfg.SamplesPerPixel, "spp", cfg.SamplesPerPixel, "eye-ray samples per pixel per round")
	cmd.Flags().IntVar(&cfg.Threads, "threads", cfg.Threads, "worker goroutines for the eye pass (0 = NumCPU)")
	cmd.Flags().Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "radius shrinkage parameter")
	cmd.Flags().Float64Var(&cfg.InitialRadius, "initial-radius", cfg.InitialRadius, "initial photon gather radius")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "master RNG seed")

	return cmd
}

func run(sceneFile, outputFile string, cfg renderer.Config, seed int64) error {
	logger := renderer.NewDefaultLogger()

	built, err := scene.Load(sceneFile, filepath.Dir(sceneFile))
	if err != nil {
		return err
	}
	if built.Width <= 0 || built.Height <= 0 {
		return rendererr.NewConfigError("Camera.Width/Height", fmt.Errorf("must be positive, got %dx%d", built.Width, built.Height))
	}

	logger.Printf("rendering %dx%d, %d rounds, %d photons/light/round", built.Width, built.Height, cfg.Rounds, cfg.NPhotons)
	start := time.Now()

	sppm := renderer.NewSPPM(built.Scene, cfg, built.Width, built.Height, logger, seed)
	pixels := sppm.Render()

	logger.Printf("render finished in %s", time.Since(start))

	return encode(toImage(pixels), outputFile)
}

// toImage converts the driver's [0,1]-ranged Vec3 image to 8-bit RGBA,
// truncating via the final *255 step spec.md 1 leaves to the encoder.
func toImage(pixels [][]core.Vec3) *image.RGBA {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, row := range pixels {
		for x, c := range row {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X * 255),
				G: uint8(c.Y * 255),
				B: uint8(c.Z * 255),
				A: 255,
			})
		}
	}
	return img
}

func encode(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return rendererr.NewConfigError("output_file", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".png", "":
		return png.Encode(f, img)
	default:
		return rendererr.NewConfigError("output_file", fmt.Errorf("unsupported image extension %q", ext))
	}
}

func exitCode(err error) int {
	switch err.(type) {
	case *rendererr.ConfigError:
		return 2
	case *rendererr.ParseError:
		return 3
	case *rendererr.IndexError:
		return 4
	default:
		return 1
	}
}
