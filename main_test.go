package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/renderer"
	"github.com/kestrelray/sppm-raytracer/pkg/rendererr"
)

const tinyScene = `{
	"Camera": {"Type": "Perspective", "Center": [0,2,5], "Direction": [0,-0.2,-1], "Up": [0,1,0], "Angle": 60, "Width": 4, "Height": 4},
	"Lights": [{"Type": "SphereLight", "Position": [0,5,0], "Flux": [30,30,30], "Scale": 1.0}],
	"Materials": [{"Type": "DIFF", "Color": [0.7,0.7,0.7]}],
	"Group": [{"Type": "Plane", "MaterialIndex": 0, "Point": [0,0,0], "Normal": [0,1,0]}]
}`

func TestRun_RendersAndEncodesPNG(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.json")
	outPath := filepath.Join(dir, "out.png")
	if err := os.WriteFile(scenePath, []byte(tinyScene), 0644); err != nil {
		t.Fatalf("failed to write scene: %v", err)
	}

	cfg := renderer.DefaultConfig()
	cfg.NPhotons = 200
	cfg.Rounds = 1
	cfg.SamplesPerPixel = 1
	cfg.Threads = 1
	cfg.DepthCap = 5
	cfg.RRDepthPhoton = 2
	cfg.RREyeDepth = 2

	if err := run(scenePath, outPath, cfg, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(outPath); err != nil || info.Size() == 0 {
		t.Fatalf("expected a non-empty output file, err=%v", err)
	}
}

func TestRun_MissingSceneFileReturnsConfigError(t *testing.T) {
	dir := t.TempDir()
	err := run(filepath.Join(dir, "nope.json"), filepath.Join(dir, "out.png"), renderer.DefaultConfig(), 1)
	if err == nil {
		t.Fatal("expected an error for a missing scene file")
	}
	if exitCode(err) != 2 {
		t.Fatalf("expected config-error exit code 2, got %d", exitCode(err))
	}
}

func TestEncode_UnsupportedExtensionReturnsConfigError(t *testing.T) {
	dir := t.TempDir()
	pixels := [][]core.Vec3{{{}, {}}, {{}, {}}}
	img := toImage(pixels)
	err := encode(img, filepath.Join(dir, "out.bmp"))
	if err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
	if _, ok := err.(*rendererr.ConfigError); !ok {
		t.Fatalf("expected *rendererr.ConfigError, got %T", err)
	}
}
