package main

import (
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geomray/go-ray-geometry/pkg/core"
	"github.com/geomray/go-ray-geometry/pkg/renderer"
	"github.com/geomray/go-ray-geometry/pkg/scene"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a geometry preview of a demo scene",
	RunE:  runRender,
}

func init() {
	flags := renderCmd.Flags()
	flags.String("scene", "spheres", "scene to render: 'spheres' or 'cornell'")
	flags.Int("width", 800, "image width in pixels")
	flags.Int("height", 450, "image height in pixels")
	flags.Int("samples", 4, "samples per pixel")
	flags.Int64("seed", 42, "random seed for BVH build, media and pixel jitter")
	flags.String("mode", "normal", "shading mode: 'normal' or 'depth'")
	flags.String("output", "output", "output directory")
	flags.Uint("preview-width", 200, "width of the downscaled preview image (0 disables)")

	// Flags override config file values of the same name
	_ = viper.BindPFlag("scene", flags.Lookup("scene"))
	_ = viper.BindPFlag("width", flags.Lookup("width"))
	_ = viper.BindPFlag("height", flags.Lookup("height"))
	_ = viper.BindPFlag("samples", flags.Lookup("samples"))
	_ = viper.BindPFlag("seed", flags.Lookup("seed"))
	_ = viper.BindPFlag("mode", flags.Lookup("mode"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("preview-width", flags.Lookup("preview-width"))
}

func runRender(cmd *cobra.Command, args []string) error {
	sceneName := viper.GetString("scene")
	width := viper.GetInt("width")
	height := viper.GetInt("height")
	seed := viper.GetInt64("seed")

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
	s, err := scene.Build(sceneName, sampler, geoLogger{log: logger})
	if err != nil {
		return err
	}
	logger.Info().Str("scene", sceneName).Int64("seed", seed).Msg("scene assembled")

	camera := renderer.NewCamera(renderer.CameraOptions{
		LookFrom:    s.Camera.LookFrom,
		LookAt:      s.Camera.LookAt,
		VUp:         s.Camera.VUp,
		VFovDeg:     s.Camera.VFovDeg,
		AspectRatio: float64(width) / float64(height),
		Time0:       s.Time0,
		Time1:       s.Time1,
	})

	preview := renderer.NewPreview(s.Root, camera, renderer.Options{
		Width:           width,
		Height:          height,
		SamplesPerPixel: viper.GetInt("samples"),
		Mode:            renderer.ShadingMode(viper.GetString("mode")),
		Seed:            seed,
	})

	start := time.Now()
	img := preview.Render()
	logger.Info().Dur("elapsed", time.Since(start)).Msg("render complete")

	outputDir := filepath.Join(viper.GetString("output"), sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	if err := writePNG(renderPath, img); err != nil {
		return err
	}
	logger.Info().Str("path", renderPath).Msg("wrote render")

	if previewWidth := viper.GetUint("preview-width"); previewWidth > 0 {
		small := resize.Resize(previewWidth, 0, img, resize.Lanczos3)
		previewPath := filepath.Join(outputDir, "preview.png")
		if err := writePNG(previewPath, small); err != nil {
			return err
		}
		logger.Info().Str("path", previewPath).Msg("wrote preview")
	}

	return nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
