package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/geomray/go-ray-geometry/pkg/core"
	"github.com/geomray/go-ray-geometry/pkg/geometry"
	"github.com/geomray/go-ray-geometry/pkg/scene"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [scene]",
	Short: "Print BVH structure statistics for a demo scene",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

var inspectSeed int64

func init() {
	inspectCmd.Flags().Int64Var(&inspectSeed, "seed", 42, "random seed for the BVH build")
}

func runInspect(cmd *cobra.Command, args []string) error {
	sceneName := "spheres"
	if len(args) > 0 {
		sceneName = args[0]
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(inspectSeed)))
	s, err := scene.Build(sceneName, sampler, geoLogger{log: logger})
	if err != nil {
		return err
	}

	root, ok := s.Root.(*geometry.BVHNode)
	if !ok {
		return fmt.Errorf("scene %q root is not a BVH", sceneName)
	}

	stats := root.Stats()
	box, _ := root.BoundingBox(s.Time0, s.Time1)

	fmt.Printf("scene:       %s\n", sceneName)
	fmt.Printf("primitives:  %d\n", len(s.World.Objects))
	fmt.Printf("bvh nodes:   %d\n", stats.Nodes)
	fmt.Printf("bvh leaves:  %d\n", stats.Leaves)
	fmt.Printf("max depth:   %d\n", stats.MaxDepth)
	fmt.Printf("world bounds: min(%.2f, %.2f, %.2f) max(%.2f, %.2f, %.2f)\n",
		box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)

	return nil
}
