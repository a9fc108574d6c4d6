// m3dtool is a CLI utility for inspecting 3D Studio (.3ds) scene files.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dave-kaye/Celestia/internal/config"
	"github.com/dave-kaye/Celestia/internal/logger"
	"github.com/dave-kaye/Celestia/pkg/m3d"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "materials", "mats":
		cmdMaterials(cfg, args)
	case "meshes":
		cmdMeshes(cfg, args)
	case "validate":
		cmdValidate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`m3dtool - 3D Studio scene file inspector

Usage:
  m3dtool [flags] <command> <file.3ds>

Commands:
  info <file.3ds>       Show scene summary
  materials <file.3ds>  List materials with colors and texture maps
  meshes <file.3ds>     List meshes with geometry details
  validate <file.3ds>   Decode and cross-check all index references

Flags:
  -config <path>   Config file (default: m3dtool.yaml)
  -debug           Enable debug logging
  -verbose         Verbose report output
  -no-validate     Skip index validation after decode
  -n <count>       Cap per-item detail lines (0 = all)

Examples:
  m3dtool info spaceship.3ds
  m3dtool -verbose meshes spaceship.3ds
  m3dtool validate spaceship.3ds`)
}

// decodeArg decodes the single file argument of a subcommand.
func decodeArg(command string, args []string) (*m3d.Scene, string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: m3dtool %s <file.3ds>\n", command)
		os.Exit(1)
	}
	path := args[0]

	logger.Debug("decoding scene", zap.String("path", path))
	scene, err := m3d.DecodeFile(path)
	if err != nil {
		logger.Error("decode failed", zap.String("path", path), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return scene, path
}

func cmdInfo(cfg *config.Config, args []string) {
	scene, path := decodeArg("info", args)
	runValidation(cfg, scene)

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Models:     %d\n", len(scene.Models))
	fmt.Printf("Materials:  %d\n", len(scene.Materials))
	fmt.Printf("Vertices:   %d\n", scene.TotalVertexCount())
	fmt.Printf("Faces:      %d\n", scene.TotalFaceCount())
	fmt.Printf("Background: (%.3f, %.3f, %.3f)\n",
		scene.Background.R, scene.Background.G, scene.Background.B)

	if !cfg.Output.Verbose {
		return
	}
	fmt.Println()
	for _, model := range scene.Models {
		fmt.Printf("model %-24q %d mesh(es)\n", model.Name, len(model.Meshes))
	}
	for _, mat := range scene.Materials {
		fmt.Printf("material %-21q texture=%q\n", mat.Name, mat.TextureMap)
	}
}

func cmdMaterials(cfg *config.Config, args []string) {
	scene, _ := decodeArg("materials", args)
	runValidation(cfg, scene)

	if len(scene.Materials) == 0 {
		fmt.Println("No materials")
		return
	}

	for _, mat := range scene.Materials {
		fmt.Printf("%s\n", mat.Name)
		fmt.Printf("  ambient:   (%.3f, %.3f, %.3f)\n", mat.Ambient.R, mat.Ambient.G, mat.Ambient.B)
		fmt.Printf("  diffuse:   (%.3f, %.3f, %.3f)\n", mat.Diffuse.R, mat.Diffuse.G, mat.Diffuse.B)
		fmt.Printf("  specular:  (%.3f, %.3f, %.3f)\n", mat.Specular.R, mat.Specular.G, mat.Specular.B)
		fmt.Printf("  shininess: %.1f%%\n", mat.Shininess)
		fmt.Printf("  opacity:   %.3f\n", mat.Opacity)
		if mat.TextureMap != "" {
			fmt.Printf("  texture:   %s\n", mat.TextureMap)
		}
	}
}

func cmdMeshes(cfg *config.Config, args []string) {
	scene, _ := decodeArg("meshes", args)
	runValidation(cfg, scene)

	listed := 0
	for _, model := range scene.Models {
		for mi, mesh := range model.Meshes {
			if cfg.Output.MaxListed > 0 && listed >= cfg.Output.MaxListed {
				fmt.Fprintf(os.Stderr, "\n(showing first %d meshes, use -n 0 for all)\n", listed)
				return
			}
			fmt.Printf("%s/%d: %d vertices, %d faces, %d texcoords\n",
				model.Name, mi, mesh.VertexCount(), mesh.FaceCount(), len(mesh.TexCoords))
			for _, group := range mesh.MaterialGroups {
				fmt.Printf("  group %q: %d faces\n", group.MaterialName, len(group.Faces))
			}
			if len(mesh.SmoothingGroups) > 0 {
				fmt.Printf("  smoothing groups: %d\n", len(mesh.SmoothingGroups))
			}
			if cfg.Output.Verbose {
				m := mesh.Matrix
				for row := 0; row < 4; row++ {
					fmt.Printf("  [%8.3f %8.3f %8.3f %8.3f]\n",
						m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3))
				}
			}
			listed++
		}
	}

	if listed == 0 {
		fmt.Println("No meshes")
	}
}

func cmdValidate(args []string) {
	scene, path := decodeArg("validate", args)

	if err := scene.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: OK (%d models, %d materials, %d faces)\n",
		path, len(scene.Models), len(scene.Materials), scene.TotalFaceCount())
}

func runValidation(cfg *config.Config, scene *m3d.Scene) {
	if !cfg.Decode.ValidateIndices {
		return
	}
	if err := scene.Validate(); err != nil {
		logger.Warn("index validation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}
