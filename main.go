package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/glimmer/pkg/core"
	"github.com/df07/glimmer/pkg/geometry"
	"github.com/df07/glimmer/pkg/loaders"
	"github.com/df07/glimmer/pkg/renderer"
	"github.com/df07/glimmer/pkg/scene"
)

// scenesDir holds the JSON scenes that can be selected by bare name
const scenesDir = "scenes"

// options holds the parsed command line
type options struct {
	sceneName    string
	rendererName string
	width        int
	height       int
	spp          int
	depth        int
	seed         int64
	workers      int
	tileSize     int
	meshPath     string
	output       string
	srgb         bool
	list         bool
	help         bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if opts.help {
		printHelp(stdout, fs)
		return 0
	}
	if opts.list {
		if err := listScenes(stdout); err != nil {
			fmt.Fprintf(stderr, "Error listing scenes: %v\n", err)
			return 1
		}
		return 0
	}

	if opts.width <= 0 || opts.height <= 0 {
		fmt.Fprintf(stderr, "Error: image size must be positive, got %dx%d\n", opts.width, opts.height)
		return 1
	}

	fmt.Fprintln(stdout, "Starting Glimmer...")

	aspect := float64(opts.width) / float64(opts.height)
	selectedScene, err := createScene(opts.sceneName, aspect, opts.meshPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating scene: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Scene %q: %d objects, %d primitives\n",
		opts.sceneName, selectedScene.Len(), selectedScene.GetPrimitiveCount())

	r, err := createRenderer(opts, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	img := core.NewImage(opts.width, opts.height)
	stats, err := r.RenderWithStats(selectedScene, img, opts.width, opts.height)
	if err != nil {
		fmt.Fprintf(stderr, "Error rendering: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Average luminance: %.4f over %d tiles\n", renderer.AverageLuminance(img), stats.Tiles)

	if opts.srgb {
		img = img.Map(core.LinearToSRGB)
	}
	if err := saveImage(opts.output, img); err != nil {
		fmt.Fprintf(stderr, "Error saving image: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Render saved as %s\n", opts.output)
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("glimmer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.sceneName, "scene", "default", "Scene: built-in ID, scene name in scenes/, or path to a .json file")
	fs.StringVar(&opts.rendererName, "renderer", "path", "Renderer: 'simple' (direct lighting) or 'path' (path tracing)")
	fs.IntVar(&opts.width, "width", 400, "Image width in pixels")
	fs.IntVar(&opts.height, "height", 300, "Image height in pixels")
	fs.IntVar(&opts.spp, "spp", renderer.DefaultSamplesPerPixel, "Samples per pixel (path renderer)")
	fs.IntVar(&opts.depth, "depth", 8, "Maximum bounce depth (path renderer)")
	fs.Int64Var(&opts.seed, "seed", renderer.DefaultSeed, "Base random seed")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.IntVar(&opts.tileSize, "tile", renderer.DefaultTileSize, "Tile size in pixels")
	fs.StringVar(&opts.meshPath, "mesh", "", "OBJ or PLY file shown by the mesh scene")
	fs.StringVar(&opts.output, "output", "render.ppm", "Output file; a .png extension writes PNG, anything else PPM")
	fs.BoolVar(&opts.srgb, "srgb", false, "Apply the sRGB transfer function before writing")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	return opts, fs, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Glimmer offline renderer")
	fmt.Fprintln(w, "Usage: glimmer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Fprintf(w, "  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintf(w, "  or any .json scene file (see %s/)\n", scenesDir)
}

func listScenes(w io.Writer) error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		id := info.ID
		if info.Type == "file" {
			id = info.FilePath
		}
		fmt.Fprintf(w, "%-28s %s\n", id, info.Name)
	}
	return nil
}

// createScene resolves name to a built-in scene, a .json path, or a scene
// file in scenesDir named name.json
func createScene(name string, aspect float64, meshPath string) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("no scene given")
	}

	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return loaders.LoadSceneFile(name, aspect)
	}

	var mesh *geometry.Mesh
	if name == "mesh" && meshPath != "" {
		var err error
		if mesh, err = loadMesh(meshPath); err != nil {
			return nil, err
		}
	}

	s, err := scene.NewBuiltinScene(name, aspect, mesh)
	if errors.Is(err, scene.ErrUnknownScene) {
		if s, ok, ferr := tryLoadSceneFile(name, aspect); ok {
			return s, ferr
		}
	}
	return s, err
}

// tryLoadSceneFile loads scenesDir/name.json if it exists
func tryLoadSceneFile(name string, aspect float64) (*scene.Scene, bool, error) {
	path := filepath.Join(scenesDir, name+".json")
	if _, err := os.Stat(path); err != nil {
		return nil, false, nil
	}
	s, err := loaders.LoadSceneFile(path, aspect)
	return s, true, err
}

// loadMesh reads an OBJ or PLY file, chosen by extension
func loadMesh(path string) (*geometry.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return loaders.LoadOBJ(path)
	case ".ply":
		return loaders.LoadPLY(path)
	}
	return nil, fmt.Errorf("unsupported mesh format %q (want .obj or .ply)", path)
}

func createRenderer(opts options, stdout io.Writer) (*renderer.TileRenderer, error) {
	config := renderer.DefaultConfig()
	config.TileSize = opts.tileSize
	config.NumWorkers = opts.workers
	config.Seed = opts.seed
	config.SamplesPerPixel = opts.spp
	config.PathTracing.MaxDepth = opts.depth
	config.Logger = renderer.NewWriterLogger(stdout)

	switch opts.rendererName {
	case "simple":
		return renderer.NewSimpleRaytracer(config), nil
	case "path":
		if opts.spp <= 0 {
			return nil, fmt.Errorf("samples per pixel must be positive, got %d", opts.spp)
		}
		if opts.depth < 0 {
			return nil, fmt.Errorf("depth must not be negative, got %d", opts.depth)
		}
		return renderer.NewPathTracer(config), nil
	}
	return nil, fmt.Errorf("unknown renderer %q (want 'simple' or 'path')", opts.rendererName)
}

// saveImage writes PNG for a .png extension and binary PPM otherwise
func saveImage(path string, img *core.Image) error {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return loaders.SavePNG(path, img)
	}
	return loaders.SavePPM(path, img)
}
