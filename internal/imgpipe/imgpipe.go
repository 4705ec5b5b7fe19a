package imgpipe

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Variant is one output resolution, labeled the way the page asks for
// it in srcset lookups.
type Variant struct {
	Label string
	Width int
}

// DefaultVariants and DefaultQuality mirror the asset step the site
// was built around: three widths, WebP plus JPEG fallback, quality 80.
var DefaultVariants = []Variant{
	{Label: "sm", Width: 400},
	{Label: "md", Width: 800},
	{Label: "lg", Width: 1200},
}

const DefaultQuality = 80

// Pipeline resizes every source raster image into the configured
// variants. It is a pure build-time step with no runtime coupling.
type Pipeline struct {
	SrcDir   string
	OutDir   string
	Quality  int
	Variants []Variant
	Logger   *log.Logger
}

func New(srcDir, outDir string, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Pipeline{
		SrcDir:   srcDir,
		OutDir:   outDir,
		Quality:  DefaultQuality,
		Variants: DefaultVariants,
		Logger:   logger,
	}
}

// Run processes every jpg/jpeg/png under SrcDir and returns how many
// source images were converted.
func (p *Pipeline) Run() (int, error) {
	if err := os.MkdirAll(p.OutDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	sources, err := ListSources(p.SrcDir)
	if err != nil {
		return 0, err
	}
	p.Logger.Printf("imgpipe: found %d images to process", len(sources))

	for _, name := range sources {
		p.Logger.Printf("imgpipe: processing %s", name)
		if err := p.processOne(name); err != nil {
			return 0, fmt.Errorf("process %s: %w", name, err)
		}
	}
	return len(sources), nil
}

func (p *Pipeline) processOne(name string) error {
	src, err := imaging.Open(filepath.Join(p.SrcDir, name), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	for _, variant := range p.Variants {
		resized := resizeTo(src, variant.Width)

		webpPath := filepath.Join(p.OutDir, VariantName(name, variant.Label, "webp"))
		if err := p.saveWebP(resized, webpPath); err != nil {
			return err
		}

		jpegPath := filepath.Join(p.OutDir, VariantName(name, variant.Label, "jpg"))
		if err := imaging.Save(resized, jpegPath, imaging.JPEGQuality(p.Quality)); err != nil {
			return fmt.Errorf("save %s: %w", jpegPath, err)
		}
	}
	return nil
}

func (p *Pipeline) saveWebP(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := webp.Encode(f, img, &webp.Options{Quality: float32(p.Quality)}); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// resizeTo scales to the target width preserving aspect ratio, never
// enlarging beyond the source width.
func resizeTo(src image.Image, width int) image.Image {
	if src.Bounds().Dx() <= width {
		return src
	}
	return imaging.Resize(src, width, 0, imaging.Lanczos)
}

// VariantName maps "margherita.jpg" + "sm" + "webp" to
// "margherita-sm.webp".
func VariantName(source, label, ext string) string {
	base := strings.TrimSuffix(source, filepath.Ext(source))
	return fmt.Sprintf("%s-%s.%s", base, label, ext)
}

// ListSources returns the jpg/jpeg/png files directly under dir,
// in directory order.
func ListSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png":
			sources = append(sources, entry.Name())
		}
	}
	return sources, nil
}
