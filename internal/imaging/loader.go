package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// Load decodes an image file into an owned, mutable RGBA buffer.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG, GIF, BMP, and TIFF.
//
// Returns:
//   - *image.RGBA: The decoded pixels, copied into a contiguous RGBA buffer
//     that the caller owns and may mutate freely. The original color model
//     of the file (including any alpha channel) is folded into this buffer.
//   - string: The decoded format name ("png", "jpeg", ...), as reported by
//     the registered decoder.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The conversion to RGBA happens exactly once per run; every later stage of
// the pipeline works against this single buffer.
func Load(path string) (*image.RGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	return clone.AsRGBA(img), format, nil
}

// Save encodes an image to a file. The output format is chosen from the
// file extension (.png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff).
//
// Returns an error if the extension is not a supported format or the file
// cannot be written.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// MaskedPath derives the output path for a redacted copy of the input:
// "<stem>_masked<ext>" in the same directory.
//
//	shots/login.png -> shots/login_masked.png
func MaskedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_masked" + ext
}

// Info contains metadata about a loaded image file.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoded image format as reported by Load.
	Format string `json:"format"`

	// HasAlpha indicates whether any pixel is not fully opaque.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Describe returns metadata for an image previously loaded from path.
//
// Parameters:
//   - img: The loaded image buffer.
//   - format: The format name returned by Load.
//   - path: The file the image was loaded from; used for the on-disk size.
//
// Returns an error only if the file cannot be stat'd.
func Describe(img *image.RGBA, format, path string) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      !img.Opaque(),
		FileSizeBytes: stat.Size(),
	}, nil
}
