package decoration

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"sync/atomic"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/go-drift/shapefill/pkg/errors"
)

// ImageProvider supplies the pixels for a DecorationImage.
type ImageProvider interface {
	// Resolve loads the image and passes it, or the failure, to onLoad
	// exactly once. onLoad may run before Resolve returns or later on
	// another goroutine.
	Resolve(onLoad func(image.Image, error))

	// Key identifies the image for equality and hashing.
	Key() string
}

// memoryImageIDs gives each MemoryImage a distinct key.
var memoryImageIDs atomic.Uint64

// MemoryImage provides an already-decoded image synchronously.
type MemoryImage struct {
	img image.Image
	id  uint64
}

// NewMemoryImage wraps img.
func NewMemoryImage(img image.Image) *MemoryImage {
	return &MemoryImage{img: img, id: memoryImageIDs.Add(1)}
}

// Resolve implements ImageProvider.
func (m *MemoryImage) Resolve(onLoad func(image.Image, error)) {
	if m.img == nil {
		onLoad(nil, fmt.Errorf("memory image #%d is empty", m.id))
		return
	}
	onLoad(m.img, nil)
}

// Key implements ImageProvider.
func (m *MemoryImage) Key() string {
	return fmt.Sprintf("memory#%d", m.id)
}

func (m *MemoryImage) String() string {
	return m.Key()
}

// FileImage decodes an image file on a background goroutine. PNG, JPEG,
// GIF, WebP and BMP are supported.
type FileImage struct {
	Path string
}

// decodeFile is swapped in tests.
var decodeFile = DecodeFile

// Resolve implements ImageProvider. A decoder panic is reported and
// delivered to onLoad as a KindImage error.
func (f FileImage) Resolve(onLoad func(image.Image, error)) {
	const op = "decoration.FileImage.Resolve"
	go func() {
		decoded := false
		defer errors.RecoverWithCallback(op, func(r any) {
			if !decoded {
				onLoad(nil, errors.Wrap(op, errors.KindImage, fmt.Errorf("%s: decoder panic: %v", f.Path, r)))
			}
		})
		img, err := decodeFile(f.Path)
		decoded = true
		onLoad(img, err)
	}()
}

// Key implements ImageProvider.
func (f FileImage) Key() string {
	return "file:" + f.Path
}

func (f FileImage) String() string {
	return f.Key()
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap("decoration.DecodeFile", errors.KindImage, err)
	}
	defer file.Close()

	img, format, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrap("decoration.DecodeFile", errors.KindImage, fmt.Errorf("%s: %w", path, err))
	}
	if img.Bounds().Empty() {
		return nil, errors.Wrap("decoration.DecodeFile", errors.KindImage, fmt.Errorf("%s: empty %s image", path, format))
	}
	return img, nil
}
