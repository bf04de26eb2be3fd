package images

import (
	"fmt"

	"github.com/disintegration/imaging"
	"gitlab.com/begraf/tourenblick/config"
)

// WriteThumbnail writes a width-constrained JPEG thumbnail of the photo
// at srcPath, preserving the aspect ratio.
func WriteThumbnail(srcPath, dstPath string, width int) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open photo: %w", err)
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	if err := imaging.Save(thumb, dstPath, imaging.JPEGQuality(config.DefaultThumbJPEGQuality())); err != nil {
		return fmt.Errorf("save thumbnail: %w", err)
	}

	return nil
}
