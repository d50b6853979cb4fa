package helper

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"lalibela_manager/config"
)

var cld *cloudinary.Cloudinary

func InitCloudinary() {
	name := config.Config("CLOUDINARY_CLOUD_NAME")
	if name == "" {
		log.Println("Cloudinary not configured, image uploads disabled")
		return
	}

	c, err := cloudinary.NewFromParams(
		name,
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("Cloudinary init failed: %v", err)
		return
	}
	cld = c
}

// UploadImage pushes a base64/data-URI payload to Cloudinary and returns the
// CDN URL. Already-hosted http(s) URLs pass through untouched.
func UploadImage(ctx context.Context, image, folder string) (string, error) {
	if image == "" || strings.HasPrefix(image, "http") {
		return image, nil
	}
	if cld == nil {
		return "", errors.New("cloudinary is not configured")
	}

	res, err := cld.Upload.Upload(ctx, image, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}
