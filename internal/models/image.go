// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"path"
	"strings"
	"time"
)

// ProductImage is a picture attached to a product. Image is an opaque
// locator (an object key in the storage bucket); the file itself lives in
// object storage.
type ProductImage struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Image     string    `json:"image"`
	AltText   string    `json:"alt_text"`
	SortOrder int       `json:"order"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

// imageContentTypes maps accepted file extensions to MIME types.
var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageContentType returns the MIME type for an image file name, or an
// empty string when the extension is not an accepted image format.
func ImageContentType(name string) string {
	return imageContentTypes[strings.ToLower(path.Ext(name))]
}
