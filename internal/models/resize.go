package models

type ResizeRequest struct {
	Width       int     `json:"width" binding:"required,min=1"`
	Height      int     `json:"height" binding:"required,min=1"`
	Quality     int     `json:"quality,omitempty" binding:"omitempty,min=1,max=100"`
	Format      string  `json:"format,omitempty" binding:"omitempty,oneof=jpeg jpg png gif bmp tiff webp"`
	Scale       float64 `json:"scale,omitempty" binding:"omitempty,gt=0"`
	Orientation int     `json:"orientation,omitempty" binding:"omitempty,min=1,max=8"`
}

type ResizeSize struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Quality     int     `json:"quality,omitempty"`
	Format      string  `json:"format"`
	Scale       float64 `json:"scale,omitempty"`
	Orientation int     `json:"orientation,omitempty"`
}

const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
	FormatWebP = "webp"
)
