package models

// BufferResizeRequest describes a raw pixel buffer sent as the request body
// and the size to resize it to. Stride defaults to a tightly packed row.
type BufferResizeRequest struct {
	Width        int    `form:"width"`
	Height       int    `form:"height"`
	Stride       int    `form:"stride"`
	Format       string `form:"format" binding:"required"`
	TargetWidth  int    `form:"target_width"`
	TargetHeight int    `form:"target_height"`
}
