package domain

// Frame represents a single raster frame file.
// A frame is the atomic unit of input; it is read exactly once.
type Frame struct {
	// Name is the file name within the input directory (e.g., "frame0001.ppm")
	Name string

	// Path is the full path used to open the frame
	Path string
}

// FrameResult records what compressing one frame produced.
type FrameResult struct {
	Name     string `csv:"frame" json:"frame"`
	BytesIn  int64  `csv:"bytes_in" json:"bytes_in"`
	BytesOut int64  `csv:"bytes_out" json:"bytes_out"`
}
