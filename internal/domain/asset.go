package domain

// ImageAsset is one file discovered in an image library. Assets are created
// fresh on every scan and never mutated; they carry no identity across runs.
type ImageAsset struct {
	// RelativePath is the library-root-relative path, forward slashes,
	// raw folder spellings preserved.
	RelativePath string
	// RawFileName is the base name with extension, as found on disk.
	RawFileName string
	// Dimension is the canonical code derived from the enclosing folder.
	Dimension string
	// SurfaceFolder is the raw surface-finish folder name, empty in the
	// flat (decor) layout.
	SurfaceFolder string
	// NormalizedName is the match key for the file; never persisted.
	NormalizedName string
}
