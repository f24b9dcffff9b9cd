// Package probe inspects tileset images without decoding their pixels.
//
// Types:
//   - ImageInfo (Path, Format, Width, Height, Size)
//
// Functions:
//   - Probe(path) → *ImageInfo
//     Reads only the image header via image.DecodeConfig. PNG, JPEG and GIF
//     come from the standard library; BMP, TIFF and WebP from golang.org/x/image.
//   - (*ImageInfo).Grid(tileSize) → columns, rows
//     Whole tiles that fit along each axis.
//   - DiscoverImages(dir) → []string
//     Recursive glob for image files, used by the --check audit.
package probe
