// Package imaging picks colors out of images and writes them as color
// literals.
//
// Sample reads one pixel; Palette groups the pixels of an image or region
// into its most common colors. Both report each color in every registered
// notation, ready to paste into a stylesheet.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Images are decoded with their EXIF orientation applied, so coordinates
// refer to the image as it is displayed.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Sample and Palette only
// read the image.
package imaging
