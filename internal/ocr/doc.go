// Package ocr reads color literals out of images using Tesseract.
//
// ExtractText wraps the Tesseract OCR engine (via gosseract/v2) and returns
// the recognized text together with word bounding boxes. ScanColors runs the
// recognized text through the color scanner and maps every literal found back
// to the pixels it was read from, which makes it possible to point at a color
// in a screenshot of a stylesheet or a design mockup.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// # Accuracy
//
// OCR output is noisy. A literal the engine misreads (an "O" for a "0", a
// dropped "#") is simply not found, and literals split across lines are never
// joined. Literal bounds are only reported when every recognized word can be
// located in the recognized text.
//
// If bounding box extraction fails (e.g., Tesseract version mismatch),
// ExtractText still returns the extracted text with an empty Regions slice.
package ocr
