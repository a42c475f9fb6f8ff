package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{0, 0, 0, 255})
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input       string
		expected    Format
		expectError bool
	}{
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"bmp", BMP, false},
		{"tif", TIFF, false},
		{"tiff", TIFF, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if f != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, f)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("output/render.bmp"); err != nil || f != BMP {
		t.Errorf("Expected BMP, got %s (%v)", f, err)
	}
	if _, err := FormatFromPath("output/render"); err == nil {
		t.Error("Expected error for missing extension")
	}
}

func TestEncode_Decodable(t *testing.T) {
	src := testImage()

	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		PNG:  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		BMP:  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		TIFF: func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			decoded, err := decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if decoded.Bounds() != src.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", src.Bounds(), decoded.Bounds())
			}

			r, g, b, _ := decoded.At(0, 0).RGBA()
			if r>>8 != 255 || g != 0 || b != 0 {
				t.Errorf("Expected red at (0,0), got %d,%d,%d", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, testImage(), Format("gif")); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestScale(t *testing.T) {
	scaled, err := Scale(testImage(), 3)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if scaled.Bounds().Dx() != 6 || scaled.Bounds().Dy() != 6 {
		t.Fatalf("Expected 6x6, got %v", scaled.Bounds())
	}

	// Each source pixel becomes a flat 3x3 block
	blue := color.RGBA{0, 0, 255, 255}
	for y := 0; y < 3; y++ {
		for x := 3; x < 6; x++ {
			if got := color.RGBAModel.Convert(scaled.At(x, y)); got != blue {
				t.Errorf("Expected blue at (%d,%d), got %v", x, y, got)
			}
		}
	}

	same, err := Scale(testImage(), 1)
	if err != nil || same.Bounds().Dx() != 2 {
		t.Errorf("Expected unchanged image for factor 1, got %v (%v)", same.Bounds(), err)
	}
	if _, err := Scale(testImage(), 0); err == nil {
		t.Error("Expected error for factor 0")
	}
}

func TestSaveImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "render.png")

	if err := SaveImage(path, testImage()); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("Expected width 2, got %d", img.Bounds().Dx())
	}
}
