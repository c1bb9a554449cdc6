package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	receiptMaxSide = 1600 // px, sisi terpanjang setelah resize
	webpQuality    = 80
)

var nonFileChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SaveReceipt menyimpan file bukti (comprobante) ke disk lokal dan
// mengembalikan path relatif yang disimpan apa adanya di DB.
// Gambar (jpg/png/webp) di-downscale lalu di-encode ulang ke webp supaya
// ukuran storage terkendali; file lain (pdf dsb.) disimpan verbatim.
func SaveReceipt(folder string, fh *multipart.FileHeader) (string, error) {
	dir := filepath.Join("uploads", folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	if isImageUpload(fh) {
		img, err := imaging.Decode(src, imaging.AutoOrientation(true))
		if err != nil {
			return "", fmt.Errorf("gagal decode gambar: %w", err)
		}
		if img.Bounds().Dx() > receiptMaxSide || img.Bounds().Dy() > receiptMaxSide {
			img = imaging.Fit(img, receiptMaxSide, receiptMaxSide, imaging.Lanczos)
		}

		path := filepath.Join(dir, uuid.NewString()+".webp")
		out, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("gagal membuat file: %w", err)
		}
		defer out.Close()

		if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
			return "", fmt.Errorf("gagal encode webp: %w", err)
		}
		return path, nil
	}

	// non-gambar: simpan verbatim dengan nama unik
	ext := strings.ToLower(filepath.Ext(sanitizeFilename(fh.Filename)))
	path := filepath.Join(dir, uuid.NewString()+ext)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("gagal membuat file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return "", fmt.Errorf("gagal menulis file: %w", err)
	}
	return path, nil
}

func isImageUpload(fh *multipart.FileHeader) bool {
	ct := strings.ToLower(fh.Header.Get("Content-Type"))
	if strings.HasPrefix(ct, "image/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

// ✅ hapus karakter selain huruf, angka, titik, dash, underscore
func sanitizeFilename(name string) string {
	return nonFileChars.ReplaceAllString(name, "_")
}
