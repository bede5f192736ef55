// file: internals/helpers/oss/oss_image.go
package oss

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	ossapi "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

/* =========================================================
 * KONFIG (ENV)
 * ========================================================= */

type WebPOptions struct {
	Quality   float32 // 1..100
	Lossless  bool
	MaxWidth  int // 0 = tanpa batas
	MaxHeight int
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		Quality:   envFloat("OSS_WEBP_QUALITY", 82),
		Lossless:  false,
		MaxWidth:  envInt("OSS_IMG_MAX_W", 1920),
		MaxHeight: envInt("OSS_IMG_MAX_H", 1920),
	}
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

/* =========================================================
 * SERVICE
 * ========================================================= */

type OSSService struct {
	Bucket    *ossapi.Bucket
	BaseURL   string // https://<bucket>.<endpoint>
	KeyPrefix string // misal "tripku"
}

// NewOSSServiceFromEnv membuat service dari OSS_ENDPOINT / OSS_ACCESS_KEY /
// OSS_SECRET_KEY / OSS_BUCKET. prefix opsional untuk folder root.
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	accessKey := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY"))
	secretKey := strings.TrimSpace(os.Getenv("OSS_SECRET_KEY"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || accessKey == "" || secretKey == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: ENV belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY/OSS_SECRET_KEY/OSS_BUCKET)")
	}

	client, err := ossapi.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	base := fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	return &OSSService{Bucket: bucket, BaseURL: base, KeyPrefix: strings.Trim(prefix, "/")}, nil
}

/* =========================================================
 * KONVERSI GAMBAR → WEBP
 * ========================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	ext := strings.ToLower(path.Ext(filename))
	r := bytes.NewReader(all)
	switch ext {
	case ".png":
		return png.Decode(r)
	case ".gif":
		return gif.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".webp":
		return webp.Decode(r)
	}
	// fallback: sniff
	img, _, err := image.Decode(bytes.NewReader(all))
	return img, err
}

// downscaleIfNeeded menjaga aspect ratio; pakai CatmullRom biar halus.
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}

	// imaging.Fit: resize proporsional ke dalam kotak maxW×maxH
	fitted := imaging.Fit(src, maxW, maxH, imaging.CatmullRom)

	// pastikan hasilnya RGBA (webp encoder butuh model warna standar)
	dst := image.NewRGBA(fitted.Bounds())
	draw.Copy(dst, image.Point{}, fitted, fitted.Bounds(), draw.Src, nil)
	return dst
}

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	var buf bytes.Buffer
	err := webp.Encode(&buf, img, &webp.Options{
		Lossless: opt.Lossless,
		Quality:  opt.Quality,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToWebP membaca file multipart, resize bila perlu, lalu encode webp.
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	opt := defaultWebPOptionsFromEnv()

	var all bytes.Buffer
	if _, err := all.ReadFrom(file); err != nil {
		return nil, err
	}
	img, err := decodeImage(all.Bytes(), filename)
	if err != nil {
		return nil, fmt.Errorf("oss: gagal decode gambar: %w", err)
	}
	img = downscaleIfNeeded(img, opt.MaxWidth, opt.MaxHeight)
	return encodeToWebP(img, opt)
}

/* =========================================================
 * UPLOAD
 * ========================================================= */

// UploadAsWebP meng-upload file gambar sebagai webp ke dir tertentu.
// Return public URL.
func (s *OSSService) UploadAsWebP(ctx context.Context, fh *multipart.FileHeader, dir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", err
	}

	key := s.buildObjectKey(dir, fh.Filename)
	opts := []ossapi.Option{
		ossapi.ContentType("image/webp"),
		ossapi.ContentDisposition("inline"),
		ossapi.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// UploadPackageImage: helper scoped untuk galeri paket travel.
// Key: <prefix>/packages/<package_id>/<ts>-<rand>-<slug>.webp
func (s *OSSService) UploadPackageImage(ctx context.Context, packageID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	return s.UploadAsWebP(ctx, fh, "packages/"+packageID.String())
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key)
}

func (s *OSSService) PublicURL(key string) string {
	return s.BaseURL + "/" + strings.TrimPrefix(key, "/")
}

// ExtractKeyFromPublicURL: kebalikan PublicURL (untuk delete by URL).
func (s *OSSService) ExtractKeyFromPublicURL(publicURL string) (string, bool) {
	base := s.BaseURL + "/"
	if !strings.HasPrefix(publicURL, base) {
		return "", false
	}
	return strings.TrimPrefix(publicURL, base), true
}

func (s *OSSService) buildObjectKey(dir, filename string) string {
	name := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	name = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	if name == "" {
		name = "img"
	}
	parts := []string{}
	if s.KeyPrefix != "" {
		parts = append(parts, s.KeyPrefix)
	}
	if d := strings.Trim(dir, "/"); d != "" {
		parts = append(parts, d)
	}
	fname := fmt.Sprintf("%d-%s-%s.webp", time.Now().Unix(), randHex(4), name)
	parts = append(parts, fname)
	return strings.Join(parts, "/")
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
