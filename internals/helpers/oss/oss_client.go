// file: internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	aliOSS "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const maxUploadSize = int64(5 * 1024 * 1024)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

/* =======================================================================
   OSS Service — penyimpanan lampiran pengajuan izin (surat/foto)
======================================================================= */

type Service struct {
	Client     *aliOSS.Client
	Bucket     *aliOSS.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // optional: "pengajuan/"
}

func NewServiceFromEnv(prefix string) (*Service, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := aliOSS.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	log.Printf("[OSS] bucket %s siap (endpoint=%s)", bucketName, endpoint)

	return &Service{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadAttachment mengunggah lampiran pengajuan. Gambar dikonversi ke webp
// (hemat storage, lihat ConvertToWebP); file lain (pdf/doc) diunggah apa adanya.
func (s *Service) UploadAttachment(ctx context.Context, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file terlalu besar (maks %d bytes)", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	data := all
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if isImage(all, ext) {
		if conv, err := ConvertToWebP(all, fh.Filename); err == nil {
			data = conv
			ext = ".webp"
		} else {
			log.Printf("[OSS] konversi webp gagal (%s): %v — upload apa adanya", fh.Filename, err)
		}
	}

	key := s.objectKey(keyPrefix, ext)
	if err := s.Bucket.PutObject(key, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return s.PublicURL(key), nil
}

func (s *Service) objectKey(keyPrefix, ext string) string {
	parts := []string{}
	if s.Prefix != "" {
		parts = append(parts, s.Prefix)
	}
	if p := strings.Trim(keyPrefix, "/"); p != "" {
		parts = append(parts, p)
	}
	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	parts = append(parts, name)
	return strings.Join(parts, "/")
}

func (s *Service) PublicURL(key string) string {
	// endpoint env boleh berisi skema atau tidak
	ep := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, ep, key)
}

/* =======================================================================
   Konversi gambar → webp
======================================================================= */

func isImage(data []byte, ext string) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if strings.HasPrefix(ct, "image/") {
		return true
	}
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}

func decodeImage(data []byte, filename string) (image.Image, error) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(data))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case ".png":
		return png.Decode(bytes.NewReader(data))
	case ".webp":
		return webp.Decode(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("format gambar tidak didukung")
}

// ConvertToWebP: decode → resize maks 1600px (keep aspect) → encode webp q80.
func ConvertToWebP(data []byte, filename string) ([]byte, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > 1600 || b.Dy() > 1600 {
		img = imaging.Fit(img, 1600, 1600, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
