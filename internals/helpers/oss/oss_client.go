package oss

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
)

// Prefixo namespaced dos arquivos de material de apoio.
const MaterialPrefix = "materiais_provas"

type Client struct {
	bucket   *alioss.Bucket
	bucketNm string
	endpoint string
}

// NewClientFromEnv monta o client a partir de OSS_ENDPOINT / OSS_ACCESS_KEY_ID /
// OSS_ACCESS_KEY_SECRET / OSS_BUCKET. Retorna erro se algo faltar.
func NewClientFromEnv() (*Client, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("config OSS incompleta (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	cli, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, err
	}
	return &Client{bucket: bucket, bucketNm: bucketName, endpoint: endpoint}, nil
}

// UploadMaterialFile sobe o arquivo para materiais_provas/{provaID}/ e
// devolve (url pública, object key). O content-type é detectado por sniffing,
// não pelo header do multipart.
func (c *Client) UploadMaterialFile(fh *multipart.FileHeader, provaID string) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Arquivo ausente")
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Não foi possível ler o arquivo")
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Não foi possível detectar o tipo do arquivo")
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Falha ao reposicionar o arquivo")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = mt.Extension()
	}

	objectKey := fmt.Sprintf("%s/%s/%s%s", MaterialPrefix, provaID, randomHex(8), ext)

	if err := c.bucket.PutObject(objectKey, src, alioss.ContentType(mt.String())); err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Falha no upload do arquivo")
	}

	url := fmt.Sprintf("https://%s.%s/%s", c.bucketNm, strings.TrimPrefix(c.endpoint, "https://"), objectKey)
	return url, objectKey, nil
}

// DeleteObject remove o objeto; erro de objeto inexistente é ignorado.
func (c *Client) DeleteObject(objectKey string) error {
	objectKey = strings.TrimSpace(objectKey)
	if objectKey == "" {
		return nil
	}
	return c.bucket.DeleteObject(objectKey)
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
