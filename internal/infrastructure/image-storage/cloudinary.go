package imagestorage

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/noyo-commerce/storefront-service/config"
	"github.com/noyo-commerce/storefront-service/internal/domain"
	"github.com/noyo-commerce/storefront-service/pkg/httpclient"
	"github.com/oklog/ulid/v2"
	"github.com/sony/gobreaker/v2"
)

// Client talks to the Cloudinary REST API. Every product image lives
// remotely; this service only keeps {publicId, url} pairs.
type Client struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	breaker   *gobreaker.CircuitBreaker[[]byte]
}

func CreateClient(cfg config.ImageStorageConfig, breaker *gobreaker.CircuitBreaker[[]byte]) *Client {
	return &Client{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		breaker:   breaker,
	}
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// Upload stores one image and returns its external reference.
func (c *Client) Upload(filename string, content io.Reader) (domain.ProductImage, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	publicID := ulid.Make().String()

	signed := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}
	if c.folder != "" {
		signed["folder"] = c.folder
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range signed {
		if err := writer.WriteField(key, value); err != nil {
			return domain.ProductImage{}, fmt.Errorf("building upload request: %w", err)
		}
	}
	if err := writer.WriteField("api_key", c.apiKey); err != nil {
		return domain.ProductImage{}, fmt.Errorf("building upload request: %w", err)
	}
	if err := writer.WriteField("signature", c.sign(signed)); err != nil {
		return domain.ProductImage{}, fmt.Errorf("building upload request: %w", err)
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return domain.ProductImage{}, fmt.Errorf("building upload request: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return domain.ProductImage{}, fmt.Errorf("reading image content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return domain.ProductImage{}, fmt.Errorf("building upload request: %w", err)
	}

	respBody, err := c.send("image/upload", body.Bytes(), writer.FormDataContentType())
	if err != nil {
		return domain.ProductImage{}, err
	}

	var uploaded uploadResponse
	if err := json.Unmarshal(respBody, &uploaded); err != nil {
		return domain.ProductImage{}, fmt.Errorf("decoding upload response: %w", err)
	}

	return domain.ProductImage{PublicID: uploaded.PublicID, URL: uploaded.SecureURL}, nil
}

// Destroy removes an image by its external id. Destroying an already
// absent id is not an error on the remote side.
func (c *Client) Destroy(publicID string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	signed := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := url.Values{}
	for key, value := range signed {
		form.Set(key, value)
	}
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(signed))

	_, err := c.send("image/destroy", []byte(form.Encode()), "application/x-www-form-urlencoded")
	return err
}

func (c *Client) send(endpoint string, body []byte, contentType string) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(httpclient.HttpRequest{
			URL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/%s", c.cloudName, endpoint),
			Method: "POST",
			Body:   body,
			Headers: map[string]string{
				"Content-Type": contentType,
			},
		})
		if err != nil {
			return nil, err
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("image storage returned status %d", statusCode)
		}
		return respBody, nil
	})
}

// sign produces the API signature: the signed params sorted by key,
// serialized as k=v pairs joined with &, concatenated with the secret,
// and SHA-1 hashed.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
