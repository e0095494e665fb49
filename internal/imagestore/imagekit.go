package imagestore

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"monument-booking/pkg/utils"
)

const (
	// AuthTTL is how long a client upload signature stays valid.
	AuthTTL = 2400 * time.Second

	defaultTimeout = 30 * time.Second
)

var ErrNotConfigured = errors.New("imagekit keys not configured")

// UploadAuth lets a browser upload straight to ImageKit.
type UploadAuth struct {
	Token     string
	Expire    int64
	Signature string
	PublicKey string
}

type UploadResult struct {
	FileID string `json:"fileId"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

// Client talks to the ImageKit upload API.
type Client struct {
	publicKey  string
	privateKey string
	uploadURL  string
	httpClient *http.Client
}

func NewClient(cfg utils.ImageKitConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		uploadURL:  cfg.UploadURL,
		httpClient: httpClient,
	}
}

// Configured reports whether real keys are set. The sample .env values
// count as missing.
func (c *Client) Configured() bool {
	if c.publicKey == "" || c.privateKey == "" {
		return false
	}
	return !strings.Contains(c.privateKey, "your_private_key_here") &&
		!strings.Contains(c.publicKey, "your_public_key_here")
}

// SignUploadAuth signs token+expire with the private key (HMAC-SHA1, hex).
// The token is now in epoch milliseconds.
func (c *Client) SignUploadAuth(now time.Time) (*UploadAuth, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	token := strconv.FormatInt(now.UnixMilli(), 10)
	expire := now.Add(AuthTTL).Unix()

	mac := hmac.New(sha1.New, []byte(c.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return &UploadAuth{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
		PublicKey: c.publicKey,
	}, nil
}

// Upload posts one file to ImageKit and returns where it is served from.
func (c *Client) Upload(ctx context.Context, fileName string, file io.Reader) (*UploadResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy upload body: %w", err)
	}
	if err := form.WriteField("fileName", fileName); err != nil {
		return nil, fmt.Errorf("write file name: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("close multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	// Basic Auth: username = private key, empty password
	req.SetBasicAuth(c.privateKey, "")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagekit upload: %w", err)
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("imagekit upload failed: %s (%d)", string(raw), res.StatusCode)
	}

	var result UploadResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("parse imagekit response: %w", err)
	}
	if result.URL == "" {
		return nil, fmt.Errorf("imagekit response has no url")
	}
	return &result, nil
}
