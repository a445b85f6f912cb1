package infrastructure

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// CloudinaryClient pushes image blobs to the Cloudinary upload API and
// hands back the public URL. No type or size checks happen here; whatever
// the caller sends goes over the wire.
type CloudinaryClient struct {
	UploadURL    string
	APIKey       string
	APISecret    string
	UploadPreset string
	Client       *http.Client
}

func NewCloudinaryClient(cloudName, apiKey, apiSecret, uploadPreset string) *CloudinaryClient {
	return &CloudinaryClient{
		UploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		APIKey:       apiKey,
		APISecret:    apiSecret,
		UploadPreset: uploadPreset,
		Client:       &http.Client{Timeout: 60 * time.Second},
	}
}

// UploadError is a transport failure or remote-side rejection.
type UploadError struct {
	Status  int
	Message string
}

func (e *UploadError) Error() string { return e.Message }

// Upload sends the blob as a signed multipart request and returns the
// hosted image's public URL.
func (c *CloudinaryClient) Upload(file io.Reader, filename string) (string, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	form.WriteField("upload_preset", c.UploadPreset)
	form.WriteField("timestamp", timestamp)
	form.WriteField("api_key", c.APIKey)
	form.WriteField("signature", c.sign(timestamp))
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.UploadURL, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		var remote struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(data, &remote); err == nil && remote.Error.Message != "" {
			return "", &UploadError{Status: resp.StatusCode, Message: remote.Error.Message}
		}
		return "", &UploadError{Status: resp.StatusCode, Message: fmt.Sprintf("status %d: %s", resp.StatusCode, string(data))}
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return result.SecureURL, nil
}

// sign builds Cloudinary's request signature: the signed parameters in
// alphabetical order joined with "&", API secret appended, SHA-1 hashed.
func (c *CloudinaryClient) sign(timestamp string) string {
	payload := fmt.Sprintf("timestamp=%s&upload_preset=%s%s", timestamp, c.UploadPreset, c.APISecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
