package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hajruuudin/life-line/config"
	"github.com/hajruuudin/life-line/models"
)

// N8NService posts uploaded files to the workflow-automation webhook.
type N8NService struct {
	client     *http.Client
	baseURL    string
	webhookKey string
	drive      *GoogleDriveService
}

func NewN8NService(cfg *config.Config, drive *GoogleDriveService) *N8NService {
	return &N8NService{
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.N8NURL,
		webhookKey: cfg.N8NWebhookAuthKey,
		drive:      drive,
	}
}

// TriggerFileSummary sends the file bytes plus user metadata to the summarize
// webhook. Best-effort: failures are logged and reported as false, never as
// an error that could fail the upload that triggered it.
func (s *N8NService) TriggerFileSummary(userEmail string, userID uint, fileName string, fileBytes []byte, mimeType string) bool {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	_ = writer.WriteField("user_id", strconv.FormatUint(uint64(userID), 10))
	_ = writer.WriteField("user_email", userEmail)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		log.Errorf("Failed to trigger n8n: %v", err)
		return false
	}
	if _, err := io.Copy(part, bytes.NewReader(fileBytes)); err != nil {
		log.Errorf("Failed to trigger n8n: %v", err)
		return false
	}
	if err := writer.Close(); err != nil {
		log.Errorf("Failed to trigger n8n: %v", err)
		return false
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/webhook/summarize", &body)
	if err != nil {
		log.Errorf("Failed to trigger n8n: %v", err)
		return false
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.webhookKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Errorf("Failed to trigger n8n: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf("Failed to trigger n8n: webhook returned %d", resp.StatusCode)
		return false
	}
	return true
}

// SummarizeFile downloads a Drive file and pushes it through the summarize
// webhook on behalf of a server-to-server caller.
func (s *N8NService) SummarizeFile(ctx context.Context, user *models.User, fileID string) error {
	data, meta, err := s.drive.DownloadFile(ctx, user.ID, fileID)
	if err != nil {
		return err
	}

	if !s.TriggerFileSummary(user.Email, user.ID, meta.Name, data, meta.MimeType) {
		return fmt.Errorf("failed to trigger summary workflow")
	}
	return nil
}
