package services

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/hajruuudin/life-line/config"
	"github.com/hajruuudin/life-line/models"
)

// GoogleDriveService wraps the Drive API scoped to the user's dedicated
// records folder.
type GoogleDriveService struct {
	db         *gorm.DB
	tokens     *GoogleTokenService
	folderName string
}

func NewGoogleDriveService(db *gorm.DB, cfg *config.Config, tokens *GoogleTokenService) *GoogleDriveService {
	return &GoogleDriveService{
		db:         db,
		tokens:     tokens,
		folderName: cfg.DriveFolderName,
	}
}

func (s *GoogleDriveService) client(ctx context.Context, userID uint) (*drive.Service, error) {
	ts, err := s.tokens.TokenSource(ctx, userID)
	if err != nil {
		return nil, err
	}
	return drive.NewService(ctx, option.WithTokenSource(ts))
}

// EnsureAppFolder finds or creates the dedicated records folder and stores
// its id on the user. Idempotent by folder name.
func (s *GoogleDriveService) EnsureAppFolder(ctx context.Context, userID uint, ts oauth2.TokenSource) (string, error) {
	srv, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("name='%s' and mimeType='application/vnd.google-apps.folder' and trashed=false", s.folderName)
	list, err := srv.Files.List().Q(query).Spaces("drive").Fields("files(id, name)").Do()
	if err != nil {
		return "", err
	}

	var folderID string
	if len(list.Files) > 0 {
		folderID = list.Files[0].Id
	} else {
		folder, err := srv.Files.Create(&drive.File{
			Name:     s.folderName,
			MimeType: "application/vnd.google-apps.folder",
		}).Fields("id").Do()
		if err != nil {
			return "", err
		}
		folderID = folder.Id
	}

	if err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("drive_folder_id", folderID).Error; err != nil {
		return "", err
	}
	return folderID, nil
}

func (s *GoogleDriveService) folderID(userID uint) (string, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return "", err
	}
	if user.DriveFolderID == "" {
		return "", fmt.Errorf("drive folder not found for user")
	}
	return user.DriveFolderID, nil
}

// ListFiles lists the files inside the user's dedicated folder.
func (s *GoogleDriveService) ListFiles(ctx context.Context, userID uint) ([]*drive.File, error) {
	srv, err := s.client(ctx, userID)
	if err != nil {
		return nil, err
	}

	folderID, err := s.folderID(userID)
	if err != nil {
		return nil, err
	}

	list, err := srv.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed=false", folderID)).
		PageSize(100).
		Fields("files(id, name, mimeType, createdTime, modifiedTime)").
		Do()
	if err != nil {
		return nil, err
	}
	return list.Files, nil
}

// UploadFile uploads content into the user's dedicated folder.
func (s *GoogleDriveService) UploadFile(ctx context.Context, userID uint, fileName, mimeType string, content io.Reader) (*drive.File, error) {
	srv, err := s.client(ctx, userID)
	if err != nil {
		return nil, err
	}

	folderID, err := s.folderID(userID)
	if err != nil {
		return nil, err
	}

	meta := &drive.File{
		Name:    fileName,
		Parents: []string{folderID},
	}
	return srv.Files.Create(meta).
		Media(content).
		Fields("id, name, mimeType").
		Do()
}

// DeleteFile deletes a file by id.
func (s *GoogleDriveService) DeleteFile(ctx context.Context, userID uint, fileID string) error {
	srv, err := s.client(ctx, userID)
	if err != nil {
		return err
	}
	return srv.Files.Delete(fileID).Do()
}

// DownloadFile fetches a file's content and metadata.
func (s *GoogleDriveService) DownloadFile(ctx context.Context, userID uint, fileID string) ([]byte, *drive.File, error) {
	srv, err := s.client(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	meta, err := srv.Files.Get(fileID).Fields("id, name, mimeType").Do()
	if err != nil {
		return nil, nil, err
	}

	resp, err := srv.Files.Get(fileID).Download()
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return data, meta, nil
}
