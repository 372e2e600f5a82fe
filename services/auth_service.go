package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/hajruuudin/life-line/config"
	"github.com/hajruuudin/life-line/models"
	"github.com/hajruuudin/life-line/utils"
)

// AuthService handles the Google OAuth login flow and local session tokens.
type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	oauth  *oauth2.Config
	tokens *GoogleTokenService
	drive  *GoogleDriveService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, tokens *GoogleTokenService, drive *GoogleDriveService) *AuthService {
	return &AuthService{
		db:     db,
		cfg:    cfg,
		oauth:  NewGoogleOAuthConfig(cfg),
		tokens: tokens,
		drive:  drive,
	}
}

// GoogleLoginURL returns the provider authorization URL with offline access
// so a refresh token is issued.
func (s *AuthService) GoogleLoginURL() string {
	return s.oauth.AuthCodeURL(
		uuid.NewString(),
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// HandleCallback exchanges the authorization code, upserts the local user and
// credentials, ensures the dedicated Drive folder exists, and issues the
// local session token.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (string, *models.User, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	ts := s.oauth.TokenSource(ctx, token)
	infoService, err := oauth2api.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return "", nil, fmt.Errorf("failed to build userinfo client: %w", err)
	}
	info, err := infoService.Userinfo.Get().Do()
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch user info: %w", err)
	}

	var user models.User
	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", info.Email).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				Email:              info.Email,
				Name:               info.Name,
				GoogleID:           info.Id,
				GoogleOauthToken:   token.AccessToken,
				GoogleRefreshToken: token.RefreshToken,
				APIKey:             uuid.NewString(),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			updates := map[string]interface{}{
				"google_oauth_token":   token.AccessToken,
				"google_refresh_token": token.RefreshToken,
			}
			if user.APIKey == "" {
				updates["api_key"] = uuid.NewString()
			}
			if err := tx.Model(&user).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	if err := s.tokens.SaveCredentials(user.ID, token.AccessToken, token.RefreshToken, token.Expiry); err != nil {
		return "", nil, err
	}

	folderID, err := s.drive.EnsureAppFolder(ctx, user.ID, ts)
	if err != nil {
		return "", nil, fmt.Errorf("failed to ensure Drive folder: %w", err)
	}
	log.Infof("Ensured Drive folder %s for user %d", folderID, user.ID)

	if err := s.db.First(&user, user.ID).Error; err != nil {
		return "", nil, err
	}

	accessToken, err := utils.GenerateJWT(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpireMinutes)
	if err != nil {
		return "", nil, err
	}
	return accessToken, &user, nil
}

// FindUserByID resolves a session subject to a user record.
func (s *AuthService) FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, notFound("user not found")
	}
	return &user, nil
}

// FindUserByAPIKey resolves a service-to-service API key to a user record.
func (s *AuthService) FindUserByAPIKey(apiKey string) (*models.User, error) {
	if apiKey == "" {
		return nil, notFound("user not found")
	}
	var user models.User
	if err := s.db.Where("api_key = ?", apiKey).First(&user).Error; err != nil {
		return nil, notFound("user not found")
	}
	return &user, nil
}
