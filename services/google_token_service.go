package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hajruuudin/life-line/config"
	"github.com/hajruuudin/life-line/models"
)

// ErrGoogleNotConnected is returned when a Drive or Calendar call is made for
// a user without stored Google credentials.
var ErrGoogleNotConnected = errors.New("Google credentials not found. Please authenticate first.")

// refreshWindow is how close to expiry a token may get before it is
// refreshed ahead of use.
const refreshWindow = 5 * time.Minute

// GoogleTokenService owns the stored OAuth token pair shared by the Drive and
// Calendar adapters: loading it, refreshing it near expiry, and persisting
// rotated tokens.
type GoogleTokenService struct {
	db    *gorm.DB
	oauth *oauth2.Config
}

func NewGoogleTokenService(db *gorm.DB, cfg *config.Config) *GoogleTokenService {
	return &GoogleTokenService{
		db:    db,
		oauth: NewGoogleOAuthConfig(cfg),
	}
}

// NewGoogleOAuthConfig builds the oauth2 config used across the Google
// adapters.
func NewGoogleOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			drive.DriveScope,
			calendar.CalendarScope,
		},
		Endpoint: google.Endpoint,
	}
}

// TokenSource returns a token source for the user's stored credentials,
// refreshing and persisting them first when expired or about to expire.
func (s *GoogleTokenService) TokenSource(ctx context.Context, userID uint) (oauth2.TokenSource, error) {
	var creds models.GoogleCredentials
	err := s.db.Where("user_id = ?", userID).First(&creds).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoogleNotConnected
	}
	if err != nil {
		return nil, err
	}

	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		Expiry:       creds.TokenExpiry,
	}

	if time.Until(token.Expiry) < refreshWindow {
		fresh, err := s.oauth.TokenSource(ctx, token).Token()
		if err != nil {
			return nil, err
		}
		if fresh.RefreshToken == "" {
			fresh.RefreshToken = token.RefreshToken
		}
		if err := s.SaveCredentials(userID, fresh.AccessToken, fresh.RefreshToken, fresh.Expiry); err != nil {
			return nil, err
		}
		token = fresh
	}

	return oauth2.StaticTokenSource(token), nil
}

// SaveCredentials upserts the token pair for a user.
func (s *GoogleTokenService) SaveCredentials(userID uint, accessToken, refreshToken string, expiry time.Time) error {
	if expiry.IsZero() {
		expiry = time.Now().Add(24 * time.Hour)
	}
	creds := models.GoogleCredentials{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenExpiry:  expiry,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token", "refresh_token", "token_expiry", "updated_at",
		}),
	}).Create(&creds).Error
}
