package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"emcee.events/emcee/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

const guestTokenTTL = 24 * time.Hour

var ErrInvalidGuestToken = errors.New("invalid guest token")

// GuestIdentity is the decoded identity carried by a guest session token.
type GuestIdentity struct {
	GuestID   int64
	EventID   int64
	ProjectID int64
}

type GuestTokenService interface {
	Issue(guest *model.Guest) (string, error)
	Verify(token string) (*GuestIdentity, error)
}

type guestTokenService struct {
	secret []byte
}

func NewGuestTokenService(secret string) GuestTokenService {
	return &guestTokenService{secret: []byte(secret)}
}

// guestClaims keeps IDs as strings so they survive JSON number decoding.
type guestClaims struct {
	jwt.RegisteredClaims
	GuestID   string `json:"gid"`
	EventID   string `json:"eid"`
	ProjectID string `json:"pid"`
}

func (s *guestTokenService) Issue(guest *model.Guest) (string, error) {
	now := time.Now()
	claims := guestClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(guest.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(guestTokenTTL)),
		},
		GuestID:   strconv.FormatInt(guest.ID, 10),
		EventID:   strconv.FormatInt(guest.EventID, 10),
		ProjectID: strconv.FormatInt(guest.ProjectID, 10),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing guest token: %w", err)
	}
	return signed, nil
}

func (s *guestTokenService) Verify(token string) (*GuestIdentity, error) {
	var claims guestClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidGuestToken
	}

	guestID, err := strconv.ParseInt(claims.GuestID, 10, 64)
	if err != nil {
		return nil, ErrInvalidGuestToken
	}
	eventID, err := strconv.ParseInt(claims.EventID, 10, 64)
	if err != nil {
		return nil, ErrInvalidGuestToken
	}
	projectID, err := strconv.ParseInt(claims.ProjectID, 10, 64)
	if err != nil {
		return nil, ErrInvalidGuestToken
	}

	return &GuestIdentity{GuestID: guestID, EventID: eventID, ProjectID: projectID}, nil
}
