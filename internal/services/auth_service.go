package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"sync"
	"time"

	"kalahaat/internal/models"
	"kalahaat/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const loginCodeTTL = 5 * time.Minute

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// SMSSender delivers one-time login codes. Delivery is simulated in this
// deployment; the interface keeps the auth service testable.
type SMSSender interface {
	SendLoginCode(mobile, code string) error
}

// Mailer delivers password-reset notifications. Sending does not change
// the password; it is a notification stub.
type Mailer interface {
	SendPasswordReset(email, name string) error
}

// AdminAccount configures the distinguished, always-verified admin
// identity that lives outside the team member set.
type AdminAccount struct {
	Username string
	Password string
	Email    string
	Name     string
}

// loginCode is a single-use code held per mobile number. A newer request
// for the same number supersedes the previous code.
type loginCode struct {
	code      string
	expiresAt time.Time
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	teamRepo    repositories.TeamMemberRepository
	artisanRepo repositories.ArtisanRepository
	sms         SMSSender
	mailer      Mailer
	jwtSecret   []byte
	tokenDurat  time.Duration // Duration for which JWT is valid

	adminUsername string
	adminHash     []byte
	adminEmail    string
	adminName     string

	codesMu sync.Mutex
	codes   map[string]loginCode
}

// LoginResult is the outcome of a successful authentication step.
type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// NewAuthService creates a new AuthService. The admin password is hashed
// once here and never held in plain text afterwards.
func NewAuthService(
	teamRepo repositories.TeamMemberRepository,
	artisanRepo repositories.ArtisanRepository,
	sms SMSSender,
	mailer Mailer,
	jwtSecret string,
	admin AdminAccount,
) (*AuthService, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AuthService{
		teamRepo:      teamRepo,
		artisanRepo:   artisanRepo,
		sms:           sms,
		mailer:        mailer,
		jwtSecret:     []byte(jwtSecret),
		tokenDurat:    24 * time.Hour, // Token valid for 24 hours
		adminUsername: admin.Username,
		adminHash:     adminHash,
		adminEmail:    admin.Email,
		adminName:     admin.Name,
		codes:         make(map[string]loginCode),
	}, nil
}

// LoginWithPassword authenticates the admin or a verified team member.
// An unverified team member with the correct password gets ErrNotVerified
// so the caller can distinguish "wrong credentials" from "not approved yet".
func (s *AuthService) LoginWithPassword(username, password string) (*LoginResult, error) {
	if username == s.adminUsername {
		if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		user := &models.User{ID: models.AdminUserID, Name: s.adminName, Role: models.RoleAdmin}
		return s.issueToken(user)
	}

	member, err := s.teamRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !member.IsVerified {
		return nil, ErrNotVerified
	}
	return s.issueToken(member.AsUser())
}

// LoginAsCustomer logs in a customer without any credential check. This is
// the intentionally-unauthenticated demo path; it is logged so operators
// can see it being used.
func (s *AuthService) LoginAsCustomer(name string) *models.User {
	if name == "" {
		name = "Customer"
	}
	user := &models.User{
		ID:   "cust-" + uuid.New().String(),
		Name: name,
		Role: models.RoleCustomer,
	}
	logrus.WithField("customer_id", user.ID).Info("customer logged in without credential check")
	return user
}

// RequestCode validates the mobile number, generates a single-use login
// code for the matching verified artisan and hands it to the SMS sender.
// The code supersedes any previous one for the same number.
func (s *AuthService) RequestCode(mobile string) error {
	if !mobilePattern.MatchString(mobile) {
		return ErrInvalidMobile
	}
	artisan, err := s.artisanRepo.GetByContact(mobile)
	if err != nil {
		return ErrMobileNotFound
	}
	if !artisan.IsVerified {
		return ErrNotVerified
	}

	code, err := generateLoginCode()
	if err != nil {
		return fmt.Errorf("failed to generate login code: %w", err)
	}

	s.codesMu.Lock()
	s.codes[mobile] = loginCode{code: code, expiresAt: time.Now().Add(loginCodeTTL)}
	s.codesMu.Unlock()

	if err := s.sms.SendLoginCode(mobile, code); err != nil {
		logrus.WithError(err).WithField("mobile", mobile).Warn("failed to send login code")
	}
	return nil
}

// VerifyCode checks the most recently generated code for the mobile number
// and logs the artisan in. A code is invalidated the moment it succeeds;
// resubmitting the same code fails.
func (s *AuthService) VerifyCode(mobile, code string) (*LoginResult, error) {
	s.codesMu.Lock()
	pending, ok := s.codes[mobile]
	if ok && time.Now().After(pending.expiresAt) {
		delete(s.codes, mobile)
		ok = false
	}
	if !ok || pending.code != code {
		s.codesMu.Unlock()
		return nil, ErrInvalidCode
	}
	delete(s.codes, mobile) // one-time use
	s.codesMu.Unlock()

	artisan, err := s.artisanRepo.GetByContact(mobile)
	if err != nil {
		return nil, ErrMobileNotFound
	}
	return s.issueToken(artisan.AsUser())
}

// RegisterTeamMemberRequest is the staff self-registration payload.
type RegisterTeamMemberRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Contact  string `json:"contact" validate:"required,len=10,numeric"`
	Email    string `json:"email" validate:"required,email"`
}

// RegisterTeamMember creates an unverified staff account. It does not log
// the actor in; the account is unusable for the password path until an
// admin verifies it.
func (s *AuthService) RegisterTeamMember(req RegisterTeamMemberRequest) (*models.TeamMember, error) {
	if req.Username == s.adminUsername {
		return nil, ErrUsernameTaken
	}
	if existing, err := s.teamRepo.GetByUsername(req.Username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.TeamMember{
		Name:       req.Name,
		Username:   req.Username,
		Password:   string(hashedPassword),
		Contact:    req.Contact,
		Email:      req.Email,
		IsVerified: false,
	}
	if err := s.teamRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to register team member: %w", err)
	}

	// For security, do not return the password hash
	member.Password = ""
	return member, nil
}

// RequestPasswordReset looks up a team member or the admin by email and
// sends a reset notification. It does not change the password.
func (s *AuthService) RequestPasswordReset(email string) error {
	if email == s.adminEmail {
		return s.mailer.SendPasswordReset(email, s.adminName)
	}
	member, err := s.teamRepo.GetByEmail(email)
	if err != nil {
		return ErrEmailNotFound
	}
	return s.mailer.SendPasswordReset(member.Email, member.Name)
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) issueToken(user *models.User) (*LoginResult, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":     time.Now().Unix(),                   // Issued at time
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{User: user, Token: tokenString}, nil
}

// generateLoginCode returns a random 6-digit numeric code.
func generateLoginCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
