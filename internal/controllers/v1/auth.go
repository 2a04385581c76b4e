package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/analizador-gastos/backend/internal/httputil"
	"github.com/analizador-gastos/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const contextUserID = "userID"

// RegisterAuthRoutes registers the unauthenticated auth endpoints.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.POST("/register", Register)
	r.POST("/login", Login)
}

type Credentials struct {
	Email    string `json:"email" example:"maria@example.com"`
	Password string `json:"password" example:"hunter2"`
	Name     string `json:"name,omitempty" example:"María"` // Only used on registration
}

type TokenResponse struct {
	Data  *Token  `json:"data"`
	Error *string `json:"error" example:"no user exists for this email and password combination"`
}

type Token struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
}

func issueToken(userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// @Summary		Register
// @Description	Registers a new user and returns an access token
// @Tags			Auth
// @Produce		json
// @Success		201			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		409			{object}	TokenResponse
// @Param			credentials	body		Credentials	true	"Email, password and display name"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var credentials Credentials

	err := httputil.BindData(c, &credentials)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	if credentials.Email == "" || credentials.Password == "" {
		s := errEmailPasswordSet.Error()
		c.JSON(http.StatusBadRequest, TokenResponse{Error: &s})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{Error: &s})
		return
	}

	user := models.User{
		Email:        credentials.Email,
		PasswordHash: string(hash),
		Name:         credentials.Name,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	token, err := issueToken(user.ID)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Data: &Token{Token: token, UserID: user.ID}})
}

// @Summary		Login
// @Description	Verifies the credentials and returns an access token
// @Tags			Auth
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Param			credentials	body		Credentials	true	"Email and password"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var credentials Credentials

	err := httputil.BindData(c, &credentials)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.Where(&models.User{Email: strings.ToLower(strings.TrimSpace(credentials.Email))}).First(&user).Error
	if err != nil {
		// Same answer for unknown email and wrong password
		s := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, TokenResponse{Error: &s})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password))
	if err != nil {
		s := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, TokenResponse{Error: &s})
		return
	}

	token, err := issueToken(user.ID)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Data: &Token{Token: token, UserID: user.ID}})
}

// RequireAuth only lets requests with a valid bearer token pass and stores
// the authenticated user's ID in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, e(errUnauthorized))
			return
		}

		claims := jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, e(errUnauthorized))
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, e(errUnauthorized))
			return
		}

		// The user might have been deleted after the token was issued
		err = models.DB.First(&models.User{}, userID).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, e(errUnauthorized))
			return
		}

		c.Set(contextUserID, userID)
		c.Next()
	}
}

// currentUserID returns the ID of the authenticated user.
func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

// currentUser loads the authenticated user.
func currentUser(c *gin.Context, db *gorm.DB) (models.User, error) {
	var user models.User
	err := db.First(&user, currentUserID(c)).Error
	return user, err
}
