package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lalibela_manager/config"
	"lalibela_manager/database"
	"lalibela_manager/model"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// GenerateAccessToken issues the admin bearer credential: HS256, 24 hours,
// account id and username as the only claims.
func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// GetAccountFromToken resolves the Protected() token in Locals to the stored
// admin account. ok is false when the token does not map to a live account.
func GetAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	u := c.Locals("user")
	token, okToken := u.(*jwt.Token)
	if !okToken || token == nil {
		return model.TokenClaim{}, false
	}

	claims, okClaims := token.Claims.(jwt.MapClaims)
	if !okClaims {
		return model.TokenClaim{}, false
	}

	idFloat, okId := claims["accountId"].(float64)
	if !okId || idFloat == 0 {
		return model.TokenClaim{}, false
	}
	username, _ := claims["username"].(string)

	var account model.Account
	if err := database.DB.First(&account, uint(idFloat)).Error; err != nil {
		return model.TokenClaim{}, false
	}

	return model.TokenClaim{AccountId: account.ID, Username: username}, true
}
