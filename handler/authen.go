package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/helper"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

// Login checks the single admin credential and issues the 24-hour bearer
// token. Unknown username and wrong password get the same answer.
func Login(c *fiber.Ctx) error {
	loginInput := new(model.LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Username == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	account, err := helper.GetAccountByUsername(loginInput.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil || !helper.CheckPasswordHash(loginInput.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("credentials do not match"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"token":    token,
		"username": account.Username,
	})
}
