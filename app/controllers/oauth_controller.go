package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/utils"
)

// HandleOAuthBegin redirects to the provider's consent page
func HandleOAuthBegin(c *fiber.Ctx) error {
	return gothfiber.BeginAuthHandler(c)
}

// HandleOAuthCallback completes the provider flow, creating the account on
// first login. OAuth accounts are active immediately, the provider already
// verified the email.
func HandleOAuthCallback(c *fiber.Ctx) error {
	gothUser, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "OAuth authentication failed")
	}

	email := strings.ToLower(strings.TrimSpace(gothUser.Email))
	if email == "" {
		return badRequest(c, "OAuth provider did not supply an email address")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return internalError(c, "Failed to load user")
		}

		name := gothUser.NickName
		if name == "" {
			name = gothUser.Name
		}
		if name == "" {
			name = strings.Split(email, "@")[0]
		}

		avatar := gothUser.AvatarURL
		if avatar == "" {
			avatar = utils.GravatarURL(email, 200)
		}

		user = &models.User{
			Name:      name,
			Email:     email,
			Password:  "-", // OAuth accounts have no local password
			Role:      models.ROLE_USER,
			Status:    models.STATUS_ACTIVE,
			AvatarURL: avatar,
		}
		if err := userRepo.Create(user); err != nil {
			return internalError(c, "Failed to create account")
		}
	}

	if !user.IsActive() {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Account is disabled")
	}

	now := time.Now()
	user.LastLoginAt = &now
	_ = userRepo.Update(user)

	if err := startSession(c, user); err != nil {
		return internalError(c, "Failed to start session")
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Name,
		"is_admin": user.IsAdmin(),
	})
}
