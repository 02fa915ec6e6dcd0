package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/jobqueue"
	"github.com/waveforge/waveforge/internal/pkg/mail"
	"github.com/waveforge/waveforge/internal/pkg/session"
	"github.com/waveforge/waveforge/internal/pkg/usercontext"
	"github.com/waveforge/waveforge/internal/pkg/utils"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new inactive account and sends the activation mail
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := models.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		return badRequest(c, "Invalid registration data: "+err.Error())
	}
	if err := user.GenerateActivationToken(); err != nil {
		return internalError(c, "Failed to prepare activation")
	}
	user.AvatarURL = utils.GravatarURL(user.Email, 200)

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	if existing, err := userRepo.GetByEmail(req.Email); err == nil && existing != nil {
		return jsonError(c, fiber.StatusConflict, "conflict", "An account with this email already exists")
	}

	if err := userRepo.Create(user); err != nil {
		return internalError(c, "Failed to create account")
	}

	payload := jobqueue.MailDeliveryJobPayload{
		To:      user.Email,
		Subject: "Activate your WaveForge account",
		Body:    activationMailBody(user.Name, user.ActivationToken),
	}
	if _, err := jobqueue.GetManager().GetQueue().EnqueueJob(jobqueue.JobTypeMailDelivery, payload.ToMap()); err != nil {
		// fall back to synchronous delivery if the queue is unavailable
		_ = mail.SendActivationMail(user.Email, user.Name, user.ActivationToken)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":     user.ID,
		"email":  user.Email,
		"status": user.Status,
	})
}

func activationMailBody(username, token string) string {
	// the queue payload carries the final HTML so the worker stays dumb
	return "<p>Hi " + username + ",</p><p>Use this token to activate your account: <strong>" + token + "</strong></p>"
}

// HandleActivate activates an account from the emailed token
func HandleActivate(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return badRequest(c, "Missing activation token")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByActivationToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Invalid activation token")
		}
		return internalError(c, "Failed to activate account")
	}

	user.Status = models.STATUS_ACTIVE
	user.ActivationToken = ""
	if err := userRepo.Update(user); err != nil {
		return internalError(c, "Failed to activate account")
	}

	return c.JSON(fiber.Map{"status": user.Status})
}

// HandleLogin authenticates with email and password and starts a session
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Invalid email or password")
	}
	if !user.IsActive() {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Account is not activated")
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

func startSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return err
	}
	sess.Set(usercontext.KeyUserID, user.ID.String())
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.IsAdmin())
	return sess.Save()
}

// HandleLogout destroys the session
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return internalError(c, "Failed to load session")
	}
	if err := sess.Destroy(); err != nil {
		return internalError(c, "Failed to end session")
	}
	return c.JSON(fiber.Map{"status": "logged_out"})
}

// HandleMe returns account information for the authenticated user
func HandleMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Missing or invalid authentication")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "Failed to load user")
	}

	return c.JSON(fiber.Map{
		"id":            user.ID,
		"username":      user.Name,
		"email":         user.Email,
		"status":        user.Status,
		"is_admin":      user.IsAdmin(),
		"avatar_url":    user.AvatarURL,
		"created_at":    user.CreatedAt.UTC().Format(time.RFC3339),
		"last_login_at": formatTimePtr(user.LastLoginAt),
	})
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
