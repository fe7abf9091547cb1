package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/storage"
	"github.com/ManuelReschke/NewsFox/internal/pkg/utils"
)

// ProfileController serves public author profiles
type ProfileController struct {
	profileRepo repository.UserProfileRepository
	store       *storage.Store
}

func NewProfileController(profileRepo repository.UserProfileRepository, store *storage.Store) *ProfileController {
	return &ProfileController{profileRepo: profileRepo, store: store}
}

// HandleGet returns the public part of a profile. Profiles without avatar get a Gravatar URL.
func (pc *ProfileController) HandleGet(c *fiber.Ctx) error {
	profile, err := pc.profileRepo.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handleError(c, err)
	}

	avatarURL := utils.GravatarURL(profile.User.Email, 0)
	if profile.Avatar != "" && pc.store != nil {
		avatarURL = pc.store.URL(profile.Avatar)
	}

	return c.JSON(fiber.Map{
		"slug":       profile.Slug,
		"username":   profile.User.Username,
		"avatar":     profile.Avatar,
		"avatar_url": avatarURL,
	})
}
