package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/utils"
)

// SettingController serves the site settings singleton
type SettingController struct {
	settingRepo repository.SettingRepository
}

func NewSettingController(settingRepo repository.SettingRepository) *SettingController {
	return &SettingController{settingRepo: settingRepo}
}

// HandleGet returns the stored settings or the defaults when none were saved yet
func (sc *SettingController) HandleGet(c *fiber.Ctx) error {
	settings, err := sc.settingRepo.Get(c.UserContext())
	if errors.Is(err, repository.ErrNotFound) {
		settings = models.DefaultSiteSettings()
	} else if err != nil {
		return handleError(c, err)
	}

	return c.JSON(fiber.Map{
		"settings": settings,
		"social":   settings.SocialLinks(),
	})
}

// HandleUpdate replaces the settings row with the request body
func (sc *SettingController) HandleUpdate(c *fiber.Ctx) error {
	settings := &models.SiteSettings{}
	if err := parseBody(c, settings); err != nil {
		return handleError(c, err)
	}
	settings.MetaDescription = utils.StripHTML(settings.MetaDescription)

	if err := sc.settingRepo.Save(c.UserContext(), settings); err != nil {
		return handleError(c, err)
	}
	return c.JSON(settings)
}
