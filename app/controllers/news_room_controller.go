package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsFox/app/models"
	"github.com/ManuelReschke/NewsFox/app/repository"
	"github.com/ManuelReschke/NewsFox/internal/pkg/utils"
)

type newsRoomRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Sequence    *string `json:"sequence"`
	Status      *string `json:"status"`
}

func (r *newsRoomRequest) apply(room *models.NewsRoom) {
	if r.Title != nil {
		room.Title = *r.Title
	}
	if r.Description != nil {
		room.Description = utils.SanitizeHTML(*r.Description)
	}
	if r.Sequence != nil {
		seq := *r.Sequence
		if seq == "" {
			room.Sequence = nil
		} else {
			room.Sequence = &seq
		}
	}
	if r.Status != nil {
		room.Status = *r.Status
	}
}

// NewsRoomController serves the news room API
type NewsRoomController struct {
	roomRepo repository.NewsRoomRepository
}

func NewNewsRoomController(roomRepo repository.NewsRoomRepository) *NewsRoomController {
	return &NewsRoomController{roomRepo: roomRepo}
}

func (nc *NewsRoomController) HandleList(c *fiber.Ctx) error {
	rooms, err := nc.roomRepo.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"data": rooms})
}

func (nc *NewsRoomController) HandleCreate(c *fiber.Ctx) error {
	var req newsRoomRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	room := &models.NewsRoom{}
	req.apply(room)
	if err := nc.roomRepo.Create(c.UserContext(), room); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()
	return c.Status(fiber.StatusCreated).JSON(room)
}

func (nc *NewsRoomController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	var req newsRoomRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	room, err := nc.roomRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	req.apply(room)
	if err := nc.roomRepo.Update(c.UserContext(), room); err != nil {
		return handleError(c, err)
	}
	return c.JSON(room)
}

func (nc *NewsRoomController) HandleDelete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}
	// news rows of the room are removed by the cascade
	if err := nc.roomRepo.Delete(c.UserContext(), id); err != nil {
		return handleError(c, err)
	}
	invalidateStatistics()
	return c.SendStatus(fiber.StatusNoContent)
}
