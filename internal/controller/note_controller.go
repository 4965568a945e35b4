package controller

import (
	"errors"

	"ai-notes-hub/internal/dto"
	"ai-notes-hub/internal/pkg/serverutils"
	"ai-notes-hub/internal/service"
	"ai-notes-hub/pkg/notegen"

	"github.com/gofiber/fiber/v2"
)

const generateFailedMessage = "Failed to generate note. Please try again."

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate", c.Generate)
	r.Get("/notes", c.Index)
	r.Get("/notes/:id", c.Show)
}

func (c *noteController) Generate(ctx *fiber.Ctx) error {
	res, err := c.noteService.Generate(ctx.UserContext(), ctx.Body())
	if err != nil {
		var vErr *notegen.ValidationError
		if errors.As(err, &vErr) {
			return fiber.NewError(fiber.StatusBadRequest, "Validation error: "+vErr.Error())
		}
		// Details are already logged and captured by the service
		return fiber.NewError(fiber.StatusInternalServerError, generateFailedMessage)
	}

	return ctx.Status(fiber.StatusCreated).
		JSON(serverutils.SuccessResponse("Note generated successfully", res))
}

func (c *noteController) Index(ctx *fiber.Ctx) error {
	res, err := c.noteService.List(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, _ := ctx.ParamsInt("id")
	if id < 0 {
		id = 0
	}

	req := dto.ShowNoteRequest{Id: uint(id)}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.UserContext(), req.Id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Note not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}
