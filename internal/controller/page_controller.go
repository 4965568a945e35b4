package controller

import (
	"bytes"
	"embed"
	"html/template"

	"ai-notes-hub/internal/dto"
	"ai-notes-hub/internal/service"
	"ai-notes-hub/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

const listSummaryLength = 300

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("pages").
		Funcs(template.FuncMap{
			"formatDate": utils.FormatDate,
			"truncate":   utils.TruncateText,
		}).
		ParseFS(templateFS, "templates/*.html"),
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
}

type pageController struct {
	noteService service.INoteService
}

func NewPageController(noteService service.INoteService) IPageController {
	return &pageController{
		noteService: noteService,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
}

type homePage struct {
	Notes         []*dto.NoteListItem
	SummaryLength int
}

func (c *pageController) Home(ctx *fiber.Ctx) error {
	notes, err := c.noteService.List(ctx.UserContext())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "notes.html", homePage{
		Notes:         notes,
		SummaryLength: listSummaryLength,
	}); err != nil {
		return err
	}

	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}
