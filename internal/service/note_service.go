package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-notes-hub/internal/dto"
	"ai-notes-hub/internal/entity"
	"ai-notes-hub/internal/pkg/errortracker"
	"ai-notes-hub/internal/pkg/logger"
	"ai-notes-hub/internal/repository/memory"
	"ai-notes-hub/internal/repository/specification"
	"ai-notes-hub/internal/repository/unitofwork"
	"ai-notes-hub/pkg/events"
	"ai-notes-hub/pkg/metrics"
	"ai-notes-hub/pkg/notegen"
	"ai-notes-hub/pkg/utils"
)

const (
	GenerateEndpoint  = "/api/generate"
	GenerateOperation = "generate_note"

	eventPublishTimeout = 5 * time.Second
)

type INoteService interface {
	Generate(ctx context.Context, body []byte) (*dto.NoteResponse, error)
	List(ctx context.Context) ([]*dto.NoteListItem, error)
	Show(ctx context.Context, id uint) (*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      *notegen.Generator
	tracker        errortracker.Tracker
	listCache      *memory.NoteListCache
	eventPublisher events.Publisher
	metrics        *metrics.Metrics
	logger         logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	generator *notegen.Generator,
	tracker errortracker.Tracker,
	listCache *memory.NoteListCache,
	eventPublisher events.Publisher,
	metrics *metrics.Metrics,
	logger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		generator:      generator,
		tracker:        tracker,
		listCache:      listCache,
		eventPublisher: eventPublisher,
		metrics:        metrics,
		logger:         logger,
	}
}

// Generate runs the whole pipeline for one request body. Every failure is
// returned as a *notegen.ValidationError or a *notegen.PipelineError.
func (c *noteService) Generate(ctx context.Context, body []byte) (*dto.NoteResponse, error) {
	start := time.Now()

	note, err := c.generate(ctx, body)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = string(notegen.KindOf(err))
		c.report(err, body)
	}
	if c.metrics != nil {
		c.metrics.ObserveGeneration(outcome, time.Since(start))
	}
	if err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (c *noteService) generate(ctx context.Context, body []byte) (*entity.Note, error) {
	req, err := notegen.ParseGenerationRequest(body)
	if err != nil {
		return nil, err
	}

	draft, err := c.generator.GenerateNote(ctx, req.Topic)
	if err != nil {
		var outErr *notegen.OutputError
		if errors.As(err, &outErr) && outErr.Divergent() {
			c.logger.Warn("NoteService", "Output checks disagreed", map[string]interface{}{
				"topic":            req.Topic,
				"predicate_passed": outErr.PredicatePassed,
				"schema_error":     fmt.Sprint(outErr.SchemaErr),
			})
		}
		return nil, err
	}

	if ok, problems := utils.ValidateNoteData(utils.NoteData{
		Title:   draft.Response.Title,
		Summary: draft.Response.Summary,
		Content: draft.Response.Content,
	}); !ok {
		c.logger.Warn("NoteService", "Generated note has quality issues", map[string]interface{}{
			"topic":    req.Topic,
			"problems": problems,
		})
	}

	note := &entity.Note{
		Title:     draft.Response.Title,
		Summary:   draft.Response.Summary,
		Content:   draft.Response.Content,
		CreatedAt: time.Now(),
	}

	if err := c.persist(ctx, note); err != nil {
		return nil, notegen.NewPipelineError(notegen.KindPersistence, err)
	}

	if c.listCache != nil {
		c.listCache.Invalidate()
	}

	c.logger.Info("NoteService", "Note generated", map[string]interface{}{
		"note_id":       note.Id,
		"response_kind": draft.Kind.String(),
	})

	c.publishGenerated(note, req.Topic)

	return note, nil
}

func (c *noteService) persist(ctx context.Context, note *entity.Note) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return err
	}

	return uow.Commit()
}

// publishGenerated emits NOTE_GENERATED in the background. The note is
// already stored, so a slow or lost event never delays or fails the request.
func (c *noteService) publishGenerated(note *entity.Note, topic string) {
	if c.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: events.TypeNoteGenerated,
		Data: map[string]interface{}{
			"note_id": note.Id,
			"title":   note.Title,
			"topic":   topic,
		},
		OccurredAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), eventPublishTimeout)
		defer cancel()

		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.logger.Warn("NoteService", "Failed to publish NOTE_GENERATED event", map[string]interface{}{
				"note_id": note.Id,
				"error":   err.Error(),
			})
		}
	}()
}

// report logs a failed generation and forwards everything except bad
// input to the error tracker.
func (c *noteService) report(err error, body []byte) {
	kind := notegen.KindOf(err)

	if kind == notegen.KindValidation {
		c.logger.Info("NoteService", "Rejected generation request", map[string]interface{}{
			"reason": err.Error(),
		})
		return
	}

	c.logger.Error("NoteService", "Note generation failed", map[string]interface{}{
		"error":      err.Error(),
		"error_kind": string(kind),
	})

	if c.tracker != nil {
		c.tracker.CaptureException(err,
			map[string]string{
				"endpoint":   GenerateEndpoint,
				"operation":  GenerateOperation,
				"error_kind": string(kind),
			},
			map[string]interface{}{
				"request_body": string(body),
			},
		)
	}
}

func (c *noteService) List(ctx context.Context) ([]*dto.NoteListItem, error) {
	if c.metrics != nil {
		c.metrics.NotesListed.Inc()
	}

	notes, cached := c.cachedNotes()
	if !cached {
		var version uint64
		if c.listCache != nil {
			version = c.listCache.Version()
		}

		uow := c.uowFactory.NewUnitOfWork(ctx)
		found, err := uow.NoteRepository().FindAll(ctx, specification.NewestFirst())
		if err != nil {
			return nil, err
		}
		notes = found
		if c.listCache != nil {
			c.listCache.Save(notes, version)
		}
	}

	res := make([]*dto.NoteListItem, 0, len(notes))
	for _, note := range notes {
		res = append(res, &dto.NoteListItem{
			Id:        note.Id,
			Title:     note.Title,
			Summary:   note.Summary,
			Slug:      utils.GenerateSlug(note.Title),
			CreatedAt: note.CreatedAt,
		})
	}

	return res, nil
}

func (c *noteService) cachedNotes() ([]*entity.Note, bool) {
	if c.listCache == nil {
		return nil, false
	}
	return c.listCache.Get()
}

func (c *noteService) Show(ctx context.Context, id uint) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil // Not found
	}

	return toNoteResponse(note), nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Summary:   note.Summary,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
}
