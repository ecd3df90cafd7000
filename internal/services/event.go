package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"research-admin/internal/dto"
	"research-admin/internal/entities"
	"research-admin/internal/repositories"
	apperrors "research-admin/pkg/errors"
	"research-admin/pkg/types"
	"research-admin/pkg/utils"
)

type EventServiceInterface interface {
	GetEvents(ctx context.Context, filter types.Filter, publishedOnly bool) ([]dto.EventDTO, uint64, error)
	FindEvent(ctx context.Context, id uint64) (*dto.EventDTO, error)
	CreateEvent(ctx context.Context, payload dto.CreateEventDTO) (*dto.EventDTO, error)
	UpdateEvent(ctx context.Context, id uint64, payload dto.UpdateEventDTO) (*dto.EventDTO, error)
	DeleteEvent(ctx context.Context, id uint64) error
	AttachImage(ctx context.Context, id uint64, path string) error
}

type EventService struct {
	eventRepository repositories.EventRepositoryInterface
	logger          *zap.Logger
}

func NewEventService(eventRepository repositories.EventRepositoryInterface, logger *zap.Logger) EventServiceInterface {
	return &EventService{
		eventRepository: eventRepository,
		logger:          logger,
	}
}

func mapEventToDTO(e entities.Event) dto.EventDTO {
	return dto.EventDTO{
		ID:        e.ID,
		Title:     e.Title,
		Body:      e.Body,
		Location:  e.Location,
		StartsAt:  utils.FormatTimestampPtr(e.StartsAt),
		EndsAt:    utils.FormatTimestampPtr(e.EndsAt),
		ImagePath: e.ImagePath,
		Published: e.Published,
		CreatedAt: utils.FormatTimestamp(e.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(e.UpdatedAt),
	}
}

func (s *EventService) GetEvents(ctx context.Context, filter types.Filter, publishedOnly bool) ([]dto.EventDTO, uint64, error) {
	events, total, err := s.eventRepository.GetEvents(ctx, filter, publishedOnly)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, mapEventToDTO(e))
	}
	return out, total, nil
}

func (s *EventService) FindEvent(ctx context.Context, id uint64) (*dto.EventDTO, error) {
	e, err := s.eventRepository.FindEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	mapped := mapEventToDTO(*e)
	return &mapped, nil
}

func (s *EventService) CreateEvent(ctx context.Context, payload dto.CreateEventDTO) (*dto.EventDTO, error) {
	event := entities.Event{
		Title:     payload.Title,
		Body:      payload.Body,
		Location:  payload.Location.Ptr(),
		Published: payload.Published,
	}
	if payload.StartsAt.Valid {
		t := payload.StartsAt.Time
		event.StartsAt = &t
	}
	if payload.EndsAt.Valid {
		t := payload.EndsAt.Time
		event.EndsAt = &t
	}

	if err := validateEventWindow(event); err != nil {
		return nil, err
	}

	id, err := s.eventRepository.CreateEvent(ctx, event)
	if err != nil {
		s.logger.Error("CreateEvent: insert failed", zap.String("title", payload.Title), zap.Error(err))
		return nil, err
	}

	return s.FindEvent(ctx, id)
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint64, payload dto.UpdateEventDTO) (*dto.EventDTO, error) {
	current, err := s.eventRepository.FindEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current
	if payload.Title != nil {
		merged.Title = *payload.Title
	}
	if payload.Body != nil {
		merged.Body = *payload.Body
	}
	if payload.Location.Valid {
		merged.Location = payload.Location.Ptr()
	}
	if payload.StartsAt.Valid {
		t := payload.StartsAt.Time
		merged.StartsAt = &t
	}
	if payload.EndsAt.Valid {
		t := payload.EndsAt.Time
		merged.EndsAt = &t
	}
	if payload.Published != nil {
		merged.Published = *payload.Published
	}

	if err := validateEventWindow(merged); err != nil {
		return nil, err
	}

	if err := s.eventRepository.UpdateEvent(ctx, id, merged); err != nil {
		return nil, err
	}
	return s.FindEvent(ctx, id)
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint64) error {
	return s.eventRepository.DeleteEvent(ctx, id)
}

func (s *EventService) AttachImage(ctx context.Context, id uint64, path string) error {
	return s.eventRepository.SetImagePath(ctx, id, path)
}

func validateEventWindow(e entities.Event) error {
	if e.StartsAt != nil && e.EndsAt != nil && e.EndsAt.Before(*e.StartsAt) {
		return apperrors.NewHttpError(http.StatusBadRequest, "invalid event window", nil, nil).
			WithDetails(map[string]string{"ends_at": "must not be before starts_at"})
	}
	return nil
}
