package service

import (
	"context"
	"fmt"

	"packshift/infras/otel"
	"packshift/internal/domains/contact/model/dto"
	"packshift/internal/domains/contact/repository"
	"packshift/shared/constant"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Create(ctx context.Context, req dto.ContactRequest) error
}

type serviceImpl struct {
	repo repository.Contact
	otel otel.Otel
}

func New(repo repository.Contact, otel otel.Otel) Contact {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.ContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to store contact message")

		return fmt.Errorf("failed to store contact message: %w", err)
	}

	return nil
}
