package handler

import (
	"context"

	"auksion_bot/internal/domain/entity"
	service "auksion_bot/internal/domain/service/lots"
	"auksion_bot/internal/transport/bot/session"
)

type listingCounter interface {
	Count(ctx context.Context) (int64, error)
}

type Handler struct {
	svc       *service.LotService
	sessions  *session.Store
	listings  listingCounter
	inquiries chan<- entity.Inquiry
}

func New(
	svc *service.LotService,
	sessions *session.Store,
	listings listingCounter,
	inquiries chan<- entity.Inquiry,
) *Handler {
	return &Handler{
		svc:       svc,
		sessions:  sessions,
		listings:  listings,
		inquiries: inquiries,
	}
}
