package usecases

import (
	"context"
	"slices"

	"github.com/tinytickets/tinytickets/internal/application/notification"
	"github.com/tinytickets/tinytickets/internal/domain/asset"
	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// ExportTicketsUseCase renders every ticket with its asset and comments as
// one HTML document.
type ExportTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	assetRepo   asset.Repository
	commentRepo ticket.CommentRepository
	txMgr       TransactionRunner
	renderer    notif.Renderer
	title       string
	logger      logger.Interface
}

func NewExportTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	assetRepo asset.Repository,
	commentRepo ticket.CommentRepository,
	txMgr TransactionRunner,
	renderer notif.Renderer,
	title string,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo:  ticketRepo,
		assetRepo:   assetRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		renderer:    renderer,
		title:       title,
		logger:      logger,
	}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context) (string, error) {
	var (
		tickets  []*ticket.Ticket
		assets   []*asset.Asset
		comments []*ticket.Comment
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if tickets, err = uc.ticketRepo.ListAll(txCtx); err != nil {
			return err
		}
		if assets, err = uc.assetRepo.ListAll(txCtx); err != nil {
			return err
		}
		comments, err = uc.commentRepo.ListAll(txCtx)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to load export data", "error", err)
		return "", err
	}

	_, body, err := uc.renderer.Render(notif.TemplateExport, buildExportView(uc.title, tickets, assets, comments))
	if err != nil {
		uc.logger.Errorw("failed to render export", "error", err)
		return "", errors.NewInternalError("failed to render export").Wrap(err)
	}

	uc.logger.Infow("tickets exported", "tickets", len(tickets))
	return body, nil
}

// buildExportView joins tickets with their asset (nil when it was deleted)
// and their comments, newest first.
func buildExportView(title string, tickets []*ticket.Ticket, assets []*asset.Asset, comments []*ticket.Comment) notif.ExportView {
	assetsByID := make(map[int64]*asset.Asset, len(assets))
	for _, a := range assets {
		assetsByID[a.ID()] = a
	}

	commentsByTicket := make(map[int64][]*ticket.Comment)
	for _, c := range comments {
		commentsByTicket[c.TicketID()] = append(commentsByTicket[c.TicketID()], c)
	}

	entries := make([]notif.ExportEntry, 0, len(tickets))
	for _, t := range tickets {
		own := commentsByTicket[t.ID()]
		slices.SortStableFunc(own, func(a, b *ticket.Comment) int {
			if c := b.Time().Compare(a.Time()); c != 0 {
				return c
			}
			if a.ID() > b.ID() {
				return -1
			}
			if a.ID() < b.ID() {
				return 1
			}
			return 0
		})

		entries = append(entries, notif.ExportEntry{
			Ticket:   notification.TicketData(t),
			Asset:    notification.AssetData(assetsByID[t.AssetID()]),
			Comments: notification.CommentsData(own),
		})
	}

	return notif.ExportView{Title: title, Entries: entries}
}
