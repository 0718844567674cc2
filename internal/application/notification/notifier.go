// Package notification renders and delivers lifecycle mails without letting
// mail failures reach the request that caused them.
package notification

import (
	"context"
	"fmt"

	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/shared/goroutine"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

// ViewLoader builds a template view when the notification runs. It lets
// callers defer reads that should not hold up the response.
type ViewLoader func(ctx context.Context) (any, error)

// Notifier dispatches templated mails. Errors are logged, never returned.
type Notifier struct {
	renderer notif.Renderer
	mailer   notif.Mailer
	group    *goroutine.Group
	logger   logger.Interface
}

func NewNotifier(renderer notif.Renderer, mailer notif.Mailer, logger logger.Interface) *Notifier {
	return &Notifier{
		renderer: renderer,
		mailer:   mailer,
		group:    goroutine.NewGroup(logger),
		logger:   logger,
	}
}

// Notify renders and sends a mail in the background.
func (n *Notifier) Notify(ctx context.Context, template, to string, view any) {
	n.NotifyWith(ctx, template, to, func(context.Context) (any, error) {
		return view, nil
	})
}

// NotifyWith runs load and then renders and sends the result in the
// background. The work outlives ctx's cancellation.
func (n *Notifier) NotifyWith(ctx context.Context, template, to string, load ViewLoader) {
	detached := context.WithoutCancel(ctx)
	n.group.Go("notify:"+template, func() {
		view, err := load(detached)
		if err != nil {
			n.logger.Errorw("failed to load notification data",
				"template", template,
				"error", err,
			)
			return
		}
		n.deliver(detached, template, to, view)
	})
}

// NotifySync renders and sends a mail on the calling goroutine. A panic in
// the renderer or mailer is logged and swallowed like any other failure.
func (n *Notifier) NotifySync(ctx context.Context, template, to string, view any) {
	goroutine.Run(n.logger, "notify-sync:"+template, func() {
		n.deliver(ctx, template, to, view)
	})
}

// Wait blocks until every background notification has finished.
func (n *Notifier) Wait() {
	n.group.Wait()
}

func (n *Notifier) deliver(ctx context.Context, template, to string, view any) {
	if err := n.send(ctx, template, to, view); err != nil {
		n.logger.Errorw("notification not delivered",
			"template", template,
			"to", utils.MaskRecipients(to),
			"error", err,
		)
		return
	}
	n.logger.Infow("notification delivered",
		"template", template,
		"to", utils.MaskRecipients(to),
	)
}

func (n *Notifier) send(ctx context.Context, template, to string, view any) error {
	subject, body, err := n.renderer.Render(template, view)
	if err != nil {
		return fmt.Errorf("render %s: %w", template, err)
	}
	if err := n.mailer.Send(ctx, to, subject, body); err != nil {
		return fmt.Errorf("send %s: %w", template, err)
	}
	return nil
}
