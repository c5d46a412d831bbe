package hooks

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/denidash/internal/client/api"
	"github.com/dmitrijs2005/denidash/internal/client/apperr"
	"github.com/dmitrijs2005/denidash/internal/client/notify"
	"github.com/dmitrijs2005/denidash/internal/logging"
)

// Deps are shared by every hook. Nil fields get silent defaults.
type Deps struct {
	Notifier *notify.Notifier
	Logger   logging.Logger
}

type base struct {
	notify *notify.Notifier
	log    logging.Logger
}

func newBase(d Deps) base {
	b := base{notify: d.Notifier, log: d.Logger}
	if b.notify == nil {
		b.notify = notify.New(nil, nil)
	}
	if b.log == nil {
		b.log = logging.Nop()
	}
	return b
}

// failed classifies err, logs it, and shows it. err is returned unchanged.
// Rejected credentials are not shown: the guard turns them into a redirect
// to the login page.
func (b base) failed(ctx context.Context, op string, err error) error {
	e := apperr.Classify(err)
	b.log.Warn(ctx, op+" failed", "code", string(e.Code), "status", e.Status, "error", err)

	if errors.Is(err, api.ErrUnauthorized) {
		return err
	}

	var opts []notify.Option
	if hint := apperr.UserMessage(e); hint != e.Message {
		opts = append(opts, notify.WithDescription(hint))
	}
	b.notify.Error(e.Message, opts...)
	return err
}
