package ui

import (
	"time"

	"github.com/saravenpi/parley/internal/i18n"
	"github.com/saravenpi/parley/internal/theme"
)

// env is shared by every screen. The app swaps styles and language in place
// so children pick up changes on their next View.
type env struct {
	styles *Styles
	tr     *i18n.Translator
	now    func() time.Time
}

func newEnv(tr *i18n.Translator, palette theme.Palette, now func() time.Time) *env {
	styles := NewStyles(palette)
	if now == nil {
		now = time.Now
	}
	return &env{styles: &styles, tr: tr, now: now}
}

func (e *env) setPalette(p theme.Palette) {
	*e.styles = NewStyles(p)
}

func (e *env) t(key string) string {
	return e.tr.T(key)
}
