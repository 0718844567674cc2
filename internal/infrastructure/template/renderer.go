package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/shared/biztime"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/services/markdown"
)

// NoTimestamp is what formattime prints for values without a timestamp.
const NoTimestamp = "[NO TIMESTAMP]"

const (
	subjectSuffix = "_subject.tmpl"
	bodySuffix    = "_body.tmpl"
)

var _ notification.Renderer = (*MailRenderer)(nil)

type mailTemplate struct {
	subject *texttemplate.Template
	body    *htmltemplate.Template
}

// MailRenderer renders notification mails from template files. Every name
// needs <dir>/<name>_subject.tmpl (plain text) and <dir>/<name>_body.tmpl
// (HTML).
type MailRenderer struct {
	path      string
	templates map[string]mailTemplate
	markdown  markdown.Renderer
	logger    logger.Interface
}

func NewMailRenderer(path string, md markdown.Renderer, logger logger.Interface) *MailRenderer {
	return &MailRenderer{
		path:      path,
		templates: make(map[string]mailTemplate),
		markdown:  md,
		logger:    logger,
	}
}

// Load parses the templates for every name. A missing or broken file is an
// error.
func (r *MailRenderer) Load(names ...string) error {
	if _, err := os.Stat(r.path); err != nil {
		return fmt.Errorf("templates directory %s: %w", r.path, err)
	}

	for _, name := range names {
		subjectSrc, err := os.ReadFile(filepath.Join(r.path, name+subjectSuffix))
		if err != nil {
			return fmt.Errorf("failed to read subject template %s: %w", name, err)
		}
		bodySrc, err := os.ReadFile(filepath.Join(r.path, name+bodySuffix))
		if err != nil {
			return fmt.Errorf("failed to read body template %s: %w", name, err)
		}

		subject, err := texttemplate.New(name + subjectSuffix).
			Funcs(texttemplate.FuncMap{"formattime": FormatTime}).
			Parse(string(subjectSrc))
		if err != nil {
			return fmt.Errorf("failed to parse subject template %s: %w", name, err)
		}

		body, err := htmltemplate.New(name + bodySuffix).
			Funcs(htmltemplate.FuncMap{
				"formattime": FormatTime,
				"markdown":   r.renderMarkdown,
			}).
			Parse(string(bodySrc))
		if err != nil {
			return fmt.Errorf("failed to parse body template %s: %w", name, err)
		}

		r.templates[name] = mailTemplate{subject: subject, body: body}
		r.logger.Debugw("loaded mail template", "name", name)
	}

	r.logger.Infow("mail templates loaded", "path", r.path, "count", len(r.templates))
	return nil
}

// Render executes the named subject and body templates with view. The
// subject is collapsed onto a single line.
func (r *MailRenderer) Render(name string, view any) (string, string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown mail template %q", name)
	}

	var subject bytes.Buffer
	if err := tmpl.subject.Execute(&subject, view); err != nil {
		return "", "", fmt.Errorf("failed to render subject %s: %w", name, err)
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, view); err != nil {
		return "", "", fmt.Errorf("failed to render body %s: %w", name, err)
	}

	return strings.Join(strings.Fields(subject.String()), " "), body.String(), nil
}

// FormatTime prints the date of anything carrying a timestamp in the
// business timezone. Other values print NoTimestamp instead of failing the
// render.
func FormatTime(v any) string {
	switch t := v.(type) {
	case notification.Timestamped:
		return biztime.FormatDate(t.Timestamp())
	case time.Time:
		return biztime.FormatDate(t)
	case *time.Time:
		if t != nil {
			return biztime.FormatDate(*t)
		}
	}
	return NoTimestamp
}

func (r *MailRenderer) renderMarkdown(text string) htmltemplate.HTML {
	out, err := r.markdown.Render(text)
	if err != nil {
		r.logger.Warnw("markdown rendering failed, falling back to escaped text", "error", err)
		return htmltemplate.HTML(htmltemplate.HTMLEscapeString(text))
	}
	return htmltemplate.HTML(out)
}
