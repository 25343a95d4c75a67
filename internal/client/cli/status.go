package cli

import (
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/iudanet/gophmedia/internal/models"
)

const statusTemplate = `=== Status ===

Server:   {{.ServerURL}}
{{- if .ServerError}}
          unreachable: {{.ServerError}}
{{- else if .FirstRun}}
          not configured, run 'gophmedia-client setup'
{{- end}}
{{- if .Authenticated}}
Status:   Authenticated
Username: {{.Session.Username}} ({{role .Session.Permission}})
Session:  valid until {{unix .Session.RefreshExpiresAt}}
{{- else if .Session}}
Status:   Session expired, run 'gophmedia-client login'
{{- else}}
Status:   Not authenticated
{{- end}}
`

var statusTmpl = template.Must(template.New("status").Funcs(template.FuncMap{
	"role": func(p int) string { return models.Permission(p).String() },
	"unix": func(ts int64) string {
		if ts == 0 {
			return "unknown"
		}
		return time.Unix(ts, 0).Format(time.RFC3339)
	},
}).Parse(statusTemplate))

func (c *Cli) runStatus(ctx context.Context) error {
	st, err := c.authService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if err := statusTmpl.Execute(c.io, st); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}
	return nil
}
