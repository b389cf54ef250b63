package notifier

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/driftwave/release-radar/internal/domain"
)

// templateData feeds the single and digest email templates
type templateData struct {
	DisplayName  string
	Releases     []domain.ReleaseEvent
	DashboardURL string
}

var singleTemplate = template.Must(template.New("single").Parse(`<html>
<body style="font-family: sans-serif; color: #1a1a2e;">
  <h2>{{.DisplayName}}, something new dropped</h2>
  {{with index .Releases 0}}
  <h3>{{.Title}}</h3>
  {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" width="240" style="border-radius: 8px;"/>{{end}}
  {{if .Description}}<p>{{.Description}}</p>{{end}}
  {{if .PlatformURL}}<p><a href="{{.PlatformURL}}">Open on platform</a></p>{{end}}
  {{end}}
  {{if .DashboardURL}}<p><a href="{{.DashboardURL}}">Manage your releases</a></p>{{end}}
</body>
</html>`))

var digestTemplate = template.Must(template.New("digest").Parse(`<html>
<body style="font-family: sans-serif; color: #1a1a2e;">
  <h2>{{.DisplayName}}, {{len .Releases}} new releases for you</h2>
  <ul>
  {{range .Releases}}
    <li style="margin-bottom: 12px;">
      <strong>{{.Title}}</strong>
      {{if .Description}}<br/>{{.Description}}{{end}}
      {{if .PlatformURL}}<br/><a href="{{.PlatformURL}}">Open on platform</a>{{end}}
    </li>
  {{end}}
  </ul>
  {{if .DashboardURL}}<p><a href="{{.DashboardURL}}">Manage your releases</a></p>{{end}}
</body>
</html>`))

// renderEmail produces the subject, plain-text and HTML bodies for a batch
// of releases. One release gets the single layout, more get the digest.
func renderEmail(data templateData) (subject string, textBody string, htmlBody string, err error) {
	var sb strings.Builder

	if len(data.Releases) == 1 {
		release := data.Releases[0]
		subject = fmt.Sprintf("New release: %s", release.Title)

		if err := singleTemplate.Execute(&sb, data); err != nil {
			return "", "", "", fmt.Errorf("failed to render single template: %w", err)
		}
		return subject, singleText(data), sb.String(), nil
	}

	subject = fmt.Sprintf("%d new releases for you", len(data.Releases))
	if err := digestTemplate.Execute(&sb, data); err != nil {
		return "", "", "", fmt.Errorf("failed to render digest template: %w", err)
	}
	return subject, digestText(data), sb.String(), nil
}

func singleText(data templateData) string {
	release := data.Releases[0]
	var sb strings.Builder
	sb.WriteString(release.Title)
	if release.Description != nil {
		sb.WriteString("\n\n" + *release.Description)
	}
	if release.PlatformURL != nil {
		sb.WriteString("\n\n" + *release.PlatformURL)
	}
	return sb.String()
}

func digestText(data templateData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d new releases:\n", len(data.Releases))
	for _, r := range data.Releases {
		sb.WriteString("\n- " + r.Title)
		if r.PlatformURL != nil {
			sb.WriteString(" (" + *r.PlatformURL + ")")
		}
	}
	return sb.String()
}
