package cli

import (
	"fmt"
	"text/template"
	"time"

	"github.com/iudanet/ledgersync/internal/models"
)

var templateFuncs = template.FuncMap{
	"status": func(s models.SyncStatus) string {
		if s == models.Synced {
			return "synced"
		}
		return "pending"
	},
}

var (
	statusTmpl = template.Must(template.New("status").Parse(statusTemplate))
	billTmpl   = template.Must(template.New("bill").Funcs(templateFuncs).Parse(billTemplate))
	bookTmpl   = template.Must(template.New("book").Funcs(templateFuncs).Parse(bookTemplate))
)

const statusTemplate = `=== Status ===

Server:      {{.Server}}
{{- if .Username }}
Username:    {{.Username}}
User ID:     {{.UserID}}
{{- if .Expired }}
Session:     expired, run 'ledgersync login'
{{- else if .ExpiresAt }}
Session:     valid until {{.ExpiresAt}}
{{- end}}
{{- else }}
Username:    not signed in
{{- end}}
Active book: {{if .ActiveBook}}{{.ActiveBook}}{{else}}none{{end}}
Last pull:   {{if .LastPull}}{{.LastPull}}{{else}}never{{end}}

Pending upload: {{.Books}} book(s), {{.Bills}} bill(s), {{.Images}} image(s)
`

const bookTemplate = `{{if .Active}}* {{else}}  {{end}}{{.Book.Name}}
    ID:     {{.Book.ID}}
{{- if .Book.Type }}
    Type:   {{.Book.Type}}
{{- end}}
{{- if .Book.Members }}
    Shared: {{range $i, $m := .Book.Members}}{{if $i}}, {{end}}{{$m}}{{end}}
{{- end}}
    Status: {{status .Book.SyncStatus}}
`

const billTemplate = `{{.Time.Local.Format "2006-01-02 15:04"}}  {{printf "%12s" .Signed}}  {{if .Category}}{{.Category}}{{else}}-{{end}}
    ID:     {{.ID}}
{{- if .Remark }}
    Remark: {{.Remark}}
{{- end}}
{{- if .ImageIDs }}
    Images: {{len .ImageIDs}}
{{- end}}
    Status: {{status .SyncStatus}}
`

// billView добавляет к записи сумму со знаком
type billView struct {
	*models.Bill
}

func (b billView) Signed() string {
	if b.Type == models.BillTypeExpenditure {
		return fmt.Sprintf("-%s", b.Money)
	}
	return fmt.Sprintf("+%s", b.Money)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(time.RFC3339)
}
