package notification

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"localdir/pkg/email"
)

type decisionData struct {
	Greeting string
	Label    string
	Name     string
	Reason   string
}

var (
	approvedHTML = template.Must(template.New("approved").Parse(`<p>Olá {{.Greeting}},</p>
<p>Seu cadastro <strong>{{.Label}} "{{.Name}}"</strong> foi aprovado e já está visível no guia.</p>
<p>Your {{.Label}} "{{.Name}}" has been approved and is now listed.</p>`))

	rejectedHTML = template.Must(template.New("rejected").Parse(`<p>Olá {{.Greeting}},</p>
<p>Seu cadastro <strong>{{.Label}} "{{.Name}}"</strong> não foi aprovado.</p>
<p>Your {{.Label}} "{{.Name}}" was not approved.</p>
<p><strong>Motivo / Reason:</strong> {{.Reason}}</p>`))

	approvedText = texttemplate.Must(texttemplate.New("approved").Parse(
		"Olá {{.Greeting}},\n\nYour {{.Label}} \"{{.Name}}\" has been approved and is now listed.\n"))

	rejectedText = texttemplate.Must(texttemplate.New("rejected").Parse(
		"Olá {{.Greeting}},\n\nYour {{.Label}} \"{{.Name}}\" was not approved.\nReason: {{.Reason}}\n"))
)

// Templates renders moderation decision e-mails.
type Templates struct {
	replyTo string
}

func NewTemplates(replyTo string) *Templates {
	return &Templates{replyTo: replyTo}
}

// Approved renders the approval message for one entity.
func (t *Templates) Approved(to, label, name string) (Message, error) {
	return t.render(to, fmt.Sprintf("%s aprovado / approved: %s", label, name), approvedHTML, approvedText, decisionData{
		Label: label,
		Name:  name,
	})
}

// Rejected renders the rejection message, embedding the reason.
func (t *Templates) Rejected(to, label, name, reason string) (Message, error) {
	return t.render(to, fmt.Sprintf("%s não aprovado / rejected: %s", label, name), rejectedHTML, rejectedText, decisionData{
		Label:  label,
		Name:   name,
		Reason: reason,
	})
}

func (t *Templates) render(to, subject string, html *template.Template, text *texttemplate.Template, data decisionData) (Message, error) {
	data.Greeting = email.GreetingName(to, "cliente")

	var htmlBuf, textBuf bytes.Buffer
	if err := html.Execute(&htmlBuf, data); err != nil {
		return Message{}, fmt.Errorf("render %s html: %w", html.Name(), err)
	}
	if err := text.Execute(&textBuf, data); err != nil {
		return Message{}, fmt.Errorf("render %s text: %w", text.Name(), err)
	}
	return Message{
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
		ReplyTo: t.replyTo,
	}, nil
}
