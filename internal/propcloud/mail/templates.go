package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/domain"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

type templateName string

const (
	tmplWelcome        templateName = "welcome.gohtml"
	tmplWaitlistSignup templateName = "waitlist_signup.gohtml"
	tmplInvitation     templateName = "invitation.gohtml"
	tmplConfirmEmail   templateName = "confirm_email.gohtml"
	tmplResetPassword  templateName = "reset_password.gohtml"
)

var templateSubjects = map[templateName]string{
	tmplWelcome:        "Welcome to the PropCloud.io Waitlist",
	tmplWaitlistSignup: "New Waitlist Signup",
	tmplInvitation:     "You're invited to PropCloud.io",
	tmplConfirmEmail:   "Confirm your PropCloud.io email",
	tmplResetPassword:  "Reset your PropCloud.io password",
}

const (
	notProvided = "Not provided"
	opsFromName = "PropCloud Waitlist"
)

// Mailer renders messages from the embedded templates.
type Mailer struct {
	cfg       Config
	templates map[templateName]*template.Template
}

func NewMailer(cfg Config) (*Mailer, error) {
	m := &Mailer{
		cfg:       cfg,
		templates: make(map[templateName]*template.Template),
	}
	m.cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("error reading template directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		tmpl, err := template.ParseFS(templatesFS, path.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[templateName(entry.Name())] = tmpl
	}

	for name := range templateSubjects {
		if _, ok := m.templates[name]; !ok {
			return nil, fmt.Errorf("template not found: %v", name)
		}
	}
	return m, nil
}

func (m *Mailer) render(from, to Address, tn templateName, data any) (Message, error) {
	var body bytes.Buffer
	if err := m.templates[tn].Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("error executing template %s: %w", tn, err)
	}
	return Message{
		From:    from,
		To:      to,
		Subject: templateSubjects[tn],
		HTML:    body.String(),
	}, nil
}

// Welcome greets a new waitlist entry with its position.
func (m *Mailer) Welcome(e domain.WaitlistEntry) (Message, error) {
	return m.render(m.cfg.From, Address{Email: e.Email}, tmplWelcome, struct {
		Name     string
		Position int64
	}{e.DisplayName(), e.Position})
}

// WaitlistSignup tells the ops mailbox about a new entry.
func (m *Mailer) WaitlistSignup(e domain.WaitlistEntry) (Message, error) {
	properties := notProvided
	if e.PropertiesCount != nil && *e.PropertiesCount != 0 {
		properties = strconv.Itoa(*e.PropertiesCount)
	}
	consent := "No"
	if e.MarketingConsent {
		consent = "Yes"
	}

	from := Address{Name: opsFromName, Email: m.cfg.From.Email}
	return m.render(from, Address{Email: m.cfg.OpsAddress}, tmplWaitlistSignup, struct {
		Email, Name, Company, Properties, Phone, Website string
		CurrentSoftware, PainPoints, MarketingConsent    string
		Position                                         int64
		AdminURL                                         string
	}{
		Email:            e.Email,
		Name:             orNotProvided(e.FullName),
		Company:          orNotProvided(e.CompanyName),
		Properties:       properties,
		Phone:            orNotProvided(e.Phone),
		Website:          orNotProvided(e.Website),
		CurrentSoftware:  orNotProvided(e.CurrentSoftware),
		PainPoints:       orNotProvided(e.PainPoints),
		MarketingConsent: consent,
		Position:         e.Position,
		AdminURL:         m.cfg.SiteURL + "/admin/waitlist",
	})
}

// Invitation links an invited entry to the signup page with its email
// prefilled.
func (m *Mailer) Invitation(e domain.WaitlistEntry) (Message, error) {
	return m.render(m.cfg.From, Address{Email: e.Email}, tmplInvitation, struct {
		Name      string
		SignupURL string
	}{e.DisplayName(), m.cfg.SiteURL + "/auth/signup?email=" + url.QueryEscape(e.Email)})
}

func (m *Mailer) ConfirmEmail(u domain.User, token string, ttl time.Duration) (Message, error) {
	return m.render(m.cfg.From, Address{Name: u.FullName, Email: u.Email}, tmplConfirmEmail, linkData{
		Name:     greeting(u.FullName),
		URL:      m.cfg.SiteURL + "/auth/confirmation?token=" + url.QueryEscape(token),
		ValidFor: humanDuration(ttl),
	})
}

func (m *Mailer) ResetPassword(u domain.User, token string, ttl time.Duration) (Message, error) {
	return m.render(m.cfg.From, Address{Name: u.FullName, Email: u.Email}, tmplResetPassword, linkData{
		Name:     greeting(u.FullName),
		URL:      m.cfg.SiteURL + "/auth/reset-password?token=" + url.QueryEscape(token),
		ValidFor: humanDuration(ttl),
	})
}

type linkData struct {
	Name     string
	URL      string
	ValidFor string
}

func orNotProvided(s *string) string {
	if s == nil || *s == "" {
		return notProvided
	}
	return *s
}

func greeting(name string) string {
	if name == "" {
		return "there"
	}
	return name
}

func humanDuration(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		if h := int(d / time.Hour); h != 1 {
			return fmt.Sprintf("%d hours", h)
		}
		return "1 hour"
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}
