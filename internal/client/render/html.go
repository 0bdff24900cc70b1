package render

import (
	"html/template"
	"strings"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
)

const htmlTemplates = `
{{define "story"}}<li id="{{.ID}}">
{{- if .Own}}
<span class="trash-can"><i class="fas fa-trash-alt"></i></span>
{{- end}}
<span class="star"><i class="{{.Star}} fa-star"></i></span>
<a class="article-link" href="{{.URL}}" target="a_blank"><strong>{{.Title}}</strong></a>
<small class="article-author">by {{.Author}}</small>
<small class="article-hostname {{.Host}}">({{.Host}})</small>
<small class="article-username">posted by {{.Username}}</small>
</li>{{end}}
{{define "empty"}}<h5>{{.}}</h5>{{end}}
{{define "profile"}}<section id="user-profile">
<h4>User Profile Info</h4>
<div id="profile-name">Name: {{.Name}}</div>
<div id="profile-username">Username: {{.Username}}</div>
<div id="profile-account-date">Account Created: {{.Created}}</div>
</section>{{end}}
`

var htmlSet = template.Must(template.New("render").Parse(htmlTemplates))

// HTML renders fragments with contextual escaping: story fields never
// produce markup and unsafe URL schemes are replaced.
type HTML struct {
	t *template.Template
}

func NewHTML() *HTML {
	return &HTML{t: htmlSet}
}

type storyData struct {
	ID       string
	Own      bool
	Star     string
	URL      string
	Title    string
	Author   string
	Host     string
	Username string
}

func (h *HTML) Story(v StoryView) string {
	s := v.Story
	star := "far"
	if v.Favorite {
		star = "fas"
	}
	return h.exec("story", storyData{
		ID:       s.ID,
		Own:      v.Own,
		Star:     star,
		URL:      s.URL,
		Title:    s.Title,
		Author:   s.Author,
		Host:     HostName(s.URL),
		Username: s.Username,
	})
}

func (h *HTML) Empty(msg string) string {
	return h.exec("empty", msg)
}

func (h *HTML) Profile(u *models.User) string {
	if u == nil {
		return ""
	}
	return h.exec("profile", struct {
		Name, Username, Created string
	}{u.Name, u.Username, accountDate(u.CreatedAt)})
}

func (h *HTML) exec(name string, data any) string {
	var b strings.Builder
	if err := h.t.ExecuteTemplate(&b, name, data); err != nil {
		// templates are fixed at init and data is plain strings
		panic(err)
	}
	return b.String()
}
