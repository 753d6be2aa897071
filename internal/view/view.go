package view

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"postboard/internal/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer owns the parsed page templates. Every render rebuilds the whole
// page from the view model; there is no partial update.
type Renderer struct {
	page    *template.Template
	confirm *template.Template
}

func NewRenderer() (*Renderer, error) {
	page, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	confirm, err := template.ParseFS(templatesFS, "templates/confirm_delete.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{page: page, confirm: confirm}, nil
}

// FormView carries the state of the two-mode post form. EditId zero means
// create mode; non-zero means the form edits that post and shows cancel.
type FormView struct {
	EditId  int64
	Title   string
	Content string
	RawTags string
}

func (f FormView) Editing() bool {
	return f.EditId != 0
}

type PostView struct {
	Id            int64
	Title         string
	UpdatedAtText string
	Tags          []string
	ContentLines  []string
}

type Page struct {
	Form      FormView
	FilterTag string // "" renders as the "all" sentinel selected
	Tags      []string
	Posts     []PostView
}

type ConfirmDelete struct {
	Id    int64
	Title string
}

func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	return r.page.Execute(w, p)
}

func (r *Renderer) RenderConfirmDelete(w io.Writer, c ConfirmDelete) error {
	return r.confirm.Execute(w, c)
}

// NewPostView flattens a post for the template: formatted update time and
// content split into lines so the template can re-insert the breaks.
func NewPostView(p *entity.Post) PostView {
	return PostView{
		Id:            p.Id,
		Title:         p.Title,
		UpdatedAtText: p.FormattedUpdatedAt(),
		Tags:          p.Tags,
		ContentLines:  strings.Split(p.Content, "\n"),
	}
}

func NewPostViews(posts []*entity.Post) []PostView {
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = NewPostView(p)
	}
	return views
}

// EditForm prefills the form from an existing post.
func EditForm(p *entity.Post) FormView {
	return FormView{
		EditId:  p.Id,
		Title:   p.Title,
		Content: p.Content,
		RawTags: strings.Join(p.Tags, ", "),
	}
}
