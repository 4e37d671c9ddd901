package dialog

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-jsonform/pkg/form"
)

//go:embed templates/*.tpl
var builtinTemplates embed.FS

// Template names understood by the Catalog. Overrides supplied through
// WithTemplateFS must use the same names.
const (
	TemplateSubmitSuccess = "submit_success.tpl"
	TemplateSubmitInvalid = "submit_invalid.tpl"
	TemplateSchemaLoaded  = "schema_loaded.tpl"
	TemplateSchemaInvalid = "schema_invalid.tpl"
	TemplatePromptSchema  = "prompt_schema.tpl"
)

// Titles used for the catalog messages.
const (
	TitleSuccess         = "Success"
	TitleValidationError = "Validation Error"
	TitleParseError      = "JSON Parse Error"
	TitlePromptSchema    = "Load Custom JSON Configuration"
)

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	overrides fs.FS
}

// WithTemplateFS supplies templates that take precedence over the built-in
// ones. Missing names fall back to the defaults.
func WithTemplateFS(files fs.FS) CatalogOption {
	return func(cfg *catalogConfig) {
		cfg.overrides = files
	}
}

// Catalog renders the notification messages raised around a form session.
type Catalog struct {
	set *pongo2.TemplateSet
}

// NewCatalog builds a Catalog over the built-in templates.
func NewCatalog(options ...CatalogOption) (*Catalog, error) {
	cfg := catalogConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	builtin, err := fs.Sub(builtinTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("dialog: builtin templates: %w", err)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.overrides != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.overrides))
	}
	loaders = append(loaders, pongo2.NewFSLoader(builtin))

	return &Catalog{set: pongo2.NewSet("dialog", loaders...)}, nil
}

// MustCatalog is NewCatalog that panics on error.
func MustCatalog(options ...CatalogOption) *Catalog {
	c, err := NewCatalog(options...)
	if err != nil {
		panic(err)
	}
	return c
}

// SubmitSucceeded announces an accepted submission, listing the record.
func (c *Catalog) SubmitSucceeded(rec form.Record) (Message, error) {
	pretty, err := rec.Encode(form.FormatPretty)
	if err != nil {
		return Message{}, err
	}
	var summary []string
	for _, line := range strings.Split(strings.TrimSpace(string(pretty)), "\n") {
		if line != "" {
			summary = append(summary, line)
		}
	}

	body, err := c.render(TemplateSubmitSuccess, pongo2.Context{"summary": summary})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindSuccess, Title: TitleSuccess, Body: body}, nil
}

// SubmitFailed lists the fields that blocked a submission with their visible
// messages. f must already have been marked touched, which Submit does.
func (c *Catalog) SubmitFailed(f *form.Form, verr *form.ValidationError) (Message, error) {
	issues := make([]map[string]any, 0, len(verr.Fields))
	for _, failed := range verr.Fields {
		field, _ := f.Field(failed.Key)
		msg, ok := f.ErrorMessage(failed.Key)
		if !ok {
			msg = string(failed.Errors[0])
		}
		issues = append(issues, map[string]any{"label": field.Label, "message": msg})
	}

	body, err := c.render(TemplateSubmitInvalid, pongo2.Context{
		"count":  len(issues),
		"issues": issues,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindError, Title: TitleValidationError, Body: body}, nil
}

// SchemaLoaded confirms that new schema text replaced the active form.
func (c *Catalog) SchemaLoaded(title string, fields int) (Message, error) {
	body, err := c.render(TemplateSchemaLoaded, pongo2.Context{"title": title, "fields": fields})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindSuccess, Title: TitleSuccess, Body: body}, nil
}

// SchemaRejected reports schema text that could not be parsed or compiled.
func (c *Catalog) SchemaRejected(cause error) (Message, error) {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	body, err := c.render(TemplateSchemaInvalid, pongo2.Context{"detail": detail})
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindError, Title: TitleParseError, Body: body}, nil
}

// SchemaPrompt returns the message and title used when asking for schema
// text.
func (c *Catalog) SchemaPrompt() (message, title string, err error) {
	body, err := c.render(TemplatePromptSchema, nil)
	if err != nil {
		return "", "", err
	}
	return body, TitlePromptSchema, nil
}

func (c *Catalog) render(name string, data pongo2.Context) (string, error) {
	if data == nil {
		data = pongo2.Context{}
	}
	tmpl, err := c.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("dialog: load template %q: %w", name, err)
	}
	out, err := tmpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("dialog: execute template %q: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}
