package web

import "encoding/json"

// Context is the plain key-value payload handed to the external template
// renderer. Keys follow the template names the site's templates expect
// (page_obj, author, form, ...).
type Context map[string]any

// Renderer turns a template name plus context into a response body.
// Actual HTML templating is an external collaborator; the default
// implementation below just serializes the context.
type Renderer interface {
	Render(name string, data Context) ([]byte, error)
	ContentType() string
}

// JSONRenderer is the built-in renderer. Map keys marshal in sorted order,
// so equal contexts always produce byte-identical bodies, which the index
// page cache relies on.
type JSONRenderer struct{}

func (JSONRenderer) Render(name string, data Context) ([]byte, error) {
	return json.Marshal(map[string]any{
		"template": name,
		"context":  data,
	})
}

func (JSONRenderer) ContentType() string {
	return "application/json; charset=utf-8"
}
