package model

// Template is one legal-procedure content record from the external catalog.
// Keys are unique catalog-wide after whitespace collapsing; the catalog is
// the single source of truth for key existence.
type Template struct {
	Key         string `json:"template_key"`
	Description string `json:"descripcion"`
	Content     string `json:"contenido"`
	PDFURL      string `json:"pdf_url,omitempty"`
}
