package source

// Category is a top-level section of the catalog. The set is fixed and known at build time.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (c *Category) String() string {
	return c.Title
}

// Categories returns the catalog sections in display order.
func Categories() []*Category {
	return []*Category{
		{ID: "series", Title: "Series"},
		{ID: "programas", Title: "Programas"},
		{ID: "deportes", Title: "Deportes"},
		{ID: "noticias", Title: "Noticias"},
		{ID: "documentales", Title: "Documentales"},
		{ID: "series-infantiles", Title: "Infantil"},
		{ID: "webseries", Title: "Webseries"},
		{ID: "especial", Title: "Más contenido"},
	}
}
