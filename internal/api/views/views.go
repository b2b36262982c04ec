package views

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

var funcs = template.FuncMap{
	"pounds": func(amount float64) string {
		return fmt.Sprintf("£%.2f", amount)
	},
}

// Templates parses the embedded page templates. Each page is addressed by its file name,
// e.g. "product.tmpl".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.tmpl"))
}
