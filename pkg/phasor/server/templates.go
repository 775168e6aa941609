package server

import (
	"html/template"

	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

type reportView struct {
	Report  *models.Report
	Preview template.HTML
	SVG     template.HTML
}

const pageHead = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Diagrama Fasorial</title>
<style>
body { font-family: Arial, sans-serif; max-width: 960px; margin: 2rem auto; color: #222; }
h1 { text-align: center; color: #1F618D; }
.info { background: #e8f4fd; padding: .6rem 1rem; border-radius: 4px; }
.success { background: #e9f7ef; padding: .6rem 1rem; border-radius: 4px; }
.error { background: #fdecea; color: #a12622; padding: .6rem 1rem; border-radius: 4px; }
.warning { background: #fff8e1; padding: .6rem 1rem; border-radius: 4px; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: .25rem .5rem; }
</style>
</head>
<body>
<h1>⚡ Diagrama Fasorial desde HTML ⚡</h1>
`

var indexTemplate = template.Must(template.New("index").Parse(pageHead + `
<form method="post" action="/diagram" enctype="multipart/form-data">
<p><label>📂 Sube tu archivo HTML <input type="file" name="file" accept=".html,.htm" required></label></p>
<p><button type="submit">Generar diagrama</button></p>
</form>
</body>
</html>
`))

var reportTemplate = template.Must(template.New("report").Parse(pageHead + `
{{with .Report}}
<p class="info">{{.TableCount}} tablas encontradas en el HTML.</p>
{{if ge .TableIndex 0}}<p class="success">Tabla relevante encontrada.</p>{{end}}
{{end}}
{{if .Preview}}
<h2>Vista previa de la tabla</h2>
{{.Preview}}
{{end}}
{{with .Report}}{{if .Failed}}<p class="error">{{.Message}}</p>{{end}}
{{with .Diagram}}{{range .Warnings}}<p class="warning">{{.}}</p>{{end}}{{end}}{{end}}
{{if .SVG}}
<figure>{{.SVG}}</figure>
{{end}}
<p><a href="/">Subir otro archivo</a></p>
<p><small>{{.Report.ID}}</small></p>
</body>
</html>
`))
