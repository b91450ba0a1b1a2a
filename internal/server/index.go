package server

import (
	"html/template"
	"net/http"

	"github.com/matzehuels/gradientlab/pkg/buildinfo"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>gradientlab</title>
<style>
body { font-family: system-ui, sans-serif; background: #111827; color: #f9fafb; margin: 2rem; }
.preview { width: 800px; max-width: 100%; aspect-ratio: 16 / 9; border-radius: 12px; }
pre { background: #1f2937; padding: 1rem; border-radius: 8px; white-space: pre-wrap; }
footer { color: #6b7280; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>gradientlab</h1>
<p>Type: {{.Kind}}</p>
{{if .Mesh}}<img class="preview" src="/api/preview.png?handles=1" alt="mesh preview">
{{else}}<div class="preview" style="background: {{.Style}}"></div>
{{end}}<h2>CSS</h2>
<pre>background: {{.CSS}};</pre>
<footer>{{.Version}}</footer>
</body>
</html>
`))

type indexData struct {
	Kind    gradient.Kind
	Mesh    bool
	CSS     string
	Style   template.CSS
	Version string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	css, err := s.runner.Compose(s.design)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data := indexData{
		Kind:    s.design.Kind,
		Mesh:    s.design.Kind == gradient.KindMesh,
		CSS:     css,
		Style:   template.CSS(css),
		Version: buildinfo.UserAgent(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Warn("render index", "err", err)
	}
}
