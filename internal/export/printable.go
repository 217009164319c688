// Package export renders a listed snapshot into a self-contained printable
// document. Rendering is a pure function of its arguments; it neither reads
// nor writes the store.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/raihan324/Food-Application/internal/fooditem"
)

type row struct {
	Name        string
	Category    string
	Description string
	Price       string
	OwnerName   string
	OwnerEmail  string
	Added       string
}

type document struct {
	Title       string
	GeneratedAt string
	Total       int
	Rows        []row
}

var printableTmpl = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; margin: 2rem; color: #111; }
  h1 { font-size: 1.4rem; margin-bottom: 0.2rem; }
  .meta { color: #555; font-size: 0.9rem; margin-bottom: 1.2rem; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #999; padding: 0.4rem 0.6rem; text-align: left; font-size: 0.9rem; }
  th { background: #eee; }
  .empty { color: #555; font-style: italic; margin-top: 1rem; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Generated {{.GeneratedAt}} &middot; total items: {{.Total}}</p>
{{if .Rows}}<table>
<thead>
<tr><th>Item Name</th><th>Category</th><th>Description</th><th>Price</th><th>Added By</th><th>Date Added</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Category}}</td><td>{{.Description}}</td><td>{{.Price}}</td><td>{{.OwnerName}} ({{.OwnerEmail}})</td><td>{{.Added}}</td></tr>
{{end}}</tbody>
</table>{{else}}<p class="empty">No food items recorded for this day.</p>{{end}}
</body>
</html>
`))

// HTML renders items into a standalone printable page. The caller chooses
// the snapshot, typically Repository.List with the day filter; generatedAt
// becomes the document's header timestamp and formats the createdAt column
// in its zone.
func HTML(items []fooditem.FoodItem, generatedAt time.Time) ([]byte, error) {
	doc := document{
		Title:       "Food Items Daily Report",
		GeneratedAt: generatedAt.Format("Jan 2, 2006 3:04 PM"),
		Total:       len(items),
	}
	for _, item := range items {
		doc.Rows = append(doc.Rows, row{
			Name:        item.Name,
			Category:    item.Category,
			Description: item.Description,
			Price:       fmt.Sprintf("$%.2f", item.Price),
			OwnerName:   item.OwnerName,
			OwnerEmail:  item.OwnerEmail,
			Added:       item.CreatedAt.In(generatedAt.Location()).Format("Jan 2, 2006 3:04 PM"),
		})
	}

	var buf bytes.Buffer
	if err := printableTmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("rendering printable document: %w", err)
	}
	return buf.Bytes(), nil
}
