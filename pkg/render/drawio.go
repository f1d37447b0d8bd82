package render

import (
	"fmt"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// csvPreamble is the diagrams.net CSV import header. Import via
// Arrange > Insert > Advanced > CSV.
const csvPreamble = `## C4 Diagram
## Import: Arrange > Insert > Advanced > CSV
#
# label: <b>%name%</b><br><font style="font-size:11px;">%description%</font>
# stylename: type
# styles: {"container": "rounded=1;whiteSpace=wrap;fillColor=#438DD5;fontColor=#ffffff;", \
#          "component": "rounded=1;whiteSpace=wrap;fillColor=#85BBF0;fontColor=#000000;"}
# connect: {"from": "refs", "to": "id", "invert": false, "style": "curved=1;exitX=0.5;exitY=1;entryX=0.5;entryY=0;"}
# width: 200
# height: 100
# padding: 30
# ignore: id,refs,type,pattern
# identity: id
# namespace: c4`

// ContainerCSV renders the row-per-container table for draw.io import.
func ContainerCSV(t *tree.Compiled) string {
	var rows []string
	for _, rec := range t.Modules() {
		if rec.Level != ir.LevelContainer {
			continue
		}
		refs := make([]string, 0, len(rec.Relationships))
		for _, rel := range rec.Relationships {
			refs = append(refs, rel.Target)
		}
		rows = append(rows, fmt.Sprintf("%s,%s,container,%s,%s,%s",
			rec.ModulePath,
			csvEscape(titleCase(rec.ShortName())),
			csvEscape(rec.Pattern),
			csvEscape(rec.Description),
			strings.Join(refs, " ")))
	}

	return fmt.Sprintf("%s\nid,name,type,pattern,description,refs\n%s\n",
		csvPreamble, strings.Join(rows, "\n"))
}

// ComponentCSV renders the row-per-component table, with container
// stub rows so draw.io can group components under their parents.
func ComponentCSV(t *tree.Compiled) string {
	var stubs []string
	var rows []string

	seenParent := make(map[string]bool)
	for _, rec := range t.Modules() {
		if rec.Level != ir.LevelComponent {
			continue
		}

		parent := rec.DerivedParent()
		if parent != "" && !seenParent[parent] {
			seenParent[parent] = true
			stubs = append(stubs, fmt.Sprintf("%s,%s,container,,,",
				parent, csvEscape(titleCase(lastSegment(parent)))))
		}

		refs := make([]string, 0, len(rec.Relationships))
		for _, rel := range rec.Relationships {
			refs = append(refs, rel.Target)
		}
		connect := strings.Join(refs, " ")
		if connect == "" {
			connect = parent
		}

		rows = append(rows, fmt.Sprintf("%s,%s,component,%s,%s,%s",
			rec.ModulePath,
			csvEscape(rec.ShortName()),
			csvEscape(rec.Pattern),
			csvEscape(rec.Description),
			connect))
	}

	all := append(stubs, rows...)
	return fmt.Sprintf("%s\nid,name,type,pattern,description,refs\n%s\n",
		csvPreamble, strings.Join(all, "\n"))
}

// csvEscape keeps cell text inside a single unquoted CSV cell.
func csvEscape(s string) string {
	s = strings.ReplaceAll(s, ",", ";")
	return strings.ReplaceAll(s, "\n", " ")
}
