package vector

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

// countElements walks the document and fails on malformed nesting.
func countElements(t *testing.T, doc []byte) map[string]int {
	t.Helper()
	counts := map[string]int{}
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return counts
		}
		if err != nil {
			t.Fatalf("malformed svg: %v\n%s", err, doc)
		}
		if se, ok := tok.(xml.StartElement); ok {
			counts[se.Name.Local]++
		}
	}
}

func TestWriteSVG(t *testing.T) {
	c, err := anim.NewCoordinator(config.Nodes, config.TickInterval)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	WriteSVG(&buf, c, 300, 600)

	counts := countElements(t, buf.Bytes())
	if want := config.Nodes * config.Lines * 4; counts["line"] != want {
		t.Errorf("lines = %d, want %d", counts["line"], want)
	}
	if counts["rect"] != 1 {
		t.Errorf("background rects = %d, want 1", counts["rect"])
	}
	if !strings.Contains(buf.String(), "stroke:#673ab7") {
		t.Error("foreground stroke colour missing")
	}
}

func TestSurfaceRestoreClosesGroups(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 100, 100)
	s.Save()
	s.Translate(10, 10)
	s.Rotate(1)
	s.Restore()
	s.Restore() // unmatched, ignored
	s.Translate(5, 5)
	s.End()

	doc := buf.String()
	if opened, closed := strings.Count(doc, "<g "), strings.Count(doc, "</g>"); opened != 3 || closed != 3 {
		t.Errorf("groups opened=%d closed=%d, want 3 and 3", opened, closed)
	}
	countElements(t, buf.Bytes())
}
