package domdbg_test

import (
	"strings"
	"testing"

	"github.com/domkit/domkit/dom"
	"github.com/domkit/domkit/dom/domdbg"
	"golang.org/x/net/html"
)

func TestPrint(t *testing.T) {
	h, err := html.Parse(strings.NewReader(
		`<html><body><div id="outer" class="baz"><p>short text</p></div></body></html>`))
	if err != nil {
		t.Fatalf("cannot parse test HTML: %v", err)
	}
	root := dom.FromHTMLParseTree(h)
	diagram := domdbg.Print(root)
	t.Logf("DOM =\n%s", diagram)
	for _, want := range []string{"#document", "DIV#outer.baz", "P", `"short text"`} {
		if !strings.Contains(diagram, want) {
			t.Errorf("expected diagram to contain %q, doesn't", want)
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	if domdbg.Print(nil) != "(empty DOM)\n" {
		t.Error("expected a placeholder for an empty DOM, didn't get one")
	}
}

func TestDump(t *testing.T) {
	h, _ := html.Parse(strings.NewReader(`<html><body><p>hi</p></body></html>`))
	root := dom.FromHTMLParseTree(h)
	var b strings.Builder
	if err := domdbg.Dump(root, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() == 0 {
		t.Error("expected a non-empty diagram, got nothing")
	}
}
