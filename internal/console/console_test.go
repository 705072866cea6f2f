package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinters(t *testing.T) {
	cases := []struct {
		name   string
		print  func(*bytes.Buffer)
		color  string
		header string
	}{
		{"welcome", func(b *bytes.Buffer) { Welcome(b, "hi") }, Cyan, "Welcome!"},
		{"error", func(b *bytes.Buffer) { Error(b, "hi") }, Red, "There occurred an error:"},
		{"exception", func(b *bytes.Buffer) { Exception(b, "hi") }, Yellow, "There occurred a game exception:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.print(&buf)
			want := tc.color + tc.header + "\nhi" + White + "\n"
			if got := buf.String(); got != want {
				t.Fatalf("output = %q, want %q", got, want)
			}
			if !strings.HasSuffix(buf.String(), White+"\n") {
				t.Fatal("printer must reset the colour")
			}
		})
	}
}
