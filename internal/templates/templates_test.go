package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pubParams() map[string]any {
	return map[string]any{
		"name":              "test",
		"ibname":            "test",
		"url_path":          "/1c/test",
		"directory":         "/pubs/test",
		"vrd_filename":      "/vrds/test.vrd",
		"infobase_filepath": "",
		"is_file_infobase":  false,
	}
}

func TestRenderApachePub(t *testing.T) {
	r := NewRenderer("")
	out, err := r.Render("apache_pub.cfg", pubParams())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, want := range []string{
		`Alias "/1c/test" "/pubs/test"`,
		`<Directory "/pubs/test">`,
		`ManagedApplicationDescriptor "/vrds/test.vrd"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered block missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "infobase_filepath") {
		t.Errorf("server infobase block should not carry the filepath comment:\n%s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("trailing newline not stripped")
	}
}

func TestRenderApachePubFileInfobase(t *testing.T) {
	params := pubParams()
	params["infobase_filepath"] = "/srv/ib/test"
	params["is_file_infobase"] = true

	r := NewRenderer("")
	out, err := r.Render("apache_pub.cfg", params)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, `# infobase_filepath: "/srv/ib/test"`) {
		t.Errorf("file infobase comment missing:\n%s", out)
	}
}

func TestRenderVRD(t *testing.T) {
	r := NewRenderer("")
	out, err := r.Render("vrd.xml", pubParams())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, `base="/1c/test"`) {
		t.Errorf("vrd missing base attribute:\n%s", out)
	}
	if !strings.Contains(out, "Srvr=") {
		t.Errorf("server infobase vrd should reference a server:\n%s", out)
	}

	params := pubParams()
	params["infobase_filepath"] = "/srv/ib/test"
	params["is_file_infobase"] = true
	out, err = r.Render("vrd.xml", params)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "File=") {
		t.Errorf("file infobase vrd should reference a file path:\n%s", out)
	}
}

func TestRendererDirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "custom {{.url_path}}\n"
	if err := os.WriteFile(filepath.Join(dir, "apache_pub.cfg"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	r := NewRenderer(dir)
	out, err := r.Render("apache_pub.cfg", pubParams())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "custom /1c/test" {
		t.Errorf("override not used: %q", out)
	}

	if _, err := r.Render("vrd.xml", pubParams()); err == nil {
		t.Error("expected error for template missing from override dir")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := NewRenderer("").Render("nope.cfg", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}
