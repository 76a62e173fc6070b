package publication

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"webpub1c/internal/slug"
	"webpub1c/internal/templates"
	"webpub1c/internal/urlpath"
)

// vrdExt is the extension of generated descriptor files.
const vrdExt = ".vrd"

// Template names resolved through the renderer.
const (
	blockTemplate = "apache_pub.cfg"
	vrdTemplate   = "vrd.xml"
)

// Extraction patterns tied to the known output shape of the block
// template. Parsing is best-effort: a template that omits a field
// yields an empty value, never an error.
var (
	urlExpr  = regexp.MustCompile(`Alias\s"([^"]+)"`)
	dirExpr  = regexp.MustCompile(`<Directory\s"([^"]+)">`)
	vrdExpr  = regexp.MustCompile(`ManagedApplicationDescriptor\s"([^"]+)"`)
	fileExpr = regexp.MustCompile(`#\sinfobase_filepath:\s"([^"]+)"`)
)

// Record is the in-memory representation of one web publication: its
// name, derived artifact paths, descriptor parameters, and the
// operations that materialize or destroy its filesystem artifacts.
type Record struct {
	Name             string
	Directory        string
	VRDFilename      string
	URLPath          string
	VRDParams        map[string]string
	InfobaseFilepath string

	renderer *templates.Renderer
}

// New builds a fresh record with no derived paths yet. The name is the
// business key and must not be empty.
func New(name string, renderer *templates.Renderer, params map[string]string, infobaseFilepath string) (*Record, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: publication name empty", ErrState)
	}
	if renderer == nil {
		renderer = templates.NewRenderer("")
	}
	return &Record{
		Name:             name,
		VRDParams:        params,
		InfobaseFilepath: infobaseFilepath,
		renderer:         renderer,
	}, nil
}

// FromConfig reconstructs a record from the text of an existing config
// block. Paths and the URL come from the rendered text as-is; they are
// not re-derived from current conventions, so a record read back
// reflects exactly what is on disk. Descriptor params are unknown at
// this point and stay empty.
func FromConfig(name, body string, renderer *templates.Renderer) (*Record, error) {
	rec, err := New(name, renderer, nil, firstMatch(fileExpr, body))
	if err != nil {
		return nil, err
	}
	rec.URLPath = firstMatch(urlExpr, body)
	rec.Directory = firstMatch(dirExpr, body)
	rec.VRDFilename = firstMatch(vrdExpr, body)
	return rec, nil
}

func firstMatch(expr *regexp.Regexp, text string) string {
	if m := expr.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// IsFileInfobase reports whether this publication serves a file-backed
// infobase. Affects descriptor and block rendering only.
func (r *Record) IsFileInfobase() bool {
	return r.InfobaseFilepath != ""
}

// GeneratePaths derives the publication directory, VRD file path and
// URL path from the store conventions. The directory roots must exist
// and urlBase must be a syntactically valid path prefix.
func (r *Record) GeneratePaths(dirRoot, vrdRoot, urlBase string) error {
	if !isDir(dirRoot) {
		return fmt.Errorf("%w: pub dir not found: %s", ErrConfiguration, dirRoot)
	}
	if !isDir(vrdRoot) {
		return fmt.Errorf("%w: vrd dir not found: %s", ErrConfiguration, vrdRoot)
	}
	if !urlpath.IsValid(urlBase) {
		return fmt.Errorf("%w: url prefix invalid: %q", ErrConfiguration, urlBase)
	}

	slugName := slug.Slugify(r.Name)
	if slugName == "" {
		return fmt.Errorf("%w: name %q yields an empty slug", ErrState, r.Name)
	}
	safeName := slug.SanitizeFilename(slugName)
	safeURLName := slug.SanitizePOSIX(slugName)

	r.Directory = filepath.Join(dirRoot, safeName)
	r.VRDFilename = filepath.Join(vrdRoot, safeName+vrdExt)
	r.URLPath = urlpath.Join(urlBase, safeURLName)
	return nil
}

// IsValid reports structural validity: non-empty name, well-formed
// artifact paths, and an absolute URL path.
func (r *Record) IsValid() bool {
	return r.Name != "" &&
		isValidFilepath(r.Directory) &&
		isValidFilepath(r.VRDFilename) &&
		urlpath.IsAbsolute(r.URLPath)
}

// OKToCreate reports whether the record is valid and neither artifact
// path is taken. Exclusive ownership of both paths is enforced here, at
// creation time; there is no global registry.
func (r *Record) OKToCreate() bool {
	return r.IsValid() && !pathExists(r.Directory) && !pathExists(r.VRDFilename)
}

// Exists reports whether both artifacts are present. Partial presence
// is a detectable inconsistency the record tolerates but does not heal.
func (r *Record) Exists() bool {
	return isDir(r.Directory) && pathExists(r.VRDFilename)
}

// Create materializes the publication directory and the VRD descriptor.
// Without force it fails fast unless OKToCreate holds. With force both
// steps run independently and individual failures come back as
// warnings; there is no atomicity across the two artifacts.
func (r *Record) Create(force bool) ([]Warning, error) {
	if force {
		var warnings []Warning
		if err := r.createDirectory(); err != nil {
			warnings = append(warnings, Warning{Op: "create directory", Err: err})
		}
		if err := r.createVRD(true); err != nil {
			warnings = append(warnings, Warning{Op: "create vrd", Err: err})
		}
		return warnings, nil
	}

	if !r.OKToCreate() {
		return nil, fmt.Errorf("%w: can't create publication %q", ErrState, r.Name)
	}
	if err := r.createDirectory(); err != nil {
		return nil, err
	}
	return nil, r.createVRD(false)
}

// Remove deletes the VRD descriptor and the publication directory.
// Without force a non-empty directory fails with the filesystem error.
// With force the directory is removed recursively and both steps run
// independently, reporting failures as warnings. Removing an
// already-absent artifact is silent idempotent success.
func (r *Record) Remove(force bool) ([]Warning, error) {
	if force {
		var warnings []Warning
		if err := r.removeVRD(); err != nil {
			warnings = append(warnings, Warning{Op: "remove vrd", Err: err})
		}
		if err := r.removeDirectory(true); err != nil {
			warnings = append(warnings, Warning{Op: "remove directory", Err: err})
		}
		return warnings, nil
	}

	if err := r.removeVRD(); err != nil {
		return nil, err
	}
	return nil, r.removeDirectory(false)
}

// ToConfig renders the config block body for this record.
func (r *Record) ToConfig() (string, error) {
	return r.renderer.Render(blockTemplate, map[string]any{
		"name":              r.Name,
		"directory":         r.Directory,
		"vrd_filename":      r.VRDFilename,
		"url_path":          r.URLPath,
		"infobase_filepath": r.InfobaseFilepath,
		"is_file_infobase":  r.IsFileInfobase(),
	})
}

// Describe serializes identity and derived fields as indented JSON for
// diagnostics. The output is not parsed back.
func (r *Record) Describe() string {
	data, err := json.MarshalIndent(map[string]any{
		"name":              r.Name,
		"url_path":          r.URLPath,
		"directory":         r.Directory,
		"vrd_filename":      r.VRDFilename,
		"infobase_filepath": r.InfobaseFilepath,
		"is_file_infobase":  r.IsFileInfobase(),
	}, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", *r)
	}
	return string(data)
}

func (r *Record) createDirectory() error {
	if pathExists(r.Directory) {
		return nil
	}
	return os.Mkdir(r.Directory, 0o755)
}

func (r *Record) removeDirectory(force bool) error {
	if !pathExists(r.Directory) {
		return nil
	}
	if force {
		return os.RemoveAll(r.Directory)
	}
	return os.Remove(r.Directory)
}

func (r *Record) createVRD(force bool) error {
	if !force {
		if !r.IsValid() {
			return fmt.Errorf("%w: publication %q is invalid", ErrState, r.Name)
		}
		if pathExists(r.VRDFilename) {
			return fmt.Errorf("%w: vrd file %q exists", ErrState, r.VRDFilename)
		}
	}

	params := map[string]any{
		"url_path":          xmlEscape(r.URLPath),
		"ibname":            xmlEscape(r.Name),
		"infobase_filepath": xmlEscape(r.InfobaseFilepath),
		"is_file_infobase":  r.IsFileInfobase(),
	}
	for key, value := range r.VRDParams {
		params[key] = xmlEscape(value)
	}

	data, err := r.renderer.Render(vrdTemplate, params)
	if err != nil {
		return err
	}
	return os.WriteFile(r.VRDFilename, []byte(data+"\n"), 0o644)
}

func (r *Record) removeVRD() error {
	if !pathExists(r.VRDFilename) {
		return nil
	}
	return os.Remove(r.VRDFilename)
}

func xmlEscape(value string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(value)); err != nil {
		return value
	}
	return buf.String()
}

func isValidFilepath(path string) bool {
	if path == "" {
		return false
	}
	for _, r := range path {
		if r == 0 {
			return false
		}
	}
	return !strings.ContainsAny(filepath.Base(path), `<>"|?*`)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
