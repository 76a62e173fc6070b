package apache

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"webpub1c/internal/logging"
	"webpub1c/internal/publication"
	"webpub1c/internal/templates"
	"webpub1c/internal/urlpath"
)

// Marker lines delimiting a managed publication block. The name of the
// publication follows the tag on the same line.
const (
	startTag = "# --- WEBPUB1C PUBLICATION START:"
	endTag   = "# --- WEBPUB1C PUBLICATION END:"
)

var wsModuleExpr = regexp.MustCompile(`(?m)^LoadModule\s_1cws_module\s.*$`)

// Options describes store construction parameters.
type Options struct {
	// Filename is the Apache config file holding the managed blocks.
	Filename string
	// VRDDir and PubDir are the roots new descriptor files and
	// publication directories are derived under.
	VRDDir string
	PubDir string
	// URLBase prefixes every derived publication URL.
	URLBase string
	// VRDParams are merged into every new record's descriptor.
	VRDParams map[string]string
	Renderer  *templates.Renderer
	Logger    *slog.Logger
}

// Config owns the Apache config file and the conventions used to derive
// new publications. It keeps no state of its own: every query re-reads
// the file, so external modifications between calls are visible
// immediately. Everything outside managed blocks is reproduced
// byte-for-byte on every mutation.
type Config struct {
	filename  string
	vrdDir    string
	pubDir    string
	urlBase   string
	vrdParams map[string]string
	renderer  *templates.Renderer
	logger    *slog.Logger
}

// New builds a store over the given Apache config file.
func New(opts Options) *Config {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = templates.NewRenderer("")
	}
	return &Config{
		filename:  opts.Filename,
		vrdDir:    opts.VRDDir,
		pubDir:    opts.PubDir,
		urlBase:   opts.URLBase,
		vrdParams: opts.VRDParams,
		renderer:  renderer,
		logger:    logging.NewComponentLogger(opts.Logger, "apache"),
	}
}

// IsValid reports whether the config file exists.
func (c *Config) IsValid() bool {
	info, err := os.Stat(c.filename)
	return err == nil && info.Mode().IsRegular()
}

// Text returns the raw config file content.
func (c *Config) Text() (string, error) {
	if !c.IsValid() {
		return "", fmt.Errorf("%w: invalid apache config: %s", publication.ErrConfiguration, c.filename)
	}
	data, err := os.ReadFile(c.filename)
	if err != nil {
		return "", fmt.Errorf("read apache config: %w", err)
	}
	return string(data), nil
}

// HasWSModule reports whether the 1cws LoadModule directive is present.
func (c *Config) HasWSModule() (bool, error) {
	text, err := c.Text()
	if err != nil {
		return false, err
	}
	return wsModuleExpr.MatchString(text), nil
}

// AddWSModule appends the 1cws LoadModule directive once. A config that
// already carries the directive is left unchanged.
func (c *Config) AddWSModule(modulePath string) error {
	has, err := c.HasWSModule()
	if err != nil {
		return err
	}
	if has {
		c.logger.Debug("ws module already present", logging.String("file", c.filename))
		return nil
	}
	return c.appendText(fmt.Sprintf("\nLoadModule _1cws_module \"%s\"\n", modulePath))
}

// Publications lists the published names in file order. Only the start
// marker line is consulted; block well-formedness is not validated.
func (c *Config) Publications() ([]string, error) {
	text, err := c.Text()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range splitLines(text) {
		if name, ok := markerName(line, startTag); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// IsPublicated reports whether name appears among the published names.
func (c *Config) IsPublicated(name string) (bool, error) {
	names, err := c.Publications()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Records parses every managed block into a publication record, in file
// order. A block whose body is empty is unrecoverable corruption and
// fails with ErrParse rather than being skipped.
func (c *Config) Records() ([]*publication.Record, error) {
	text, err := c.Text()
	if err != nil {
		return nil, err
	}

	var records []*publication.Record
	inBlock := false
	var name string
	var body []string
	for _, line := range splitLines(text) {
		if inBlock {
			if hasMarker(line, endTag) {
				if len(body) == 0 {
					return nil, fmt.Errorf("%w: empty block for %q in %s", publication.ErrParse, name, c.filename)
				}
				rec, err := publication.FromConfig(name, strings.Join(body, ""), c.renderer)
				if err != nil {
					return nil, err
				}
				records = append(records, rec)
				inBlock = false
				name = ""
				body = nil
			} else {
				body = append(body, line)
			}
			continue
		}
		if hasMarker(line, startTag) {
			n, ok := markerName(line, startTag)
			if !ok {
				return nil, fmt.Errorf("%w: start marker without a name in %s", publication.ErrParse, c.filename)
			}
			inBlock = true
			name = n
		}
	}
	return records, nil
}

// CreatePublication derives a fresh record for name and materializes
// its artifacts. The config block is not appended here; that is
// AddPublication's separate step.
func (c *Config) CreatePublication(name, urlOverride, infobaseFilepath string, force bool) (*publication.Record, []publication.Warning, error) {
	published, err := c.IsPublicated(name)
	if err != nil {
		return nil, nil, err
	}
	if published && !force {
		return nil, nil, fmt.Errorf("%w: infobase %q", publication.ErrDuplicate, name)
	}

	rec, err := publication.New(name, c.renderer, c.vrdParams, infobaseFilepath)
	if err != nil {
		return nil, nil, err
	}
	if err := rec.GeneratePaths(c.pubDir, c.vrdDir, c.urlBase); err != nil {
		return nil, nil, err
	}
	if urlOverride != "" {
		rec.URLPath = urlpath.Join(c.urlBase, urlOverride)
	}

	if !force && !rec.OKToCreate() {
		return nil, nil, fmt.Errorf("%w: can't create publication: %s", publication.ErrState, rec.Describe())
	}

	warnings, err := rec.Create(force)
	c.logWarnings("create", rec.Name, warnings)
	if err != nil {
		return nil, warnings, err
	}
	return rec, warnings, nil
}

// AddPublication appends the record's rendered block to the config
// file. With force an existing block for the same name is first removed
// without destroying its artifacts; without force a duplicate fails.
// The append is the point at which the publication becomes visible to
// Publications and Records.
func (c *Config) AddPublication(rec *publication.Record, force bool) error {
	published, err := c.IsPublicated(rec.Name)
	if err != nil {
		return err
	}
	if published {
		if !force {
			return fmt.Errorf("%w: infobase %q", publication.ErrDuplicate, rec.Name)
		}
		if _, err := c.RemovePublication(rec.Name, false, false); err != nil {
			return err
		}
	}

	body, err := rec.ToConfig()
	if err != nil {
		return err
	}
	if err := c.appendText(fmt.Sprintf("\n%s %s\n%s\n%s %s", startTag, rec.Name, body, endTag, rec.Name)); err != nil {
		return err
	}
	c.logger.Debug("publication block appended",
		logging.String("name", rec.Name),
		logging.String("url_path", rec.URLPath))
	return nil
}

// GetPublication returns the record parsed from the named block, or nil
// when the name is not published. Paths come from the stored text, not
// from live derivation rules.
func (c *Config) GetPublication(name string) (*publication.Record, error) {
	published, err := c.IsPublicated(name)
	if err != nil {
		return nil, err
	}
	if !published {
		return nil, nil
	}

	text, err := c.Text()
	if err != nil {
		return nil, err
	}
	inBlock := false
	var body []string
	for _, line := range splitLines(text) {
		if inBlock {
			if markerNameIs(line, endTag, name) {
				break
			}
			body = append(body, line)
			continue
		}
		if markerNameIs(line, startTag, name) {
			inBlock = true
		}
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty block for %q in %s", publication.ErrParse, name, c.filename)
	}
	return publication.FromConfig(name, strings.Join(body, ""), c.renderer)
}

// RemovePublication deletes the named block, rewriting every other line
// verbatim. One blank line left dangling by the removed block is
// trimmed so repeated add/remove cycles do not accumulate blank lines.
// With destroy the discarded body is parsed and the record's artifacts
// are removed before the rewrite; forced destroy failures surface as
// warnings and never keep the block in the file.
func (c *Config) RemovePublication(name string, destroy, force bool) ([]publication.Warning, error) {
	published, err := c.IsPublicated(name)
	if err != nil {
		return nil, err
	}
	if !published {
		return nil, fmt.Errorf("%w: infobase %q", publication.ErrNotFound, name)
	}

	text, err := c.Text()
	if err != nil {
		return nil, err
	}

	inBlock := false
	var removed, kept []string
	for _, line := range splitLines(text) {
		if inBlock {
			if markerNameIs(line, endTag, name) {
				inBlock = false
				if len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
					kept = kept[:len(kept)-1]
				}
			} else {
				removed = append(removed, line)
			}
			continue
		}
		if markerNameIs(line, startTag, name) {
			inBlock = true
			continue
		}
		kept = append(kept, line)
	}

	var warnings []publication.Warning
	if destroy {
		rec, err := publication.FromConfig(name, strings.Join(removed, ""), c.renderer)
		if err != nil {
			return nil, err
		}
		warnings, err = rec.Remove(force)
		c.logWarnings("remove", name, warnings)
		if err != nil {
			return warnings, err
		}
	}

	if err := os.WriteFile(c.filename, []byte(strings.Join(kept, "")), 0o644); err != nil {
		return warnings, fmt.Errorf("rewrite apache config: %w", err)
	}
	c.logger.Debug("publication block removed",
		logging.String("name", name),
		logging.Bool("destroy", destroy))
	return warnings, nil
}

func (c *Config) appendText(text string) error {
	f, err := os.OpenFile(c.filename, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("append to apache config: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("append to apache config: %w", err)
	}
	return nil
}

func (c *Config) logWarnings(op, name string, warnings []publication.Warning) {
	for _, w := range warnings {
		c.logger.Warn("publication step failed",
			logging.String("op", op),
			logging.String("name", name),
			logging.String("step", w.Op),
			logging.Error(w.Err))
	}
}

// splitLines splits text into lines keeping the line terminators, so
// joining the pieces reproduces the input byte-for-byte.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}

// hasMarker reports whether line is a marker line for tag, i.e. the tag
// followed by at least one whitespace character.
func hasMarker(line, tag string) bool {
	rest, ok := strings.CutPrefix(line, tag)
	if !ok || rest == "" {
		return false
	}
	return rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r'
}

// markerName extracts the trimmed publication name from a marker line.
func markerName(line, tag string) (string, bool) {
	rest, ok := strings.CutPrefix(line, tag)
	if !ok || rest == "" {
		return "", false
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	name := strings.TrimSpace(rest)
	if name == "" {
		return "", false
	}
	return name, true
}

// markerNameIs reports whether line is a marker for tag naming exactly
// the given publication.
func markerNameIs(line, tag, name string) bool {
	got, ok := markerName(line, tag)
	return ok && got == name
}
