package terraform

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/types"
)

var textSuffixes = []string{
	".tf", ".tfvars", ".sample", ".md", ".yml", ".yaml", ".json", ".txt", ".gitignore", ".sh", ".tpl",
}

var skipDirs = map[string]bool{
	".git":       true,
	".terraform": true,
}

// Scan walks the module at root once and builds its Snapshot. A missing or
// unlistable root is the only hard failure; unreadable files inside the
// module are recorded on their entry so evaluators can fail the affected rule
// instead of aborting the call.
func Scan(ctx context.Context, fsys FS, root string) (*Snapshot, error) {
	rootEntries, err := fsys.ListEntries(ctx, root)
	if err != nil {
		return nil, types.NewEngineError(types.ErrCodeModuleNotFound,
			fmt.Sprintf("module path %q does not exist or is not a directory: %v", root, err))
	}

	snap := &Snapshot{
		RootPath:  root,
		Variables: map[string]Variable{},
		Outputs:   map[string]Output{},
		Locals:    map[string]string{},
	}

	if err := walk(ctx, fsys, root, "", rootEntries, snap); err != nil {
		return nil, err
	}

	for _, e := range snap.Entries {
		if e.IsDir || e.ReadErr != "" || e.Truncated {
			continue
		}
		if strings.HasSuffix(e.RelPath, ".tf") && !strings.Contains(e.RelPath, "/") {
			collectDeclarations(snap, e.RelPath, e.Text)
		}
	}
	return snap, nil
}

func walk(ctx context.Context, fsys FS, root, rel string, entries []DirEntry, snap *Snapshot) error {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	for _, de := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		childRel := de.Name
		if rel != "" {
			childRel = rel + "/" + de.Name
		}
		if de.IsDir {
			if skipDirs[de.Name] {
				continue
			}
			snap.Entries = append(snap.Entries, Entry{RelPath: childRel, IsDir: true})
			children, err := fsys.ListEntries(ctx, path.Join(root, childRel))
			if err != nil {
				continue
			}
			if err := walk(ctx, fsys, root, childRel, children, snap); err != nil {
				return err
			}
			continue
		}

		entry := Entry{RelPath: childRel}
		if isTextLike(de.Name) {
			text, err := fsys.ReadText(ctx, path.Join(root, childRel))
			switch {
			case err != nil:
				entry.ReadErr = err.Error()
			case len(text) > MaxFileBytes:
				entry.Truncated = true
			default:
				entry.Text = text
			}
		}
		snap.Entries = append(snap.Entries, entry)
	}
	return nil
}

// collectDeclarations folds one configuration file's top-level blocks into
// the snapshot's declaration maps.
func collectDeclarations(snap *Snapshot, file, src string) {
	for _, b := range ScanBlocks(src) {
		switch b.Kind {
		case "variable":
			if len(b.Labels) < 1 {
				continue
			}
			attrs, nested := ParseBody(b.Body)
			name := b.Labels[0]
			if _, dup := snap.Variables[name]; dup {
				continue
			}
			snap.Variables[name] = Variable{
				Name:        name,
				Type:        attrs["type"],
				Description: unquote(attrs["description"]),
				Validations: nested["validation"],
				File:        file,
			}
		case "output":
			if len(b.Labels) < 1 {
				continue
			}
			attrs, _ := ParseBody(b.Body)
			name := b.Labels[0]
			if _, dup := snap.Outputs[name]; dup {
				continue
			}
			snap.Outputs[name] = Output{
				Name:        name,
				Description: unquote(attrs["description"]),
				File:        file,
			}
		case "resource":
			if len(b.Labels) < 2 {
				continue
			}
			attrs, nested := ParseBody(b.Body)
			merged := make(map[string]string, len(attrs)+len(nested))
			for k, v := range attrs {
				merged[k] = v
			}
			for k, bodies := range nested {
				if _, exists := merged[k]; !exists {
					merged[k] = strings.Join(bodies, "\n")
				}
			}
			_, hasForEach := attrs["for_each"]
			_, hasCount := attrs["count"]
			snap.Resources = append(snap.Resources, Resource{
				Type:        b.Labels[0],
				Name:        b.Labels[1],
				UsesForEach: hasForEach,
				UsesCount:   hasCount,
				Attributes:  merged,
				File:        file,
			})
		case "locals":
			attrs, _ := ParseBody(b.Body)
			for k, v := range attrs {
				if _, dup := snap.Locals[k]; !dup {
					snap.Locals[k] = v
				}
			}
		}
	}
}

func isTextLike(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range textSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// unquote strips one level of surrounding double quotes from an attribute
// value, leaving interpolations and unquoted expressions untouched.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
