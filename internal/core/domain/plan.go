package domain

import (
	"path"
	"path/filepath"
)

// StepKind identifies the operation a plan step performs.
type StepKind string

const (
	// StepClone clones a repository into its destination.
	StepClone StepKind = "clone"
	// StepMkdir creates the directory that holds downloaded files.
	StepMkdir StepKind = "mkdir"
	// StepDownload retrieves a single file over HTTP.
	StepDownload StepKind = "download"
	// StepCheckout pins a cloned repository to its revision.
	StepCheckout StepKind = "checkout"
)

// Step is a single unit of work in a Plan.
type Step struct {
	Kind StepKind

	// Dependency is the manifest entry the step acts on.
	// It is the zero value for StepMkdir.
	Dependency Dependency

	// Target is the slash-separated path relative to the invocation directory.
	Target string

	// Path is Target resolved against the plan's working directory.
	Path string
}

// Name returns a short human-readable label such as "clone glm".
func (s *Step) Name() string {
	if s.Kind == StepMkdir {
		return string(s.Kind) + " " + s.Target
	}
	return string(s.Kind) + " " + s.Dependency.Name
}

// Plan is the ordered expansion of a Manifest into steps.
type Plan struct {
	// Root is the working directory every step path is resolved against.
	Root string

	Steps []Step
}

// NewPlan validates the manifest and expands it into the fetch order:
// every clone, then the directory holding downloaded files, then every
// download, then every checkout.
func NewPlan(workDir string, m *Manifest) (*Plan, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if workDir == "" {
		workDir = "."
	}

	resolve := func(rel string) string {
		return filepath.Join(workDir, filepath.FromSlash(rel))
	}

	repos := m.Repositories()
	files := m.Files()
	steps := make([]Step, 0, len(m.Dependencies)*2)

	for _, d := range repos {
		steps = append(steps, Step{Kind: StepClone, Dependency: d, Target: d.Destination, Path: resolve(d.Destination)})
	}

	seenDirs := make(map[string]struct{})
	for _, d := range files {
		dir := path.Dir(path.Clean(d.Destination))
		if _, ok := seenDirs[dir]; ok {
			continue
		}
		seenDirs[dir] = struct{}{}
		steps = append(steps, Step{Kind: StepMkdir, Target: dir, Path: resolve(dir)})
	}

	for _, d := range files {
		steps = append(steps, Step{Kind: StepDownload, Dependency: d, Target: d.Destination, Path: resolve(d.Destination)})
	}

	for _, d := range repos {
		if !d.IsPinned() {
			continue
		}
		steps = append(steps, Step{Kind: StepCheckout, Dependency: d, Target: d.Destination, Path: resolve(d.Destination)})
	}

	return &Plan{Root: workDir, Steps: steps}, nil
}

// Destinations returns the resolved destination path of every dependency in manifest order.
func (p *Plan) Destinations() []string {
	var out []string
	for i := range p.Steps {
		s := &p.Steps[i]
		if s.Kind == StepClone || s.Kind == StepDownload {
			out = append(out, s.Path)
		}
	}
	return out
}
