package config

// Depsfile represents the structure of the embedded dependency manifest.
type Depsfile struct {
	Version      string          `yaml:"version"`
	Root         string          `yaml:"root"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
}

// DependencyDTO represents a dependency definition in the manifest.
type DependencyDTO struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Revision    string `yaml:"revision"`
}
