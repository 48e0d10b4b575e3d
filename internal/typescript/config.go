package typescript

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	primaryConfigName  = "tsconfig.json"
	fallbackConfigName = "jsconfig.json"
)

// FindConfigFile walks upward from searchDir looking for a tsconfig,
// then for a jsconfig. Returns "" when neither exists, which selects the
// default configuration scope.
func FindConfigFile(fs FileSystem, searchDir string) string {
	for _, name := range []string{primaryConfigName, fallbackConfigName} {
		dir := searchDir
		for {
			candidate := filepath.Join(dir, name)
			if fs.FileExists(candidate) {
				return candidate
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return ""
}

// ProjectConfig is the parsed result of a config file: the static file
// list and compiler options merged over the defaults.
type ProjectConfig struct {
	Files   []string
	Options CompilerOptions
}

type rawConfig struct {
	CompilerOptions struct {
		Target           string `json:"target"`
		Module           string `json:"module"`
		ModuleResolution string `json:"moduleResolution"`
		AllowJS          *bool  `json:"allowJs"`
	} `json:"compilerOptions"`
	Files []string `json:"files"`
}

// ParseConfig reads and parses a config file, resolving the file list
// against baseDir. A missing or malformed config is not an error; the
// defaults apply and the file list is empty.
func ParseConfig(fs FileSystem, configPath string, baseDir string) (ProjectConfig, error) {
	config := ProjectConfig{Options: DefaultCompilerOptions()}
	if configPath == "" {
		return config, nil
	}

	content, ok := fs.ReadFile(configPath)
	if !ok {
		return config, nil
	}

	var raw rawConfig
	if err := json.Unmarshal([]byte(stripJSONComments(content)), &raw); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	if raw.CompilerOptions.Target != "" {
		config.Options.Target = strings.ToLower(raw.CompilerOptions.Target)
	}
	if raw.CompilerOptions.Module != "" {
		config.Options.Module = strings.ToLower(raw.CompilerOptions.Module)
	}
	if raw.CompilerOptions.ModuleResolution != "" {
		config.Options.ModuleResolution = strings.ToLower(raw.CompilerOptions.ModuleResolution)
	}
	if raw.CompilerOptions.AllowJS != nil {
		config.Options.AllowJS = *raw.CompilerOptions.AllowJS
	}

	for _, file := range raw.Files {
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		config.Files = append(config.Files, file)
	}

	return config, nil
}

// stripJSONComments blanks // and /* */ comments outside of strings so
// the tsconfig dialect decodes with a plain JSON parser. Comment bytes
// become spaces to keep offsets stable in decode errors.
func stripJSONComments(src string) string {
	out := []byte(src)
	inString := false
	for i := 0; i < len(out); i++ {
		c := out[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(out) && out[i+1] == '/':
			for i < len(out) && out[i] != '\n' {
				out[i] = ' '
				i++
			}
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			for i < len(out) {
				done := out[i] == '*' && i+1 < len(out) && out[i+1] == '/'
				out[i] = ' '
				if done {
					out[i+1] = ' '
					i++
					break
				}
				i++
			}
		}
	}
	return string(out)
}
