// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// The scan core never sees flags, device settings or the process shell.
	bans := map[string][]string{
		"ghostradar/internal/lettermap": {
			"ghostradar/internal/scanner", "ghostradar/internal/writers",
			"ghostradar/internal/settings", "ghostradar/internal/cli", "ghostradar/internal/cmdutil",
			"ghostradar/internal/app", "ghostradar/internal/appshell", "ghostradar/cmd/",
		},
		"ghostradar/internal/matcher": {
			"ghostradar/internal/scanner", "ghostradar/internal/writers",
			"ghostradar/internal/settings", "ghostradar/internal/cli", "ghostradar/internal/cmdutil",
			"ghostradar/internal/app", "ghostradar/internal/appshell", "ghostradar/cmd/",
		},
		"ghostradar/internal/dictionary": {
			"ghostradar/internal/scanner", "ghostradar/internal/writers",
			"ghostradar/internal/settings", "ghostradar/internal/cli", "ghostradar/internal/cmdutil",
			"ghostradar/internal/app", "ghostradar/internal/appshell", "ghostradar/cmd/",
		},
		"ghostradar/internal/sensor": {
			"ghostradar/internal/scanner", "ghostradar/internal/writers",
			"ghostradar/internal/settings", "ghostradar/internal/cli", "ghostradar/internal/cmdutil",
			"ghostradar/internal/app", "ghostradar/internal/appshell", "ghostradar/cmd/",
		},
		"ghostradar/internal/scanner": {
			"ghostradar/internal/writers", "ghostradar/pkg/api",
			"ghostradar/internal/settings", "ghostradar/internal/cli", "ghostradar/internal/cmdutil",
			"ghostradar/internal/bringup", "ghostradar/internal/app", "ghostradar/internal/appshell",
			"ghostradar/cmd/",
		},
		"ghostradar/internal/writers": {
			"ghostradar/internal/settings", "ghostradar/internal/cli", "ghostradar/internal/cmdutil",
			"ghostradar/internal/bringup", "ghostradar/internal/app", "ghostradar/internal/appshell",
			"ghostradar/cmd/",
		},
		"ghostradar/pkg/api": {
			"ghostradar/internal/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "ghostradar/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "ghostradar/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
