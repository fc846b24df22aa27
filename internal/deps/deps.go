package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary untracker relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists external binaries for the given output format. ffmpeg
// is only required when vorbis output is selected; every other format is
// encoded in-process.
func Requirements(format string) []Requirement {
	return []Requirement{
		{
			Name:        "ffmpeg",
			Command:     "ffmpeg",
			Description: "Ogg Vorbis encoding",
			Optional:    format != "vorbis",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Verify returns an error when any non-optional requirement is missing.
func Verify(requirements []Requirement) error {
	for _, status := range CheckBinaries(requirements) {
		if !status.Optional && !status.Available {
			return fmt.Errorf("missing required dependency %s (%s): %s", status.Name, status.Description, status.Detail)
		}
	}
	return nil
}
