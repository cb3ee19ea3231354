package extraction

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/maydkoch/levlresources/internal/core/model"
)

// writeArtifact persists the parsed fragment to an immutable, timestamped
// file before it is handed to the caller. Write-once: O_EXCL refuses to
// overwrite, and a short uuid suffix keeps same-second extractions from
// colliding. Nothing downstream ever reads these files.
func (e *Extractor) writeArtifact(frag *model.Fragment) (string, error) {
	if err := os.MkdirAll(e.AuditDir, 0o755); err != nil {
		return "", err
	}

	stamp := e.now().UTC().Format("20060102_150405")
	name := fmt.Sprintf("res_%s_%s.json", stamp, uuid.NewString()[:8])
	path := filepath.Join(e.AuditDir, name)

	data, err := json.MarshalIndent(frag, "", "  ")
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", err
	}
	return path, nil
}
