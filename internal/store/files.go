package store

import (
	"fmt"
	"os"
	"time"
)

// timestampLayout has second resolution; two runs started within the same
// second produce colliding names.
const timestampLayout = "20060102_150405"

// OutputNames combines a base name with a local timestamp to produce the two
// output file names for a run.
func OutputNames(base string, now time.Time) (resume, coverLetter string) {
	ts := now.Format(timestampLayout)
	resume = fmt.Sprintf("%s_resume_%s.txt", base, ts)
	coverLetter = fmt.Sprintf("%s_cover_letter_%s.txt", base, ts)
	return resume, coverLetter
}

// SaveDocument writes generated document text to a file, overwriting any
// existing content.
func SaveDocument(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}
