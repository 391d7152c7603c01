package bib

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seminar-engine/pkg/types"
)

// FormatCSL writes records as a CSL-YAML list to w, consumable by Pandoc
// and reference managers.
func FormatCSL(records []types.Record, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(records)
}
