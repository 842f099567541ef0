package render

import (
	"encoding/json"
	"io"

	"github.com/mdimension/mdim/pkg/faces"
	"github.com/mdimension/mdim/pkg/object"
)

// Record is the JSON export shape: the full geometry plus derived values.
type Record struct {
	Geometry   *object.Geometry `json:"geometry"`
	Faces      []faces.Face     `json:"faces,omitempty"`
	Projection []Point3         `json:"projection,omitempty"`
	Mode       Mode             `json:"mode"`
}

// WriteJSON streams a record with stable two-space indentation.
func WriteJSON(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
