package composite

import (
	"fmt"
	"io"
)

// Demo prints the summary for every roof and material combination of a 10x20 roof.
func Demo(w io.Writer) error {
	p := RoofParams{Width: 10, Length: 20}
	for _, roof := range RoofTypes() {
		for _, material := range MaterialTypes() {
			total := CalculateMaterialsForRoofType(roof, material, p)
			if _, err := fmt.Fprintf(w, "%s + %s: %s\n", roof, material, Summary(total)); err != nil {
				return err
			}
		}
	}
	return nil
}
