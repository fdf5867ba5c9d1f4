package loop

import "fmt"

func statusLine(viewpoint, mapSize float64, entities int) string {
	return fmt.Sprintf("pos %6.1f / %.0f   entities %d   ← → move, q quits", viewpoint, mapSize, entities)
}
