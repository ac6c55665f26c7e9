package renderer

import "image"

// Tile is a rectangular block of pixels rendered as one unit of work
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTileGrid splits a width x height image into tiles of at most tileSize
// pixels per side, in row-major order
func NewTileGrid(width, height, tileSize int) []Tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]Tile, 0, tilesX*tilesY)
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, Tile{ID: len(tiles), Bounds: image.Rect(x0, y0, x1, y1)})
		}
	}
	return tiles
}
