package breaker

import "github.com/vovakirdan/ballbreaker/internal/config"

// GenerateBlocks builds the block grid for a level: one row per level,
// cfg.Columns blocks per row, all active. Blocks are ordered row by row.
func GenerateBlocks(cfg config.BlockConfig, level int) []Block {
	rows := max(level, 0)
	blocks := make([]Block, 0, rows*cfg.Columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			blocks = append(blocks, Block{
				X:      cfg.OriginX + col*(cfg.Width+cfg.Padding),
				Y:      cfg.OriginY + row*(cfg.Height+cfg.Padding),
				Width:  cfg.Width,
				Height: cfg.Height,
				Active: true,
			})
		}
	}
	return blocks
}

// countActive returns the number of active blocks.
func countActive(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		if b.Active {
			n++
		}
	}
	return n
}
