package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
	"github.com/iburimskiy/ladder-rot-expand/internal/render/raster"
)

func (g *Game) exportFrameDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export Frame"),
		zenity.Filename("ladder.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	anim.Logger().Info("exporting frame", "path", filename)
	return exportFrame(filename, g.coord)
}

// exportFrame writes the current frame of c to path as PNG.
func exportFrame(path string, c *anim.Coordinator) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := raster.WritePNG(f, c, config.WindowWidth, config.WindowHeight); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
