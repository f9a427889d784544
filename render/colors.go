package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/parksense/proximity"
)

var (
	styleCar      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleZone     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleZoneFull = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
)

// tierStyle maps a proximity tier to the indicator color: green when
// clear, yellow in the warning band, red in danger
func tierStyle(t proximity.Tier) tcell.Style {
	switch t {
	case proximity.TierDanger:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case proximity.TierWarning:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case proximity.TierCaution:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}
