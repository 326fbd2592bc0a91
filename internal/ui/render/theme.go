package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	BorderFg    tcell.Color
	TitleFg     tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	MetaFg      tcell.Color
	ErrorFg     tcell.Color
	HelpFg      tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		BorderFg:    tcell.ColorGray,
		TitleFg:     tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		MetaFg:      tcell.ColorGray,
		ErrorFg:     tcell.ColorRed,
		HelpFg:      tcell.ColorDefault,
	}
}
