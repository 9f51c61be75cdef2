package theme

func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme is dark neutral with a purple accent.
func thDefaultTheme() Theme {
	return Theme{
		Name:          "default",
		Foreground:    "#d4d4d4",
		Dim:           "#6b7280",
		Accent:        "#7c3aed",
		Pane:          "#6b7280",
		Overlap:       "#ef4444",
		TipBackground: "#374151",
		TipForeground: "#f9fafb",
		HelpKey:       "#7c3aed",
		HelpDesc:      "#6b6b6b",
	}
}

func thGruvboxTheme() Theme {
	return Theme{
		Name:          "gruvbox",
		Foreground:    "#ebdbb2",
		Dim:           "#928374",
		Accent:        "#fe8019",
		Pane:          "#a89984",
		Overlap:       "#fb4934",
		TipBackground: "#504945",
		TipForeground: "#fbf1c7",
		HelpKey:       "#fe8019",
		HelpDesc:      "#928374",
	}
}

func thNordTheme() Theme {
	return Theme{
		Name:          "nord",
		Foreground:    "#eceff4",
		Dim:           "#4c566a",
		Accent:        "#88c0d0",
		Pane:          "#81a1c1",
		Overlap:       "#bf616a",
		TipBackground: "#3b4252",
		TipForeground: "#eceff4",
		HelpKey:       "#88c0d0",
		HelpDesc:      "#4c566a",
	}
}

func thDraculaTheme() Theme {
	return Theme{
		Name:          "dracula",
		Foreground:    "#f8f8f2",
		Dim:           "#6272a4",
		Accent:        "#bd93f9",
		Pane:          "#6272a4",
		Overlap:       "#ff5555",
		TipBackground: "#44475a",
		TipForeground: "#f8f8f2",
		HelpKey:       "#bd93f9",
		HelpDesc:      "#6272a4",
	}
}

func thTokyoNightTheme() Theme {
	return Theme{
		Name:          "tokyo-night",
		Foreground:    "#c0caf5",
		Dim:           "#565f89",
		Accent:        "#7aa2f7",
		Pane:          "#565f89",
		Overlap:       "#f7768e",
		TipBackground: "#292e42",
		TipForeground: "#c0caf5",
		HelpKey:       "#7aa2f7",
		HelpDesc:      "#565f89",
	}
}
