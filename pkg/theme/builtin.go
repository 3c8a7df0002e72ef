package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thChalkboardTheme(),
		thLatteTheme(),
		thEspressoTheme(),
		thMintTheme(),
	} {
		thRegister(t)
	}
}

// thChalkboardTheme returns the dark slate-green theme with chalk text.
func thChalkboardTheme() Theme {
	return Theme{
		Name:       "chalkboard",
		Background: "#1f2a24",
		Foreground: "#e8e6df",
		Dim:        "#7d8a80",
		Accent:     "#f2c14e",

		Border:      "#3a4a40",
		BorderFocus: "#f2c14e",
		Title:       "#f4f1e8",

		Warm:    "#e07a3f",
		Cool:    "#3fa7b5",
		Neutral: "#c8b79a",

		Success: "#7bc47f",
		Failure: "#e06c5b",
		Info:    "#8ab4f8",

		SearchHighlight: "#f9e2af",
		HelpKey:         "#f2c14e",
		HelpDesc:        "#7d8a80",
	}
}

// thLatteTheme returns the light milky theme.
func thLatteTheme() Theme {
	return Theme{
		Name:       "latte",
		Background: "#f5efe6",
		Foreground: "#3b2f2a",
		Dim:        "#8c7b70",
		Accent:     "#b5651d",

		Border:      "#d9cbbd",
		BorderFocus: "#b5651d",
		Title:       "#2b211d",

		Warm:    "#c8553d",
		Cool:    "#2f7f8a",
		Neutral: "#a48b6c",

		Success: "#4f8a4b",
		Failure: "#b23a3a",
		Info:    "#3d6fb5",

		SearchHighlight: "#e8c170",
		HelpKey:         "#b5651d",
		HelpDesc:        "#8c7b70",
	}
}

// thEspressoTheme returns the dark roasted-brown theme.
func thEspressoTheme() Theme {
	return Theme{
		Name:       "espresso",
		Background: "#1c1410",
		Foreground: "#ead7c3",
		Dim:        "#8a7565",
		Accent:     "#d4a373",

		Border:      "#3d2c22",
		BorderFocus: "#d4a373",
		Title:       "#f3e6d8",

		Warm:    "#e76f51",
		Cool:    "#4fb3bf",
		Neutral: "#b39b83",

		Success: "#8ab17d",
		Failure: "#e5584f",
		Info:    "#7fa7d9",

		SearchHighlight: "#f4d58d",
		HelpKey:         "#d4a373",
		HelpDesc:        "#8a7565",
	}
}

// thMintTheme returns the cool green theme.
func thMintTheme() Theme {
	return Theme{
		Name:       "mint",
		Background: "#10201d",
		Foreground: "#dff5ee",
		Dim:        "#6f8f86",
		Accent:     "#5fd4b0",

		Border:      "#24413a",
		BorderFocus: "#5fd4b0",
		Title:       "#effbf7",

		Warm:    "#f2a65a",
		Cool:    "#5fd4b0",
		Neutral: "#a7c4bc",

		Success: "#7ee08a",
		Failure: "#f07178",
		Info:    "#82aaff",

		SearchHighlight: "#ffe08a",
		HelpKey:         "#5fd4b0",
		HelpDesc:        "#6f8f86",
	}
}
