package catalog

// Default returns a fresh copy of the built-in catalog. Callers may keep
// and slice the result freely; nothing else holds a reference to it.
func Default() *Catalog {
	return &Catalog{
		Bottles:    builtinBottles(),
		Moods:      builtinMoods(),
		Principles: builtinPrinciples(),
		Jars:       builtinJars(),
		Palettes:   builtinPalettes(),
		Objectives: builtinObjectives(),
	}
}

func builtinBottles() []Bottle {
	return []Bottle{
		{ID: "red-base", Label: "#E74C3C", Hex: "#E74C3C", Role: "base", Color: "#E74C3C"},
		{ID: "orange-accent", Label: "#F39C12", Hex: "#F39C12", Role: "accent", Color: "#F39C12"},
		{ID: "brown-neutral", Label: "#8B4513", Hex: "#8B4513", Role: "neutral", Color: "#8B4513"},
		{ID: "blue-base", Label: "#3498DB", Hex: "#3498DB", Role: "base", Color: "#3498DB"},
		{ID: "purple-accent", Label: "#9B59B6", Hex: "#9B59B6", Role: "accent", Color: "#9B59B6"},
		{ID: "gray-neutral", Label: "#7F8C8D", Hex: "#7F8C8D", Role: "neutral", Color: "#7F8C8D"},
		{ID: "green-base", Label: "#27AE60", Hex: "#27AE60", Role: "base", Color: "#27AE60"},
		{ID: "yellow-accent", Label: "#F1C40F", Hex: "#F1C40F", Role: "accent", Color: "#F1C40F"},
		{ID: "beige-neutral", Label: "#D2B48C", Hex: "#D2B48C", Role: "neutral", Color: "#D2B48C"},
	}
}

func builtinMoods() []Mood {
	return []Mood{
		{
			ID:          "energetic-autumn",
			Name:        "Energetic Autumn",
			Description: "Warm, vibrant, and full of life - perfect for active lifestyle brands",
			Base:        "#E74C3C",
			Accent:      "#F39C12",
			Neutral:     "#8B4513",
		},
		{
			ID:          "serene-ocean",
			Name:        "Serene Ocean",
			Description: "Calm, trustworthy, and professional - ideal for healthcare or finance",
			Base:        "#3498DB",
			Accent:      "#9B59B6",
			Neutral:     "#7F8C8D",
		},
		{
			ID:          "natural-growth",
			Name:        "Natural Growth",
			Description: "Fresh, organic, and sustainable - great for eco-friendly brands",
			Base:        "#27AE60",
			Accent:      "#F1C40F",
			Neutral:     "#D2B48C",
		},
	}
}

func builtinPrinciples() []Principle {
	return []Principle{
		{
			ID:          "bitter-contrast",
			Flavor:      "Bitter",
			Principle:   "Contrast",
			Description: "Just as bitter flavors create sharp, distinct sensations that stand out, contrast in design creates visual tension that draws attention and defines hierarchy.",
			Color:       "hsl(25, 6%, 20%)",
			Examples: []string{
				"Dark text on light backgrounds",
				"Bold headlines vs body text",
				"Bright accent colors against neutral palettes",
			},
		},
		{
			ID:          "sweet-harmony",
			Flavor:      "Sweet",
			Principle:   "Harmony",
			Description: "Sweet flavors are pleasing and comfortable, just like harmonious design elements that work together seamlessly to create visual unity and flow.",
			Color:       "hsl(340, 82%, 85%)",
			Examples: []string{
				"Complementary color schemes",
				"Consistent typography scales",
				"Balanced proportions and spacing",
			},
		},
		{
			ID:          "umami-balance",
			Flavor:      "Umami",
			Principle:   "Balance",
			Description: "Umami provides depth and completeness to flavor profiles, similar to how balanced design creates stability and sophisticated visual weight distribution.",
			Color:       "hsl(45, 29%, 58%)",
			Examples: []string{
				"Equal visual weight distribution",
				"Symmetrical and asymmetrical balance",
				"Proportion between content and white space",
			},
		},
	}
}

func builtinJars() []SpiceJar {
	return []SpiceJar{
		{
			SwatchSet: SwatchSet{
				ID:          "vanilla",
				Name:        "Vanilla",
				Colors:      []string{"#FDF6E3", "#F5E6C3", "#EDD5A3", "#E5C583"},
				Category:    Neutral,
				Description: "Just like vanilla's warm, enveloping sweetness, monochromatic color schemes create comfortable, unified experiences that feel safe and inviting.",
			},
			Scent:     "Sweet & Comforting",
			ColorRule: "Monochromatic Creams",
			ImageURL:  "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=200&h=200&fit=crop",
		},
		{
			SwatchSet: SwatchSet{
				ID:          "cinnamon",
				Name:        "Cinnamon",
				Colors:      []string{"#E74C3C", "#F39C12", "#D35400", "#C0392B"},
				Category:    Warm,
				Description: "Cinnamon's fiery warmth mirrors analogous color schemes: neighboring colors that flow together like spice blending into warmth.",
			},
			Scent:     "Warm & Energizing",
			ColorRule: "Analogous Reds",
			ImageURL:  "https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07?w=200&h=200&fit=crop",
		},
		{
			SwatchSet: SwatchSet{
				ID:          "mint",
				Name:        "Mint",
				Colors:      []string{"#3498DB", "#F39C12", "#2ECC71", "#E67E22"},
				Category:    Cool,
				Description: "Mint's refreshing contrast is like complementary colors: opposites that enhance each other, creating vibrant, balanced tension.",
			},
			Scent:     "Fresh & Cooling",
			ColorRule: "Complementary Blues",
			ImageURL:  "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=200&h=200&fit=crop",
		},
		{
			SwatchSet: SwatchSet{
				ID:          "chili",
				Name:        "Chili",
				Colors:      []string{"#E74C3C", "#F1C40F", "#9B59B6", "#E74C3C"},
				Category:    Warm,
				Description: "Chili's bold intensity reflects triadic color schemes: three evenly spaced colors that create vibrant, dynamic compositions full of energy.",
			},
			Scent:     "Bold & Intense",
			ColorRule: "Triadic Spice",
			ImageURL:  "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=200&h=200&fit=crop",
		},
	}
}

func builtinPalettes() []Palette {
	return []Palette{
		{
			SwatchSet: SwatchSet{
				ID:          "sunset",
				Name:        "Sunset Warmth",
				Colors:      []string{"hsl(14, 91%, 65%)", "hsl(25, 95%, 53%)", "hsl(45, 93%, 47%)"},
				Category:    Warm,
				Description: "Creates feelings of excitement, energy, and happiness. Perfect for call-to-action elements.",
			},
			Emotion: "Energetic & Optimistic",
			Icon:    "☀",
		},
		{
			SwatchSet: SwatchSet{
				ID:          "cozy",
				Name:        "Cozy Embrace",
				Colors:      []string{"hsl(16, 25%, 38%)", "hsl(30, 67%, 94%)", "hsl(25, 76%, 31%)"},
				Category:    Warm,
				Description: "Evokes feelings of comfort, security, and intimacy. Ideal for hospitality brands.",
			},
			Emotion: "Comfortable & Secure",
			Icon:    "♥",
		},
		{
			SwatchSet: SwatchSet{
				ID:          "ocean",
				Name:        "Ocean Depths",
				Colors:      []string{"hsl(200, 100%, 28%)", "hsl(195, 53%, 79%)", "hsl(187, 85%, 43%)"},
				Category:    Cool,
				Description: "Promotes trust, stability, and professionalism. Great for corporate communications.",
			},
			Emotion: "Calm & Professional",
			Icon:    "❄",
		},
		{
			SwatchSet: SwatchSet{
				ID:          "electric",
				Name:        "Electric Cool",
				Colors:      []string{"hsl(210, 100%, 56%)", "hsl(270, 95%, 75%)", "hsl(180, 100%, 50%)"},
				Category:    Cool,
				Description: "Suggests innovation, technology, and forward-thinking. Perfect for tech brands.",
			},
			Emotion: "Innovative & Dynamic",
			Icon:    "⚡",
		},
	}
}

func builtinObjectives() []Objective {
	return []Objective{
		{
			ID:       "emotional-impact",
			Text:     "Identify the emotional impact of warm vs. cool hues.",
			Category: Warm,
			Icon:     "◐",
		},
		{
			ID:       "flavor-metaphors",
			Text:     "Match flavor metaphors (bitter, sweet, umami) to design principles (contrast, harmony, balance).",
			Category: Neutral,
			Icon:     "☕",
		},
		{
			ID:       "color-palette",
			Text:     "Create a balanced 3-color palette that communicates a given mood.",
			Category: Cool,
			Icon:     "◎",
		},
	}
}
